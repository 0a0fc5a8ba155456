package organize

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔢 SequenceCache hands out the next sequence number for each bucket of a
// single run. A bucket's counter is seeded exactly once: from the count of
// regular files already inside the bucket directory if it exists, or from
// zero after creating it. After seeding, the cache is the single source of
// truth for that bucket — the filesystem is never re-queried.
//
// The cache is unsynchronized on purpose: the run that owns it processes
// files strictly one at a time.
type SequenceCache struct {
	target string
	next   map[string]int
}

// 🏭 NewSequenceCache creates an empty cache rooted at the target directory.
func NewSequenceCache(target string) *SequenceCache {
	return &SequenceCache{
		target: target,
		next:   make(map[string]int),
	}
}

// ➡️ Next consumes and returns the next sequence number for key, seeding
// the bucket first if this is its first use in the run. Bucket directories
// that don't exist yet are created here, including intermediate levels;
// creating an already-existing path is not an error.
func (c *SequenceCache) Next(ctx context.Context, key string) (int, error) {
	if n, ok := c.next[key]; ok {
		c.next[key] = n + 1
		return n, nil
	}

	logger := zerolog.Ctx(ctx)
	dir := filepath.Join(c.target, filepath.FromSlash(key))

	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		count, err := countRegularFiles(dir)
		if err != nil {
			return 0, errors.Errorf("counting files in bucket %s: %w", key, err)
		}
		logger.Debug().Str("bucket", key).Int("seed", count).Msg("seeded bucket from existing directory")
		c.next[key] = count + 1
		return count, nil

	case err == nil || os.IsNotExist(err):
		// Either missing, or present as a non-directory; MkdirAll
		// reports the latter as an error.
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, errors.Errorf("creating bucket directory %s: %w", dir, err)
		}
		logger.Debug().Str("bucket", key).Msg("created fresh bucket")
		c.next[key] = 1
		return 0, nil

	default:
		return 0, errors.Errorf("checking bucket directory %s: %w", dir, err)
	}
}

// 🧮 countRegularFiles counts the regular files directly inside dir.
// The count is non-recursive: nested subdirectories are ignored, matching
// the numbering of trees organized by earlier runs.
func countRegularFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			count++
		}
	}
	return count, nil
}
