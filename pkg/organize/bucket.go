package organize

import (
	"time"

	"github.com/djherbis/times"
	"gitlab.com/tozd/go/errors"
)

// bucketLayout renders a timestamp as the two-level YYYY/YYYY-MM fragment.
const bucketLayout = "2006/2006-01"

// 🕐 CreationTime reads the creation (birth) timestamp of the file at path.
// There is no fallback to modification time: filesystems that don't expose
// birth time make the whole pipeline impossible, so this fails hard.
func CreationTime(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, errors.Errorf("reading metadata for %s: %w", path, err)
	}
	if !ts.HasBirthTime() {
		return time.Time{}, errors.Errorf("filesystem reports no creation time for %s", path)
	}
	return ts.BirthTime(), nil
}

// 🪣 BucketKey maps a creation timestamp to its bucket fragment
// (e.g. 2023/2023-03), interpreted in local time. Files sharing a year and
// month always share a bucket, regardless of day or time.
func BucketKey(t time.Time) string {
	return t.Local().Format(bucketLayout)
}
