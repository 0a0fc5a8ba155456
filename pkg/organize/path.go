package organize

import (
	"fmt"
	"path/filepath"
	"strings"
)

// bucketSuffixLen is the length of the YYYY-MM fragment at the end of a
// bucket key, reused as the filename prefix.
const bucketSuffixLen = 7

// 🛠️ BuildDestination computes the final path for a file: the bucket
// directory under target, with a filename of the form
// <YYYY-MM>_<seq>.<ext>. The extension is taken verbatim from srcName's
// suffix after the last dot; files without one get a bare name with no
// trailing dot. Pure — no filesystem access, no collision checks beyond
// what the sequence cache's seeding guarantees.
func BuildDestination(target, key string, seq int, srcName string) string {
	prefix := key
	if len(prefix) > bucketSuffixLen {
		prefix = prefix[len(prefix)-bucketSuffixLen:]
	}

	name := fmt.Sprintf("%s_%d", prefix, seq)
	if ext := extension(srcName); ext != "" {
		name += "." + ext
	}

	return filepath.Join(target, filepath.FromSlash(key), name)
}

// 📎 extension returns the suffix after the last dot of name, or "" when
// name has no extension. A leading dot alone (dotfiles) doesn't count.
func extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return ""
	}
	return name[idx+1:]
}
