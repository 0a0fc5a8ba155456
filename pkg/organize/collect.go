// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package organize

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 CollectFiles recursively enumerates every non-directory entry under
// root, depth-first, and returns the full paths in traversal order. The
// first I/O error aborts the whole enumeration — callers can't tell a
// partial result from a complete one, so none is ever returned.
//
// Symlinked directories are not descended into: directory checks are based
// on the entry type (lstat), so a symlink is collected like a file.
func CollectFiles(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Msg("collecting files")

	var files []string
	if err := collectInto(root, &files); err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(files)).Msg("collection complete")
	return files, nil
}

// 🔍 collectInto appends every file under dir to files, recursing into
// subdirectories as they are encountered.
func collectInto(dir string, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Errorf("traversing %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := collectInto(path, files); err != nil {
				return err
			}
		} else {
			*files = append(*files, path)
		}
	}

	return nil
}
