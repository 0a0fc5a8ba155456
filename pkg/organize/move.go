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
	"syscall"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚚 MoveFile renames src to dst. The move is a same-filesystem rename
// only: source and target on different volumes fail with a cross-device
// error, and no copy-then-delete fallback is attempted. Any failure is
// fatal to the run that requested it.
func MoveFile(ctx context.Context, src, dst string) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("src", src).Str("dst", dst).Msg("moving file")

	if err := os.Rename(src, dst); err != nil {
		if errors.Is(err, syscall.EXDEV) {
			return errors.Errorf("moving %s to %s: source and target are on different filesystems: %w", src, dst, err)
		}
		return errors.Errorf("moving %s to %s: %w", src, dst, err)
	}

	return nil
}
