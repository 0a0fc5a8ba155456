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

package organize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fileman/pkg/organize"
)

// 🧪 testContext creates a context carrying a test logger
func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

// 🧪 writeFile creates an empty file at path, creating parents as needed
func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("test content"), 0644))
}

func TestCollectFilesFlatDirectory(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	want := []string{
		filepath.Join(dir, "1.txt"),
		filepath.Join(dir, "2.txt"),
		filepath.Join(dir, "3.txt"),
	}
	for _, f := range want {
		writeFile(t, f)
	}

	got, err := organize.CollectFiles(ctx, dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got, "collection should find exactly the files in a flat directory")
}

func TestCollectFilesNestedDirectory(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	want := []string{
		filepath.Join(dir, "1.txt"),
		filepath.Join(dir, "2.txt"),
		filepath.Join(dir, "nested", "3.txt"),
		filepath.Join(dir, "nested", "deeper", "4.txt"),
	}
	for _, f := range want {
		writeFile(t, f)
	}

	got, err := organize.CollectFiles(ctx, dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got, "collection should find files at every depth and no directories")
}

func TestCollectFilesEmptySubdirectoriesExcluded(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a.txt"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty", "also-empty"), 0755))

	got, err := organize.CollectFiles(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, got)
}

func TestCollectFilesNotADirectory(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	file := filepath.Join(dir, "not_a_dir.txt")
	writeFile(t, file)

	_, err := organize.CollectFiles(ctx, file)
	require.Error(t, err, "collecting a non-directory should fail with a traversal error")
	assert.Contains(t, err.Error(), "traversing")
}

func TestCollectFilesMissingRoot(t *testing.T) {
	ctx := testContext(t)

	_, err := organize.CollectFiles(ctx, filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
