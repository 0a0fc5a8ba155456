package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fileman/cmd/fileman/opts"
	"github.com/walteh/fileman/pkg/config"
	"github.com/walteh/fileman/pkg/log"
	"github.com/walteh/fileman/pkg/organize"
	"github.com/walteh/fileman/pkg/status"
)

// 🧪 testEnv prepares source/target directories and root options
func testEnv(t *testing.T) (context.Context, *opts.RootOpts, string, string) {
	t.Helper()

	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "src")
	target := filepath.Join(tmpDir, "dst")
	require.NoError(t, os.MkdirAll(source, 0755))
	require.NoError(t, os.MkdirAll(target, 0755))

	rootOpts := &opts.RootOpts{
		ConfigFile: filepath.Join(tmpDir, ".fileman.hcl"),
		StatusMgr:  status.New(),
		UserLogger: log.New(io.Discard, zerolog.Disabled),
	}

	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background()), rootOpts, source, target
}

func TestResolveConfigFromArgs(t *testing.T) {
	ctx, _, source, target := testEnv(t)

	cfg, err := resolveConfig(ctx, "unused", []string{source, target})
	require.NoError(t, err)
	assert.Equal(t, source, cfg.Source)
	assert.Equal(t, target, cfg.Target)
}

func TestResolveConfigSingleArg(t *testing.T) {
	ctx, _, source, _ := testEnv(t)

	_, err := resolveConfig(ctx, "unused", []string{source})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both source and target")
}

func TestResolveConfigMissingFile(t *testing.T) {
	ctx, rootOpts, _, _ := testEnv(t)

	_, err := resolveConfig(ctx, rootOpts.ConfigFile, nil)
	require.Error(t, err)
}

func TestOrganizeCommandMovesFiles(t *testing.T) {
	ctx, rootOpts, source, target := testEnv(t)

	console := &bytes.Buffer{}
	rootOpts.UserLogger = log.New(console, zerolog.Disabled)

	path := filepath.Join(source, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	if _, err := organize.CreationTime(path); err != nil {
		t.Skipf("filesystem does not expose creation time: %v", err)
	}

	cmd := NewOrganizeCmd(rootOpts)
	cmd.SetArgs([]string{source, target})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.ExecuteContext(ctx))

	// Source file was moved away
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	summary := rootOpts.StatusMgr.Summarize()
	assert.Equal(t, 1, summary.Moved)

	// Per-file outcome is rendered on the user console
	assert.Contains(t, console.String(), "note.txt")
	assert.Contains(t, console.String(), "MOVED")
}

func TestOrganizeCommandLogsIgnoredFiles(t *testing.T) {
	ctx, rootOpts, source, target := testEnv(t)

	console := &bytes.Buffer{}
	rootOpts.UserLogger = log.New(console, zerolog.Disabled)

	require.NoError(t, os.WriteFile(filepath.Join(source, "scratch.tmp"), []byte("x"), 0644))

	cfg := &config.Config{
		Source:   source,
		Target:   target,
		Organize: &config.OrganizeArgs{IgnorePatterns: []string{"**/*.tmp"}},
	}
	require.NoError(t, cfg.Validate())

	org, err := organize.New(organize.Options{Config: cfg, StatusMgr: rootOpts.StatusMgr})
	require.NoError(t, err)
	require.NoError(t, org.Run(ctx))

	logFileOperations(ctx, rootOpts)

	assert.Contains(t, console.String(), "scratch.tmp")
	assert.Contains(t, console.String(), "IGNORED")
}

func TestOrganizeCommandInvalidSource(t *testing.T) {
	ctx, rootOpts, _, target := testEnv(t)

	cmd := NewOrganizeCmd(rootOpts)
	cmd.SetArgs([]string{filepath.Join(target, "missing"), target})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving configuration")
}
