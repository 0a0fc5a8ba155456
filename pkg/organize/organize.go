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
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"github.com/walteh/fileman/pkg/config"
	"github.com/walteh/fileman/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// lockFileName is the advisory lock created inside the target directory
// for the duration of a run. Concurrent runs against the same target would
// race the sequence seeding, so the second one is refused instead.
const lockFileName = ".fileman.lock"

// 🚦 RunState tracks where an organize run is in its lifecycle
type RunState int

const (
	StateIdle RunState = iota
	StateCollecting
	StateProcessing
	StateDone
	StateFailed
)

// String returns a string representation of RunState
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateProcessing:
		return "processing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 🎯 Organizer defines the interface for an organize run
type Organizer interface {
	// Run drives the full pipeline: collect, then bucket/number/move
	// every file, aborting on the first error. Already-moved files are
	// not rolled back.
	Run(ctx context.Context) error

	// State reports the current lifecycle state of the run
	State() RunState
}

// 🔧 Options contains configuration for the organizer
type Options struct {
	// Config holds the validated source and target directories
	Config *config.Config
	// StatusMgr tracks per-file outcomes and progress
	StatusMgr *status.Manager
}

// 🏭 New creates a new organizer with the given options
func New(opts Options) (Organizer, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return nil, errors.Errorf("status manager is required")
	}
	return &organizer{
		cfg:    opts.Config,
		status: opts.StatusMgr,
		cache:  NewSequenceCache(opts.Config.Target),
		lock:   flock.New(filepath.Join(opts.Config.Target, lockFileName)),
		state:  StateIdle,
	}, nil
}

// 🎮 organizer implements the Organizer interface
type organizer struct {
	cfg    *config.Config
	status *status.Manager
	cache  *SequenceCache
	lock   *flock.Flock
	state  RunState
}

func (o *organizer) State() RunState {
	return o.state
}

// 🔄 transition moves the run to a new state
func (o *organizer) transition(ctx context.Context, next RunState) {
	zerolog.Ctx(ctx).Debug().
		Str("from", o.state.String()).
		Str("to", next.String()).
		Msg("run state transition")
	o.state = next
}

// 🏃 Run executes the organize pipeline
func (o *organizer) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	ok, err := o.lock.TryLock()
	if err != nil {
		o.transition(ctx, StateFailed)
		return errors.Errorf("acquiring target lock: %w", err)
	}
	if !ok {
		o.transition(ctx, StateFailed)
		return errors.Errorf("target %s is locked by another fileman run", o.cfg.Target)
	}
	defer func() {
		if err := o.lock.Unlock(); err != nil {
			logger.Warn().Err(err).Msg("releasing target lock")
		}
	}()

	o.transition(ctx, StateCollecting)
	files, err := CollectFiles(ctx, o.cfg.Source)
	if err != nil {
		o.transition(ctx, StateFailed)
		return errors.Errorf("collecting files: %w", err)
	}

	o.transition(ctx, StateProcessing)
	o.status.StartRun(ctx, len(files))
	defer o.status.FinishRun(ctx)

	for i, file := range files {
		if o.shouldIgnore(ctx, file) {
			o.status.TrackFile(ctx, status.FileInfo{
				Source: file,
				Status: status.StatusIgnored,
			})
			o.status.UpdateProgress(ctx, i+1)
			continue
		}

		if err := o.processFile(ctx, file); err != nil {
			o.transition(ctx, StateFailed)
			return errors.Errorf("processing file %s: %w", file, err)
		}
		o.status.UpdateProgress(ctx, i+1)
	}

	o.transition(ctx, StateDone)
	return nil
}

// 📄 processFile buckets, numbers, and moves a single file
func (o *organizer) processFile(ctx context.Context, file string) error {
	created, err := CreationTime(file)
	if err != nil {
		o.trackFailure(ctx, file, "", err)
		return errors.Errorf("reading creation time: %w", err)
	}

	key := BucketKey(created)

	seq, err := o.cache.Next(ctx, key)
	if err != nil {
		o.trackFailure(ctx, file, key, err)
		return errors.Errorf("assigning sequence number: %w", err)
	}

	dst := BuildDestination(o.cfg.Target, key, seq, filepath.Base(file))

	if err := MoveFile(ctx, file, dst); err != nil {
		o.trackFailure(ctx, file, key, err)
		return err
	}

	o.status.TrackFile(ctx, status.FileInfo{
		Source:      file,
		Destination: dst,
		Bucket:      key,
		Sequence:    seq,
		Status:      status.StatusMoved,
	})
	return nil
}

// ❌ trackFailure records the file that aborted the run
func (o *organizer) trackFailure(ctx context.Context, file, bucket string, err error) {
	o.status.TrackFile(ctx, status.FileInfo{
		Source: file,
		Bucket: bucket,
		Status: status.StatusFailed,
		Error:  err,
	})
}

// 🔍 shouldIgnore checks if a file matches a configured ignore pattern.
// Patterns are matched against the path relative to the source root.
func (o *organizer) shouldIgnore(ctx context.Context, path string) bool {
	patterns := o.cfg.IgnorePatterns()
	if len(patterns) == 0 {
		return false
	}

	logger := zerolog.Ctx(ctx)
	rel, err := filepath.Rel(o.cfg.Source, path)
	if err != nil {
		logger.Debug().Str("path", path).Err(err).Msg("error relativizing path")
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", rel).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}

	return false
}
