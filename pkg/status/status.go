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

package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of a file within an organize run
type FileStatus int

const (
	StatusUnknown FileStatus = iota
	StatusMoved              // File was renamed into its bucket
	StatusIgnored            // File matched an ignore pattern and was skipped
	StatusFailed             // Processing the file aborted the run
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusMoved:
		return "moved"
	case StatusIgnored:
		return "ignored"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the tracked outcome of a single source file
type FileInfo struct {
	Source      string     // Full path the file was discovered at
	Destination string     // Destination path, empty unless moved
	Bucket      string     // Bucket key (YYYY/YYYY-MM), empty unless assigned
	Sequence    int        // Sequence number within the bucket
	Status      FileStatus // Outcome
	Error       error      // Failure cause, set only for StatusFailed
}

// 📈 Summary aggregates a finished (or aborted) run
type Summary struct {
	Total   int // Files discovered by the collector
	Moved   int
	Ignored int
	Failed  int
	Buckets int // Distinct buckets that received at least one file
}

// 🔧 Manager tracks per-file outcomes and progress for one organize run.
// It is process-local, in-memory state: nothing persists across runs
// except the filesystem side effects themselves.
type Manager struct {
	mu    sync.RWMutex
	files map[string]FileInfo
	order []string

	total     int
	processed int
}

// 🏭 New creates a new status manager
func New() *Manager {
	return &Manager{
		files: make(map[string]FileInfo),
	}
}

// 📝 TrackFile records the outcome of a single file
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seen := m.files[info.Source]; !seen {
		m.order = append(m.order, info.Source)
	}
	m.files[info.Source] = info

	zerolog.Ctx(ctx).Debug().
		Str("source", info.Source).
		Str("destination", info.Destination).
		Str("bucket", info.Bucket).
		Int("sequence", info.Sequence).
		Str("status", info.Status.String()).
		Msg("tracked file")
}

// 🔍 GetFileInfo returns the tracked outcome for a source path
func (m *Manager) GetFileInfo(ctx context.Context, source string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[source]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", source)
	}
	return info, nil
}

// 📋 ListFiles returns all tracked files in the order they were recorded
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]FileInfo, 0, len(m.order))
	for _, src := range m.order {
		out = append(out, m.files[src])
	}
	return out
}

// 🏁 StartRun begins progress tracking for a run over total files
func (m *Manager) StartRun(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0

	zerolog.Ctx(ctx).Info().Int("total", total).Msg("starting organize run")
}

// 📈 UpdateProgress records that processed files have been handled so far
func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed

	zerolog.Ctx(ctx).Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg("progress")
}

// 🏁 FinishRun ends progress tracking
func (m *Manager) FinishRun(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Info().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg("organize run finished")
}

// 📊 Progress returns the current processed/total counters
func (m *Manager) Progress() (processed, total int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.processed, m.total
}

// 🧾 Summarize aggregates the tracked outcomes
func (m *Manager) Summarize() Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{Total: m.total}
	buckets := make(map[string]struct{})
	for _, info := range m.files {
		switch info.Status {
		case StatusMoved:
			s.Moved++
			buckets[info.Bucket] = struct{}{}
		case StatusIgnored:
			s.Ignored++
		case StatusFailed:
			s.Failed++
		}
	}
	s.Buckets = len(buckets)
	return s
}
