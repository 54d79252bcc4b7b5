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
)

// 📈 Progress is a snapshot after one top level entry was handled
type Progress struct {
	Done   int    // top level entries handled so far
	Total  int    // top level entries counted before the run
	Entry  string // name of the entry just handled
	Copied int    // plain files copied so far
}

// 📈 Reporter receives progress from a running operation
type Reporter interface {
	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, p Progress)
	FinishOperation(ctx context.Context, message string)
}

// Bar draws progress somewhere the user can see it
type Bar interface {
	Start(total int, title string) error
	Set(done int, title string)
	Stop(title string) error
}

// 🔧 Manager tracks progress, logs it and drives an optional Bar
type Manager struct {
	formatter FileFormatter
	bar       Bar

	mu       sync.Mutex
	total    int
	last     Progress
	history  []Progress
	finished string
}

var _ Reporter = (*Manager)(nil)

// 🏭 NewManager creates a new status manager. bar may be nil.
func NewManager(formatter FileFormatter, bar Bar) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		formatter: formatter,
		bar:       bar,
	}
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.last = Progress{Total: total}
	m.history = nil
	m.finished = ""

	msg := m.formatter.FormatProgress(0, total)
	zerolog.Ctx(ctx).Info().Int("total", total).Msg(msg)

	if m.bar != nil {
		if err := m.bar.Start(total, msg); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("starting progress bar")
			m.bar = nil
		}
	}
}

func (m *Manager) UpdateProgress(ctx context.Context, p Progress) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last = p
	m.history = append(m.history, p)

	msg := m.formatter.FormatEntry(p)
	zerolog.Ctx(ctx).Debug().
		Int("done", p.Done).
		Int("total", p.Total).
		Int("copied", p.Copied).
		Str("entry", p.Entry).
		Msg(msg)

	if m.bar != nil {
		m.bar.Set(p.Done, msg)
	}
}

func (m *Manager) FinishOperation(ctx context.Context, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.finished = message
	zerolog.Ctx(ctx).Info().
		Int("done", m.last.Done).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.last.Done, m.total))

	if m.bar != nil {
		m.bar.Set(m.total, message)
		if err := m.bar.Stop(message); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("stopping progress bar")
		}
	}
}

// Last returns the most recent progress update
func (m *Manager) Last() Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// History returns every update since the last StartOperation
func (m *Manager) History() []Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Progress, len(m.history))
	copy(out, m.history)
	return out
}

// Finished returns the message passed to FinishOperation, empty while running
func (m *Manager) Finished() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finished
}
