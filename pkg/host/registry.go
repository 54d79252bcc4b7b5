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

package host

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ DialogKind names one of the dialogs the menu can open
type DialogKind int

const (
	KindMigrate DialogKind = iota
	KindRefCleanup
	KindFileStruct
)

// Kinds lists every dialog kind in menu order
func Kinds() []DialogKind {
	return []DialogKind{KindMigrate, KindRefCleanup, KindFileStruct}
}

func (k DialogKind) String() string {
	switch k {
	case KindMigrate:
		return "MigrateDirectories"
	case KindRefCleanup:
		return "ReferenceCleanup"
	case KindFileStruct:
		return "GenerateFileStruct"
	default:
		return "unknown"
	}
}

// 🪟 Dialog is a window that keeps its selections between shows
type Dialog interface {
	Show(ctx context.Context) error
}

// 🏭 Factory builds the dialog for one kind, parented to the main window
type Factory func(ctx context.Context, parent Window) (Dialog, error)

// 📚 Registry holds at most one live dialog per kind
type Registry struct {
	host      Host
	factories map[DialogKind]Factory

	mu      sync.Mutex
	dialogs map[DialogKind]Dialog
}

// 🏗️ NewRegistry creates an empty registry
func NewRegistry(h Host, factories map[DialogKind]Factory) *Registry {
	return &Registry{
		host:      h,
		factories: factories,
		dialogs:   make(map[DialogKind]Dialog),
	}
}

// 🎯 Open shows the dialog for kind, creating it on first use. A failed
// factory leaves nothing behind, so the next Open tries again.
func (r *Registry) Open(ctx context.Context, kind DialogKind) error {
	d, err := r.getOrCreate(ctx, kind)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Stringer("dialog", kind).Msg("showing dialog")
	if err := d.Show(ctx); err != nil {
		return errors.Errorf("showing %s: %w", kind, err)
	}
	return nil
}

func (r *Registry) getOrCreate(ctx context.Context, kind DialogKind) (Dialog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.dialogs[kind]; ok {
		return d, nil
	}

	factory, ok := r.factories[kind]
	if !ok {
		return nil, errors.Errorf("no dialog registered for %s", kind)
	}

	d, err := factory(ctx, r.host.MainWindow())
	if err != nil {
		return nil, errors.Errorf("creating %s: %w", kind, err)
	}
	if d == nil {
		return nil, errors.Errorf("creating %s: factory returned no dialog", kind)
	}

	zerolog.Ctx(ctx).Debug().Stringer("dialog", kind).Msg("dialog created")
	r.dialogs[kind] = d
	return d, nil
}
