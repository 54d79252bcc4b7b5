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

// Package dialog holds the three dialogs the menu opens. A dialog owns its
// selections, turns them into an operation request, and is the only place
// where a Result becomes a user visible message.
package dialog

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/shootday/pkg/config"
	"github.com/walteh/shootday/pkg/files"
	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/operation"
	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📢 Presenter shows messages to the user
type Presenter interface {
	Header(msg string)
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
	LogFileChange(ctx context.Context, c status.FileChange)
}

// 🔧 Deps are the collaborators every dialog needs
type Deps struct {
	Host      host.Host
	Config    *config.Config
	Files     files.FileManager
	Presenter Presenter
	Prompter  Prompter
	// NewBar returns the bar for one merge run; nil means no bar
	NewBar func() status.Bar
}

func (d Deps) withDefaults() (Deps, error) {
	if d.Host == nil {
		return d, errors.New("host is required")
	}
	if d.Presenter == nil {
		return d, errors.New("presenter is required")
	}
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Files == nil {
		d.Files = files.NewOS()
	}
	return d, nil
}

// Factories binds each dialog kind to its constructor
func Factories(deps Deps) map[host.DialogKind]host.Factory {
	return map[host.DialogKind]host.Factory{
		host.KindMigrate: func(ctx context.Context, parent host.Window) (host.Dialog, error) {
			return NewMigrateDialog(ctx, parent, deps)
		},
		host.KindRefCleanup: func(ctx context.Context, parent host.Window) (host.Dialog, error) {
			return NewRefCleanupDialog(ctx, parent, deps)
		},
		host.KindFileStruct: func(ctx context.Context, parent host.Window) (host.Dialog, error) {
			return NewFileStructDialog(ctx, parent, deps)
		},
	}
}

// base is shared by the dialogs
type base struct {
	parent host.Window
	title  string
	deps   Deps
	runner *operation.Runner
}

func newBase(parent host.Window, title string, deps Deps) (base, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return base{}, errors.Errorf("creating %s dialog: %w", title, err)
	}
	return base{
		parent: parent,
		title:  title,
		deps:   deps,
		runner: operation.NewRunner(),
	}, nil
}

func (b *base) header() string {
	if b.parent.Title == "" {
		return b.title
	}
	return b.parent.Title + " • " + b.title
}

// pickDirectory asks for a directory and checks that it exists. An empty
// answer keeps the previous selection.
func (b *base) pickDirectory(ctx context.Context, label, current string, mustExist bool) (string, error) {
	if b.deps.Prompter == nil {
		return current, errors.New("dialog is not interactive")
	}

	answer, err := b.deps.Prompter.Text(ctx, label, current)
	if err != nil {
		return current, errors.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return current, nil
	}

	if err := b.checkDirectory(ctx, answer, mustExist); err != nil {
		b.deps.Presenter.Warning(err.Error())
		return current, nil
	}
	return answer, nil
}

// checkDirectory rejects paths that exist but are not directories, and
// missing paths when mustExist is set
func (b *base) checkDirectory(ctx context.Context, path string, mustExist bool) error {
	exists, err := b.deps.Files.Exists(ctx, path)
	if err != nil {
		return err
	}
	if !exists {
		if mustExist {
			return errors.Errorf("%s does not exist", path)
		}
		return nil
	}
	info, err := b.deps.Files.Stat(ctx, path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", path)
	}
	return nil
}

// present is the one place a Result turns into messages
func (b *base) present(ctx context.Context, res *operation.Result) {
	p := b.deps.Presenter
	for _, c := range res.Changes {
		p.LogFileChange(ctx, c)
	}
	for _, w := range res.Warnings {
		p.Warning(w)
	}

	switch res.Kind {
	case operation.KindSuccess:
		p.Success(res.Message)
	case operation.KindValidation:
		p.Warning(res.Message)
	default:
		p.Error(res.Message)
	}

	zerolog.Ctx(ctx).Debug().
		Str("dialog", b.title).
		Stringer("kind", res.Kind).
		Msg("result presented")
}

func (b *base) options(progress status.Reporter) operation.Options {
	return operation.Options{
		Files:    b.deps.Files,
		Progress: progress,
	}
}

// menuLoop shows the dialog's actions until the user closes it
func (b *base) menuLoop(ctx context.Context, describe func() []string, actions []string, handle func(ctx context.Context, action string) error) error {
	if b.deps.Prompter == nil {
		return errors.New("dialog is not interactive")
	}

	for {
		b.deps.Presenter.Header(b.header())
		for _, line := range describe() {
			b.deps.Presenter.Info(line)
		}

		choice, err := b.deps.Prompter.Select(ctx, b.title, append(append([]string{}, actions...), closeAction))
		if err != nil {
			return errors.Errorf("reading choice: %w", err)
		}
		if choice == closeAction {
			return nil
		}
		if err := handle(ctx, choice); err != nil {
			return err
		}
	}
}

const closeAction = "Close"

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
