package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

const (
	actionSetShootDay      = "Set Shoot Day"
	actionSelectSession    = "Select Session Directory"
	actionGenerateStruct   = "Generate Structure"
	shootDayLabel          = "Shoot Day [yymmdd]"
	sessionDirectoryPrompt = "Session directory"
)

// 📁 FileStructDialog scaffolds a shoot day and points the host at its RefCams
type FileStructDialog struct {
	base

	root string
	date string
}

var _ host.Dialog = (*FileStructDialog)(nil)

func NewFileStructDialog(ctx context.Context, parent host.Window, deps Deps) (*FileStructDialog, error) {
	b, err := newBase(parent, "File Settings", deps)
	if err != nil {
		return nil, err
	}
	return &FileStructDialog{base: b}, nil
}

// SetSessionDirectory selects the session root, which must exist
func (d *FileStructDialog) SetSessionDirectory(ctx context.Context, path string) error {
	if err := d.checkDirectory(ctx, path, true); err != nil {
		return err
	}
	d.root = path
	return nil
}

// SetDate stores the free text date field as typed; it is checked on submit
func (d *FileStructDialog) SetDate(date string) {
	d.date = date
}

func (d *FileStructDialog) SessionDirectory() string { return d.root }
func (d *FileStructDialog) Date() string             { return d.date }

// Submit creates the layout and registers the data directory
func (d *FileStructDialog) Submit(ctx context.Context) *operation.Result {
	res := d.runner.Run(ctx, operation.NewScaffoldOperation(d.options(nil), d.deps.Host, operation.ScaffoldRequest{
		Root:                  d.root,
		Token:                 strings.TrimSpace(d.date),
		SkipRegisterOnFailure: d.deps.Config.Scaffold.SkipRegisterOnFailure,
	}))
	d.present(ctx, res)
	return res
}

func (d *FileStructDialog) Show(ctx context.Context) error {
	describe := func() []string {
		return []string{
			fmt.Sprintf("%s: %s", shootDayLabel, orNone(d.date)),
			fmt.Sprintf("Session Directory: %s", orNone(d.root)),
		}
	}

	return d.menuLoop(ctx, describe, []string{actionSetShootDay, actionSelectSession, actionGenerateStruct}, func(ctx context.Context, action string) error {
		switch action {
		case actionSetShootDay:
			answer, err := d.deps.Prompter.Text(ctx, shootDayLabel, d.date)
			if err != nil {
				return errors.Errorf("reading shoot day: %w", err)
			}
			d.SetDate(answer)
		case actionSelectSession:
			root, err := d.pickDirectory(ctx, sessionDirectoryPrompt, d.root, true)
			if err != nil {
				return err
			}
			d.root = root
		case actionGenerateStruct:
			d.Submit(ctx)
		}
		return nil
	})
}
