package dialog

import (
	"context"
	"fmt"

	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/operation"
)

const (
	actionSelectReference = "Select Reference Directory"
	actionCleanup         = "Cleanup Ref Cams"

	// publishWarning is shown once, when the dialog is first created
	publishWarning = "Only cleanup after shotgrid publish"
)

// 🗂️ RefCleanupDialog sorts loose reference camera files into prefix folders
type RefCleanupDialog struct {
	base

	dir string
}

var _ host.Dialog = (*RefCleanupDialog)(nil)

func NewRefCleanupDialog(ctx context.Context, parent host.Window, deps Deps) (*RefCleanupDialog, error) {
	b, err := newBase(parent, "Reference Cam Cleanup", deps)
	if err != nil {
		return nil, err
	}
	b.deps.Presenter.Warning(publishWarning)
	return &RefCleanupDialog{base: b}, nil
}

// SetReferenceDirectory selects the directory to sort, which must exist
func (d *RefCleanupDialog) SetReferenceDirectory(ctx context.Context, path string) error {
	if err := d.checkDirectory(ctx, path, true); err != nil {
		return err
	}
	d.dir = path
	return nil
}

func (d *RefCleanupDialog) ReferenceDirectory() string { return d.dir }

// Submit sorts the selected directory
func (d *RefCleanupDialog) Submit(ctx context.Context) *operation.Result {
	cfg := d.deps.Config.RefClean
	res := d.runner.Run(ctx, operation.NewSortOperation(d.options(nil), operation.SortRequest{
		Directory: d.dir,
		Collision: operation.CollisionPolicy(cfg.Collision),
		Ignore:    cfg.Ignore,
	}))
	d.present(ctx, res)
	return res
}

func (d *RefCleanupDialog) Show(ctx context.Context) error {
	describe := func() []string {
		return []string{fmt.Sprintf("Reference Directory: %s", orNone(d.dir))}
	}

	return d.menuLoop(ctx, describe, []string{actionSelectReference, actionCleanup}, func(ctx context.Context, action string) error {
		var err error
		switch action {
		case actionSelectReference:
			d.dir, err = d.pickDirectory(ctx, "Reference directory", d.dir, true)
		case actionCleanup:
			d.Submit(ctx)
		}
		return err
	})
}
