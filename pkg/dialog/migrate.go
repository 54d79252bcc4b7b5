package dialog

import (
	"context"
	"fmt"

	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/operation"
	"github.com/walteh/shootday/pkg/status"
)

const (
	actionSelectSource      = "Select Source Directory"
	actionSelectDestination = "Select Destination Directory"
	actionMigrate           = "Migrate"
)

// 📦 MigrateDialog merges a source tree into a destination tree
type MigrateDialog struct {
	base

	src      string
	dst      string
	migrated int // files copied by every run of this dialog
	progress *status.Manager
	status   string
}

var _ host.Dialog = (*MigrateDialog)(nil)

func NewMigrateDialog(ctx context.Context, parent host.Window, deps Deps) (*MigrateDialog, error) {
	b, err := newBase(parent, "Migrate Settings", deps)
	if err != nil {
		return nil, err
	}
	return &MigrateDialog{base: b}, nil
}

// SetSource selects the source directory, which must exist
func (d *MigrateDialog) SetSource(ctx context.Context, path string) error {
	if err := d.checkDirectory(ctx, path, true); err != nil {
		return err
	}
	d.src = path
	return nil
}

// SetDestination selects the destination, which is created when missing
func (d *MigrateDialog) SetDestination(ctx context.Context, path string) error {
	if err := d.checkDirectory(ctx, path, false); err != nil {
		return err
	}
	d.dst = path
	return nil
}

func (d *MigrateDialog) Source() string      { return d.src }
func (d *MigrateDialog) Destination() string { return d.dst }

// Migrated is the running file count of this dialog instance
func (d *MigrateDialog) Migrated() int { return d.migrated }

// StatusText is what the progress bar last said
func (d *MigrateDialog) StatusText() string { return d.status }

// Progress is the tracker of the latest run, nil before the first
func (d *MigrateDialog) Progress() *status.Manager { return d.progress }

// Submit runs the merge with the current selections
func (d *MigrateDialog) Submit(ctx context.Context) *operation.Result {
	var bar status.Bar
	if d.deps.NewBar != nil {
		bar = d.deps.NewBar()
	}
	d.progress = status.NewManager(nil, bar)

	res := d.runner.Run(ctx, operation.NewMergeOperation(d.options(d.progress), operation.MergeRequest{
		Source:      d.src,
		Destination: d.dst,
		Ignore:      d.deps.Config.Migrate.Ignore,
	}))

	d.migrated += res.Count
	if finished := d.progress.Finished(); finished != "" {
		d.status = finished
	}

	d.present(ctx, res)
	return res
}

func (d *MigrateDialog) Show(ctx context.Context) error {
	describe := func() []string {
		lines := []string{
			fmt.Sprintf("Source Directory: %s", orNone(d.src)),
			fmt.Sprintf("Destination Directory: %s", orNone(d.dst)),
		}
		if d.status != "" {
			lines = append(lines, d.status)
		}
		return lines
	}

	return d.menuLoop(ctx, describe, []string{actionSelectSource, actionSelectDestination, actionMigrate}, func(ctx context.Context, action string) error {
		var err error
		switch action {
		case actionSelectSource:
			d.src, err = d.pickDirectory(ctx, "Source directory", d.src, true)
		case actionSelectDestination:
			d.dst, err = d.pickDirectory(ctx, "Destination directory", d.dst, false)
		case actionMigrate:
			d.Submit(ctx)
		}
		return err
	})
}
