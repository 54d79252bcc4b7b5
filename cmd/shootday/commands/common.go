package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/shootday/cmd/shootday/opts"
	"github.com/walteh/shootday/pkg/config"
	"github.com/walteh/shootday/pkg/dialog"
	"github.com/walteh/shootday/pkg/operation"
	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrNotOK is returned when a chore ran but did not succeed. The dialog has
// already shown the message, so main only sets the exit status.
var ErrNotOK = errors.Base("operation did not succeed")

// barFor picks a progress bar for the terminal the command writes to
func barFor(cmd *cobra.Command) func() status.Bar {
	return func() status.Bar {
		if color.NoColor {
			return status.NewTextBar(cmd.OutOrStdout())
		}
		return status.NewPtermBar()
	}
}

// commandDeps builds dialog dependencies for a one shot command with cfg
// standing in for the loaded config
func commandDeps(cmd *cobra.Command, o *opts.RootOpts, cfg *config.Config) dialog.Deps {
	deps := o.Deps(o.Console, nil, barFor(cmd))
	deps.Config = cfg
	return deps
}

// copyConfig returns a copy the command flags can override
func copyConfig(o *opts.RootOpts) *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	cfg := *o.Config
	cfg.Migrate.Ignore = append([]string(nil), o.Config.Migrate.Ignore...)
	cfg.RefClean.Ignore = append([]string(nil), o.Config.RefClean.Ignore...)
	return &cfg
}

func finish(ctx context.Context, o *opts.RootOpts, res *operation.Result) error {
	zerolog.Ctx(ctx).Debug().
		Str("operation", res.Operation).
		Stringer("kind", res.Kind).
		Int("count", res.Count).
		Int("changes_shown", o.Console.Changes()).
		Msg("chore finished")

	if res.OK() {
		return nil
	}
	return ErrNotOK
}
