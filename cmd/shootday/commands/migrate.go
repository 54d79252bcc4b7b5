package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/shootday/cmd/shootday/opts"
	"github.com/walteh/shootday/pkg/dialog"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd(o *opts.RootOpts) *cobra.Command {
	var (
		src    string
		dst    string
		ignore []string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Merge a source directory into a destination directory",
		Long: `Migrate copies every file under the source into the destination.
Existing destination files with the same path are overwritten, files that
only exist in the destination are kept, and missing directories are created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "migrate").Logger().WithContext(cmd.Context())

			cfg := copyConfig(o)
			cfg.Migrate.Ignore = append(cfg.Migrate.Ignore, ignore...)

			d, err := dialog.NewMigrateDialog(ctx, o.Host.MainWindow(), commandDeps(cmd, o, cfg))
			if err != nil {
				return err
			}
			if err := d.SetSource(ctx, src); err != nil {
				return err
			}
			if err := d.SetDestination(ctx, dst); err != nil {
				return err
			}

			return finish(ctx, o, d.Submit(ctx))
		},
	}

	cmd.Flags().StringVar(&src, "src", "", "source directory")
	cmd.Flags().StringVar(&dst, "dst", "", "destination directory, created when missing")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob of paths to leave out (repeatable)")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")

	return cmd
}
