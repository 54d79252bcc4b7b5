package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/shootday/cmd/shootday/opts"
	"github.com/walteh/shootday/pkg/dialog"
	"github.com/walteh/shootday/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRefCleanCmd creates the refclean command
func NewRefCleanCmd(o *opts.RootOpts) *cobra.Command {
	var (
		dir       string
		collision string
	)

	cmd := &cobra.Command{
		Use:   "refclean",
		Short: "Sort reference camera files into folders by name prefix",
		Long: `Refclean moves every file in the directory into a subfolder named after
the part of its filename before the first underscore. cam_A.mov and cam_B.mov
both end up in cam/.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "refclean").Logger().WithContext(cmd.Context())

			cfg := copyConfig(o)
			if cmd.Flags().Changed("collision") {
				policy, err := operation.ParseCollisionPolicy(collision)
				if err != nil {
					return errors.Errorf("--collision: %w", err)
				}
				cfg.RefClean.Collision = string(policy)
			}

			d, err := dialog.NewRefCleanupDialog(ctx, o.Host.MainWindow(), commandDeps(cmd, o, cfg))
			if err != nil {
				return err
			}
			if err := d.SetReferenceDirectory(ctx, dir); err != nil {
				return err
			}

			return finish(ctx, o, d.Submit(ctx))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "reference camera directory")
	cmd.Flags().StringVar(&collision, "collision", "", "what to do when the target name is taken: fail or suffix")
	_ = cmd.MarkFlagRequired("dir")

	return cmd
}
