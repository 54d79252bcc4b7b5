package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/shootday/cmd/shootday/opts"
	"github.com/walteh/shootday/pkg/dialog"
)

// NewScaffoldCmd creates the scaffold command
func NewScaffoldCmd(o *opts.RootOpts) *cobra.Command {
	var (
		root string
		date string
	)

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create the directory layout for a shoot day",
		Long: `Scaffold creates <root>/<date>/Mocap/Raw, <root>/<date>/Mocap/Cleaned and
<root>/<date>/RefCams, then sets the capture host's data directory to the
RefCams folder. The date must be six digits in yymmdd form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "scaffold").Logger().WithContext(cmd.Context())

			d, err := dialog.NewFileStructDialog(ctx, o.Host.MainWindow(), commandDeps(cmd, o, copyConfig(o)))
			if err != nil {
				return err
			}
			if err := d.SetSessionDirectory(ctx, root); err != nil {
				return err
			}
			d.SetDate(date)

			return finish(ctx, o, d.Submit(ctx))
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "session directory")
	cmd.Flags().StringVar(&date, "date", "", "shoot day as yymmdd")
	_ = cmd.MarkFlagRequired("root")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
