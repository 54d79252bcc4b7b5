package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/shootday/cmd/shootday/opts"
	"github.com/walteh/shootday/pkg/dialog"
	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const quitLabel = "Quit"

// NewMenuCmd creates the interactive menu command
func NewMenuCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive tools menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "menu").Logger().WithContext(cmd.Context())

			presenter := status.NewUserLogger(ctx, cmd.OutOrStdout())
			prompter := dialog.NewPtermPrompter()

			registry := host.NewRegistry(o.Host, dialog.Factories(o.Deps(presenter, prompter, barFor(cmd))))
			menu := host.NewMenu(registry)

			labels := append(menu.Labels(), quitLabel)
			for {
				presenter.Header(host.MenuTitle)
				choice, err := prompter.Select(ctx, host.MenuTitle, labels)
				if err != nil {
					return errors.Errorf("reading menu choice: %w", err)
				}
				if choice == quitLabel {
					return nil
				}
				if err := menu.Trigger(ctx, choice); err != nil {
					zerolog.Ctx(ctx).Error().Err(err).Str("label", choice).Msg("menu action failed")
					presenter.Error("An error occurred while opening the window")
				}
			}
		},
	}

	return cmd
}
