package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/shootday/cmd/shootday/commands"
	"github.com/walteh/shootday/cmd/shootday/opts"
	"github.com/walteh/shootday/pkg/config"
	"github.com/walteh/shootday/pkg/files"
	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile   string
	hostSettings string
	debugLogging bool
)

// NewCommand builds the root command with every subcommand attached
func NewCommand() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "shootday",
		Short: "Capture day file chores: migrate, scaffold and sort reference cams",
		Long: `shootday runs the pipeline chores around a capture day.

It can merge one directory tree into another, create the dated directory
layout for a session and point the capture host at its RefCams folder, and
sort loose reference camera files into folders by filename prefix.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return fillRootOpts(cmd.Context(), cmd, rootOpts)
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(
		commands.NewMigrateCmd(rootOpts),
		commands.NewScaffoldCmd(rootOpts),
		commands.NewRefCleanCmd(rootOpts),
		commands.NewMenuCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// fillRootOpts loads config and wires the host once flags are parsed
func fillRootOpts(ctx context.Context, cmd *cobra.Command, o *opts.RootOpts) error {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, configFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, configFile)
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	settings := hostSettings
	if settings == "" {
		settings = cfg.Host.Settings
	}
	if settings == "" {
		settings, err = host.DefaultSettingsPath()
		if err != nil {
			return errors.Errorf("locating host settings: %w", err)
		}
	}

	o.Config = cfg
	o.Host = host.NewFileHost(settings, host.Window{Title: cfg.Host.Window})
	o.Console = log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx))
	o.Files = files.NewOS()

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.String()).
		Str("host_settings", settings).
		Msg("root options ready")

	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFileName, "config file path (.hcl, .yaml or .json)")
	cmd.PersistentFlags().StringVar(&hostSettings, "host-settings", "", "host settings file the data directory is written to")
	cmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugLogging {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
