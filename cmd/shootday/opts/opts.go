package opts

import (
	"github.com/walteh/shootday/pkg/config"
	"github.com/walteh/shootday/pkg/dialog"
	"github.com/walteh/shootday/pkg/files"
	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/log"
	"github.com/walteh/shootday/pkg/status"
)

// RootOpts contains shared options used by all commands. It is filled in by
// the root command before any subcommand runs.
type RootOpts struct {
	Config  *config.Config
	Host    *host.FileHost
	Console *log.Logger
	Files   files.FileManager
}

// Deps builds the dialog dependencies for one command
func (o *RootOpts) Deps(presenter dialog.Presenter, prompter dialog.Prompter, newBar func() status.Bar) dialog.Deps {
	return dialog.Deps{
		Host:      o.Host,
		Config:    o.Config,
		Files:     o.Files,
		Presenter: presenter,
		Prompter:  prompter,
		NewBar:    newBar,
	}
}
