package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 FileChangeType represents the type of change made to a path
type FileChangeType int

const (
	FileCreated FileChangeType = iota
	FileMoved
	FileSkipped
	FileError
)

func (t FileChangeType) String() string {
	switch t {
	case FileCreated:
		return "created"
	case FileMoved:
		return "moved"
	case FileSkipped:
		return "skipped"
	case FileError:
		return "error"
	default:
		return "unknown"
	}
}

// 🖼️ FileChange represents a change to one path
type FileChange struct {
	Type        FileChangeType
	Path        string
	Target      string // set for moves
	Description string
	Error       error
}

// 📢 UserLogger prints user facing feedback with pterm and mirrors it to zerolog
type UserLogger struct {
	log zerolog.Logger
	out io.Writer
}

// 🎯 NewUserLogger creates a new user logger. out may be nil for stdout.
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

func (u *UserLogger) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	p := base.WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style})
	if u.out != nil {
		p = p.WithWriter(u.out)
	}
	return p
}

// 📝 LogFileChange logs a file change with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(ctx context.Context, change FileChange) {
	relPath := filepath.Base(change.Path)

	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileCreated:
		action = "Created"
		printer = u.printer(pterm.Success, "✨")
	case FileMoved:
		action = "Moved"
		printer = u.printer(pterm.Info, "📦")
	case FileSkipped:
		action = "Skipped"
		printer = u.printer(pterm.Warning, "⏭️")
	default:
		action = "Error"
		printer = u.printer(pterm.Error, "❌")
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if change.Target != "" {
		msg += fmt.Sprintf(" -> %s", change.Target)
	}
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	printer.Println(msg)
	if change.Error != nil {
		u.printer(pterm.Error, "❌").Println(change.Error)
		u.log.Error().Err(change.Error).Str("path", change.Path).Msg(msg)
		return
	}
	u.log.Debug().Str("path", change.Path).Msg(msg)
}

// Header announces a dialog
func (u *UserLogger) Header(msg string) {
	out := u.out
	if out == nil {
		out = os.Stdout
	}
	pterm.Fprintln(out, "\n"+pterm.Bold.Sprint(msg)+"\n")
	u.log.Info().Msg(msg)
}

func (u *UserLogger) Info(msg string) {
	u.printer(pterm.Info, "ℹ️").Println(msg)
	u.log.Info().Msg(msg)
}

func (u *UserLogger) Success(msg string) {
	u.printer(pterm.Success, "✅").Println(msg)
	u.log.Info().Msg(msg)
}

func (u *UserLogger) Warning(msg string) {
	u.printer(pterm.Warning, "⚠️").Println(msg)
	u.log.Warn().Msg(msg)
}

func (u *UserLogger) Error(msg string) {
	u.printer(pterm.Error, "❌").Println(msg)
	u.log.Error().Msg(msg)
}
