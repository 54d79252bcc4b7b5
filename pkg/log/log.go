// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/shootday/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	typeWidth   = 10 // Width for change type
	targetWidth = 40 // Width for move target
)

// 🎯 Logger writes plain console lines and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	changes int
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 📝 formatFileChange formats a file change for display
func (l *Logger) formatFileChange(c status.FileChange) string {
	var symbol rune
	var symbolColor color.Attribute
	switch c.Type {
	case status.FileCreated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case status.FileMoved:
		symbol = '→'
		symbolColor = color.FgBlue
	case status.FileSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	default:
		symbol = '✗'
		symbolColor = color.FgRed
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, c.Path),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", typeWidth, c.Type)))

	if c.Target != "" {
		line += " " + fmt.Sprintf("%-*s", targetWidth, c.Target)
	}
	if c.Description != "" {
		line += " " + color.New(color.Faint).Sprint(c.Description)
	}
	if c.Error != nil {
		line += " " + color.New(color.FgRed).Sprint(c.Error.Error())
	}
	return line
}

// 📝 LogFileChange logs one path level change
func (l *Logger) LogFileChange(ctx context.Context, c status.FileChange) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.changes++
	fmt.Fprintln(l.console, l.formatFileChange(c))

	l.zlog.Debug().
		Str("path", c.Path).
		Stringer("type", c.Type).
		Str("target", c.Target).
		Err(c.Error).
		Msg("file change")
}

// Changes returns how many file changes were logged
func (l *Logger) Changes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.changes
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("shootday")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
