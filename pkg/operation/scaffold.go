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

package operation

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const scaffoldDoneMessage = "File struct generated.\nCapture settings changed."

// sessionTokenPattern is yymmdd; \d is ASCII only in RE2
var sessionTokenPattern = regexp.MustCompile(`^\d{6}$`)

// 📁 SessionLayout is created under <root>/<token>, in this order
var SessionLayout = [][]string{
	{"Mocap", "Raw"},
	{"Mocap", "Cleaned"},
	{"RefCams"},
}

// dataDirIndex is the SessionLayout entry registered with the host
const dataDirIndex = 2

// 🔌 Registrar stores the active data directory in the host configuration
type Registrar interface {
	SetDataDirectory(ctx context.Context, path string) error
}

// 📝 ScaffoldRequest is what the file struct dialog collects
type ScaffoldRequest struct {
	Root  string
	Token string
	// SkipRegisterOnFailure leaves the host configuration alone when any
	// directory could not be created
	SkipRegisterOnFailure bool
}

// ValidSessionToken reports whether token is six ASCII digits
func ValidSessionToken(token string) bool {
	return sessionTokenPattern.MatchString(token)
}

// SessionPaths returns the layout directories for root and token
func SessionPaths(root, token string) []string {
	base := filepath.Join(root, token)
	paths := make([]string, 0, len(SessionLayout))
	for _, parts := range SessionLayout {
		paths = append(paths, filepath.Join(append([]string{base}, parts...)...))
	}
	return paths
}

// 🏗️ NewScaffoldOperation creates the session layout and registers RefCams
func NewScaffoldOperation(opts Options, registrar Registrar, req ScaffoldRequest) Operation {
	return &scaffoldOperation{
		BaseOperation: NewBaseOperation(opts),
		registrar:     registrar,
		req:           req,
	}
}

type scaffoldOperation struct {
	BaseOperation
	registrar Registrar
	req       ScaffoldRequest
}

func (op *scaffoldOperation) Name() string {
	return "scaffold"
}

func (op *scaffoldOperation) Execute(ctx context.Context, res *Result) error {
	logger := zerolog.Ctx(ctx)

	if !ValidSessionToken(op.req.Token) {
		return invalid("date", "the date must be in yymmdd format")
	}
	if strings.TrimSpace(op.req.Root) == "" {
		return invalid("session directory", "please choose a session directory")
	}
	if op.registrar == nil {
		return errors.New("no host configuration to register the data directory with")
	}

	paths := SessionPaths(op.req.Root, op.req.Token)

	// every directory is attempted, failures are collected
	failed := 0
	for _, path := range paths {
		if err := op.Files.MkdirAll(ctx, path); err != nil {
			failed++
			res.warnf("Could not create directory %s: %v", path, err)
			res.record(status.FileChange{Type: status.FileError, Path: path, Error: err})
			logger.Warn().Err(err).Str("path", path).Msg("creating session directory")
			continue
		}
		res.record(status.FileChange{Type: status.FileCreated, Path: path})
	}

	dataDir := paths[dataDirIndex]

	if failed > 0 && op.req.SkipRegisterOnFailure {
		res.warnf("Data directory not changed, %d of %d directories failed", failed, len(paths))
		res.Message = "File struct generated with errors."
		return nil
	}

	if err := op.registrar.SetDataDirectory(ctx, dataDir); err != nil {
		return errors.Errorf("setting data directory: %w", err)
	}
	res.Path = dataDir

	logger.Info().Str("data_directory", dataDir).Int("failed", failed).Msg("session scaffolded")
	res.Message = scaffoldDoneMessage

	return nil
}
