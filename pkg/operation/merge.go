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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const mergeDoneMessage = "Files copied successfully"

// 📦 MergeRequest is what the migrate dialog collects
type MergeRequest struct {
	Source      string
	Destination string
	// Ignore holds doublestar globs matched against paths relative to Source
	Ignore []string
}

// 📦 NewMergeOperation copies Source into Destination, merging into
// directories that already exist
func NewMergeOperation(opts Options, req MergeRequest) Operation {
	return &mergeOperation{
		BaseOperation: NewBaseOperation(opts),
		req:           req,
	}
}

type mergeOperation struct {
	BaseOperation
	req    MergeRequest
	ignore *ignoreSet
	copied int
}

func (op *mergeOperation) Name() string {
	return "migrate"
}

// 🏃 Execute runs the merge
func (op *mergeOperation) Execute(ctx context.Context, res *Result) (err error) {
	logger := zerolog.Ctx(ctx)

	if err := op.validate(); err != nil {
		return err
	}

	op.ignore, err = newIgnoreSet(op.req.Ignore)
	if err != nil {
		return err
	}

	src, dst := op.req.Source, op.req.Destination

	// the total is a snapshot, entries added later are not counted
	entries, err := op.Files.ReadDir(ctx, src)
	if err != nil {
		return errors.Errorf("filesystem access: %w", err)
	}
	total := len(entries)

	if err := op.Files.MkdirAll(ctx, dst); err != nil {
		return errors.Errorf("preparing destination: %w", err)
	}

	op.copied = 0
	op.startProgress(ctx, total)
	defer func() {
		res.Count = op.copied
		msg := mergeDoneMessage
		if err != nil {
			msg = fmt.Sprintf("Stopped after %d files", op.copied)
		}
		op.finishProgress(ctx, msg)
	}()

	for i, name := range entries {
		if err := op.mergeEntry(ctx, filepath.Join(src, name), filepath.Join(dst, name), name); err != nil {
			return errors.Errorf("migrating %s: %w", name, err)
		}

		res.Count = op.copied
		op.updateProgress(ctx, status.Progress{
			Done:   i + 1,
			Total:  total,
			Entry:  name,
			Copied: op.copied,
		})
	}

	logger.Debug().Int("copied", op.copied).Int("entries", total).Msg("merge complete")
	res.Message = fmt.Sprintf("%s (%d files)", mergeDoneMessage, op.copied)

	return nil
}

func (op *mergeOperation) validate() error {
	if strings.TrimSpace(op.req.Source) == "" {
		return invalid("source directory", "no source directory selected")
	}
	if strings.TrimSpace(op.req.Destination) == "" {
		return invalid("destination directory", "no destination directory selected")
	}

	src, err := filepath.Abs(op.req.Source)
	if err != nil {
		return invalid("source directory", err.Error())
	}
	dst, err := filepath.Abs(op.req.Destination)
	if err != nil {
		return invalid("destination directory", err.Error())
	}

	// copying a tree into itself never terminates and copying a file onto
	// itself truncates it
	if rel, err := filepath.Rel(src, dst); err == nil && !escapes(rel) {
		return invalid("destination directory", "destination must not be the source or inside it")
	}

	return nil
}

// escapes reports whether a relative path leaves its base directory
func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// mergeEntry copies one entry; rel is its path relative to the source root
func (op *mergeOperation) mergeEntry(ctx context.Context, src, dst, rel string) error {
	if op.ignore.match(ctx, rel) {
		return nil
	}

	info, err := op.Files.Stat(ctx, src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return op.mergeDir(ctx, src, dst, rel)
	}

	if err := op.Files.CopyFile(ctx, src, dst); err != nil {
		return err
	}
	op.copied++
	return nil
}

func (op *mergeOperation) mergeDir(ctx context.Context, src, dst, rel string) error {
	exists, err := op.Files.Exists(ctx, dst)
	if err != nil {
		return err
	}

	if !exists {
		n, err := op.Files.CopyTree(ctx, src, dst, func(sub string) bool {
			return op.ignore.match(ctx, filepath.Join(rel, sub))
		})
		op.copied += n
		return err
	}

	names, err := op.Files.ReadDir(ctx, src)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := op.mergeEntry(ctx, filepath.Join(src, name), filepath.Join(dst, name), filepath.Join(rel, name)); err != nil {
			return err
		}
	}
	return nil
}

func (op *mergeOperation) startProgress(ctx context.Context, total int) {
	if op.Progress != nil {
		op.Progress.StartOperation(ctx, total)
	}
}

func (op *mergeOperation) updateProgress(ctx context.Context, p status.Progress) {
	if op.Progress != nil {
		op.Progress.UpdateProgress(ctx, p)
	}
}

func (op *mergeOperation) finishProgress(ctx context.Context, msg string) {
	if op.Progress != nil {
		op.Progress.FinishOperation(ctx, msg)
	}
}
