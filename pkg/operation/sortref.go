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

const sortDoneMessage = "All reference camera files moved to respective folders"

// 🔀 CollisionPolicy decides what happens when the target folder already
// holds a file with the same name
type CollisionPolicy string

const (
	// CollisionFail stops the sort at the first collision
	CollisionFail CollisionPolicy = "fail"
	// CollisionSuffix moves the file as <stem>-<n><ext>
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy accepts "fail", "suffix" or "" (fail)
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CollisionFail:
		return CollisionFail, nil
	case CollisionSuffix:
		return CollisionSuffix, nil
	default:
		return "", invalid("collision policy", fmt.Sprintf("unknown policy %q, want fail or suffix", s))
	}
}

// 📝 SortRequest is what the ref cleanup dialog collects
type SortRequest struct {
	Directory string
	Collision CollisionPolicy
	// Ignore holds doublestar globs matched against file names
	Ignore []string
}

// PrefixKey is the part of name before the first underscore, or all of it
func PrefixKey(name string) string {
	key, _, _ := strings.Cut(name, "_")
	return key
}

// 🗂️ NewSortOperation moves each file in Directory into a folder named by its
// prefix key
func NewSortOperation(opts Options, req SortRequest) Operation {
	return &sortOperation{
		BaseOperation: NewBaseOperation(opts),
		req:           req,
	}
}

type sortOperation struct {
	BaseOperation
	req SortRequest
}

func (op *sortOperation) Name() string {
	return "refclean"
}

func (op *sortOperation) Execute(ctx context.Context, res *Result) error {
	logger := zerolog.Ctx(ctx)

	dir := op.req.Directory
	if strings.TrimSpace(dir) == "" {
		return invalid("reference directory", "no reference directory selected")
	}

	policy, err := ParseCollisionPolicy(string(op.req.Collision))
	if err != nil {
		return err
	}

	ignore, err := newIgnoreSet(op.req.Ignore)
	if err != nil {
		return err
	}

	names, err := op.listFiles(ctx, dir)
	if err != nil {
		return err
	}

	for _, name := range names {
		if ignore.match(ctx, name) {
			res.record(status.FileChange{Type: status.FileSkipped, Path: filepath.Join(dir, name), Description: "ignored"})
			continue
		}

		key := PrefixKey(name)
		switch key {
		case "":
			res.warnf("Left %s in place, its name starts with an underscore", name)
			res.record(status.FileChange{Type: status.FileSkipped, Path: filepath.Join(dir, name), Description: "empty prefix"})
			continue
		case ".", "..":
			// these would resolve to dir itself or its parent
			res.warnf("Left %s in place, %q is not a folder name", name, key)
			res.record(status.FileChange{Type: status.FileSkipped, Path: filepath.Join(dir, name), Description: "dot prefix"})
			continue
		}

		target, err := op.moveIntoFolder(ctx, dir, name, key, policy)
		if err != nil {
			return errors.Errorf("sorting %s: %w", name, err)
		}

		res.Count++
		res.record(status.FileChange{Type: status.FileMoved, Path: filepath.Join(dir, name), Target: target})
		logger.Debug().Str("file", name).Str("target", target).Msg("moved reference file")
	}

	res.Message = sortDoneMessage
	return nil
}

// listFiles returns the regular files directly inside dir
func (op *sortOperation) listFiles(ctx context.Context, dir string) ([]string, error) {
	names, err := op.Files.ReadDir(ctx, dir)
	if err != nil {
		return nil, errors.Errorf("filesystem access: %w", err)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		info, err := op.Files.Stat(ctx, filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Errorf("filesystem access: %w", err)
		}
		if info.Mode().IsRegular() {
			out = append(out, name)
		}
	}
	return out, nil
}

func (op *sortOperation) moveIntoFolder(ctx context.Context, dir, name, key string, policy CollisionPolicy) (string, error) {
	src := filepath.Join(dir, name)
	folder := filepath.Join(dir, key)

	// a file without an underscore sits where its own folder has to go, so
	// it steps aside first
	if key == name {
		tmp, err := op.freeName(ctx, filepath.Join(dir, "."+name+".sorting"))
		if err != nil {
			return "", err
		}
		if err := op.Files.Rename(ctx, src, tmp); err != nil {
			return "", err
		}
		src = tmp
	}

	restore := func() {
		if src == filepath.Join(dir, name) {
			return
		}
		if err := op.Files.Rename(ctx, src, filepath.Join(dir, name)); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Str("file", src).Msg("restoring file name")
		}
	}

	if err := op.Files.MkdirAll(ctx, folder); err != nil {
		restore()
		return "", err
	}

	target := filepath.Join(folder, name)
	exists, err := op.Files.Exists(ctx, target)
	if err != nil {
		restore()
		return "", err
	}
	if exists {
		if policy != CollisionSuffix {
			restore()
			return "", errors.Errorf("%s already exists", target)
		}
		target, err = op.freeName(ctx, target)
		if err != nil {
			restore()
			return "", err
		}
	}

	if err := op.Files.Rename(ctx, src, target); err != nil {
		restore()
		return "", err
	}
	return target, nil
}

// freeName returns path, or <stem>-<n><ext> with the smallest free n
func (op *sortOperation) freeName(ctx context.Context, path string) (string, error) {
	exists, err := op.Files.Exists(ctx, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return path, nil
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		exists, err := op.Files.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}
