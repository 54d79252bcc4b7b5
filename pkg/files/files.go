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

// Package files is the file-system surface the operations run against.
package files

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager handles all file system operations
type FileManager interface {
	// ReadDir lists the names of the entries directly inside dir, sorted
	ReadDir(ctx context.Context, dir string) ([]string, error)
	// Stat follows symlinks
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	Exists(ctx context.Context, path string) (bool, error)

	MkdirAll(ctx context.Context, path string) error

	// CopyFile copies a single file, overwriting dst
	CopyFile(ctx context.Context, src, dst string) error
	// CopyTree copies the whole tree at src into a new dst and returns the
	// number of plain files it copied. skip may be nil.
	CopyTree(ctx context.Context, src, dst string, skip SkipFunc) (int, error)

	Rename(ctx context.Context, src, dst string) error
}

// SkipFunc reports whether a path relative to the tree root should be left out
type SkipFunc func(rel string) bool

const dirMode = 0o755

// 🔧 OS implements FileManager on the local file system
type OS struct{}

var _ FileManager = OS{}

// 🏭 NewOS returns the real file manager
func NewOS() OS {
	return OS{}
}

func (OS) ReadDir(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (OS) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stat %s: %w", path, err)
	}
	return info, nil
}

func (OS) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking existence of %s: %w", path, err)
}

func (OS) MkdirAll(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return errors.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

func (OS) CopyFile(ctx context.Context, src, dst string) error {
	zerolog.Ctx(ctx).Trace().Str("src", src).Str("dst", dst).Msg("copying file")
	return copyFile(src, dst)
}

func (OS) CopyTree(ctx context.Context, src, dst string, skip SkipFunc) (int, error) {
	zerolog.Ctx(ctx).Debug().Str("src", src).Str("dst", dst).Msg("copying tree")
	return copyTree(ctx, src, dst, skip, nil)
}

// copyTree follows directory links. parents holds the real directories
// the links above this call were found in.
func copyTree(ctx context.Context, src, dst string, skip SkipFunc, parents []string) (int, error) {
	// walk the real directory when src itself is a link
	if resolved, err := filepath.EvalSymlinks(src); err == nil {
		src = resolved
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Errorf("relative path of %s: %w", path, err)
		}
		if rel != "." && skip != nil && skip(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)

		// WalkDir does not follow links, Stat does
		info, err := os.Stat(path)
		if err != nil {
			return errors.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			linked := d.Type()&fs.ModeSymlink != 0
			var chain []string
			if linked {
				resolved, err := filepath.EvalSymlinks(path)
				if err != nil {
					return errors.Errorf("resolving %s: %w", path, err)
				}
				chain = append(parents[:len(parents):len(parents)], filepath.Join(src, filepath.Dir(rel)))
				for _, dir := range chain {
					if within(resolved, dir) {
						return errors.Errorf("symlink loop: %s points at %s, which contains it", path, resolved)
					}
				}
			}

			if err := os.MkdirAll(target, info.Mode().Perm()|0o700); err != nil {
				return errors.Errorf("creating directory %s: %w", target, err)
			}
			if linked {
				n, err := copyTree(ctx, path, target, nil, chain)
				copied += n
				return err
			}
			return nil
		}

		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, errors.Errorf("copying tree %s: %w", src, err)
	}
	return copied, nil
}

// within reports whether path is dir or somewhere below it
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (OS) Rename(ctx context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return errors.Errorf("moving %s to %s: %w", src, dst, err)
	}
	return nil
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return errors.Errorf("stat source file: %w", err)
	}

	destination, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	// OpenFile only applies the mode when it creates the file
	if err := destination.Chmod(info.Mode().Perm()); err != nil {
		return errors.Errorf("setting mode on %s: %w", dst, err)
	}

	return destination.Close()
}
