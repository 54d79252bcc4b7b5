package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCopyFile(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	fm := NewOS()

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "new content")
	writeFile(t, dst, "old content that is longer")
	require.NoError(t, os.Chmod(src, 0o600))

	require.NoError(t, fm.CopyFile(ctx, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data), "destination should be overwritten")

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "mode should follow the source")
}

func TestCopyFileMissingSource(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	err := NewOS().CopyFile(ctx, filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening source file")
}

func TestCopyTree(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		skip      SkipFunc
		wantCount int
		wantFiles []string
		wantGone  []string
	}{
		{
			name: "copies_nested_files",
			files: map[string]string{
				"a.txt":         "a",
				"sub/b.txt":     "b",
				"sub/deep/c.md": "c",
			},
			wantCount: 3,
			wantFiles: []string{"a.txt", "sub/b.txt", "sub/deep/c.md"},
		},
		{
			name: "skips_files_and_directories",
			files: map[string]string{
				"keep.txt":      "k",
				"drop.tmp":      "d",
				"cache/x.bin":   "x",
				"cache/y/z.bin": "z",
			},
			skip: func(rel string) bool {
				return rel == "drop.tmp" || rel == "cache"
			},
			wantCount: 1,
			wantFiles: []string{"keep.txt"},
			wantGone:  []string{"drop.tmp", "cache"},
		},
		{
			name:      "empty_tree",
			files:     map[string]string{},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			src := filepath.Join(t.TempDir(), "src")
			dst := filepath.Join(t.TempDir(), "dst")
			require.NoError(t, os.MkdirAll(src, 0o755))
			for rel, content := range tt.files {
				writeFile(t, filepath.Join(src, rel), content)
			}

			n, err := NewOS().CopyTree(ctx, src, dst, tt.skip)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, n, "copied count")

			for _, rel := range tt.wantFiles {
				data, err := os.ReadFile(filepath.Join(dst, rel))
				require.NoError(t, err, "reading %s", rel)
				assert.Equal(t, tt.files[rel], string(data))
			}
			for _, rel := range tt.wantGone {
				assert.NoFileExists(t, filepath.Join(dst, rel))
				assert.NoDirExists(t, filepath.Join(dst, rel))
			}
		})
	}
}

func TestCopyTreeFollowsDirectoryLinks(t *testing.T) {
	ctx := testContext(t)
	src := filepath.Join(t.TempDir(), "src")
	dst := filepath.Join(t.TempDir(), "dst")
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "b")
	require.NoError(t, os.Symlink(filepath.Join(src, "sub"), filepath.Join(src, "alias")))

	n, err := NewOS().CopyTree(ctx, src, dst, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.FileExists(t, filepath.Join(dst, "alias", "b.txt"))
}

func TestCopyTreeStopsOnLinkLoop(t *testing.T) {
	tests := []struct {
		name string
		link string // relative to src
		to   string // relative to src
	}{
		{name: "link_to_root", link: "sub/loop", to: "."},
		{name: "link_to_parent", link: "sub/deep/loop", to: "sub"},
		{name: "link_to_itself_dir", link: "sub/self", to: "sub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			src := filepath.Join(t.TempDir(), "src")
			dst := filepath.Join(t.TempDir(), "dst")
			writeFile(t, filepath.Join(src, "sub", "deep", "c.txt"), "c")
			require.NoError(t, os.Symlink(filepath.Join(src, tt.to), filepath.Join(src, tt.link)))

			_, err := NewOS().CopyTree(ctx, src, dst, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "symlink loop")
		})
	}
}

func TestExists(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	fm := NewOS()

	ok, err := fm.Exists(ctx, dir)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fm.Exists(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadDirSorted(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		writeFile(t, filepath.Join(dir, name), name)
	}

	names, err := NewOS().ReadDir(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestRename(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "from.txt")
	dst := filepath.Join(dir, "to.txt")
	writeFile(t, src, "x")

	require.NoError(t, NewOS().Rename(ctx, src, dst))
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}
