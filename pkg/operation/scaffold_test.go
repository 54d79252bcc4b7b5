package operation

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/shootday/pkg/files"
	"github.com/walteh/shootday/pkg/host"
	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
	"pgregory.net/rapid"
)

func TestScaffold(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	h := host.NewMemoryHost("Capture")

	res := NewRunner().Run(ctx, NewScaffoldOperation(Options{}, h, ScaffoldRequest{Root: root, Token: "240101"}))
	require.True(t, res.OK(), res.Message)

	for _, rel := range []string{"Mocap/Raw", "Mocap/Cleaned", "RefCams"} {
		assert.DirExists(t, filepath.Join(root, "240101", filepath.FromSlash(rel)))
	}

	want := filepath.Join(root, "240101", "RefCams")
	assert.Equal(t, want, res.Path)
	assert.Equal(t, want, h.DataDirectory())
	assert.Equal(t, "File struct generated.\nCapture settings changed.", res.Message)
	assert.Empty(t, res.Warnings)

	require.Len(t, res.Changes, 3)
	for _, c := range res.Changes {
		assert.Equal(t, status.FileCreated, c.Type, c.Path)
	}
}

func TestScaffoldIsIdempotent(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	h := host.NewMemoryHost("Capture")
	want := filepath.Join(root, "240315", "RefCams")

	for i := 0; i < 2; i++ {
		res := NewRunner().Run(ctx, NewScaffoldOperation(Options{}, h, ScaffoldRequest{Root: root, Token: "240315"}))
		require.True(t, res.OK(), "run %d: %s", i, res.Message)
		assert.Equal(t, want, res.Path)
	}

	assert.Equal(t, []string{want, want}, h.Writes())
}

func TestScaffoldRejectsBadTokens(t *testing.T) {
	tests := []string{
		"2024-01",
		"24011",
		"2401011",
		"",
		"abcdef",
		"24 101",
		"２４０１０１",
		"../x1",
	}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			ctx := testContext(t)
			root := t.TempDir()
			reg := new(MockRegistrar)

			res := NewRunner().Run(ctx, NewScaffoldOperation(Options{}, reg, ScaffoldRequest{Root: root, Token: token}))

			assert.Equal(t, KindValidation, res.Kind)
			assert.Contains(t, res.Message, "yymmdd")
			assert.Empty(t, readTree(t, root))
			entries, err := files.NewOS().ReadDir(ctx, root)
			require.NoError(t, err)
			assert.Empty(t, entries, "no directories should be created")
			reg.AssertNotCalled(t, "SetDataDirectory", mock.Anything, mock.Anything)
		})
	}
}

func TestScaffoldRequiresRoot(t *testing.T) {
	reg := new(MockRegistrar)

	res := NewRunner().Run(testContext(t), NewScaffoldOperation(Options{}, reg, ScaffoldRequest{Token: "240101"}))

	assert.Equal(t, KindValidation, res.Kind)
	assert.Contains(t, res.Message, "please choose a session directory")
	reg.AssertNotCalled(t, "SetDataDirectory", mock.Anything, mock.Anything)
}

func TestScaffoldRegistersWithHost(t *testing.T) {
	ctx := testContext(t)
	root := t.TempDir()
	want := filepath.Join(root, "231224", "RefCams")

	reg := new(MockRegistrar)
	reg.On("SetDataDirectory", mock.Anything, want).Return(nil).Once()

	res := NewRunner().Run(ctx, NewScaffoldOperation(Options{}, reg, ScaffoldRequest{Root: root, Token: "231224"}))

	require.True(t, res.OK(), res.Message)
	reg.AssertExpectations(t)
}

func TestScaffoldRegistrarFailure(t *testing.T) {
	ctx := testContext(t)
	h := host.NewMemoryHost("Capture")
	h.Err = errors.New("settings are read only")

	res := NewRunner().Run(ctx, NewScaffoldOperation(Options{}, h, ScaffoldRequest{Root: t.TempDir(), Token: "240101"}))

	assert.Equal(t, KindRuntime, res.Kind)
	assert.Contains(t, res.Message, "An error occurred: ")
	assert.Contains(t, res.Message, "settings are read only")
	assert.Empty(t, res.Path)
}

func TestScaffoldDirectoryFailure(t *testing.T) {
	tests := []struct {
		name         string
		skip         bool
		wantRegister bool
		wantMessage  string
	}{
		{
			name:         "registers_anyway",
			skip:         false,
			wantRegister: true,
			wantMessage:  "File struct generated.\nCapture settings changed.",
		},
		{
			name:         "skips_register",
			skip:         true,
			wantRegister: false,
			wantMessage:  "File struct generated with errors.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext(t)
			root := t.TempDir()
			fm := failingFiles{failSuffix: "Cleaned"}
			dataDir := filepath.Join(root, "240101", "RefCams")

			reg := new(MockRegistrar)
			if tt.wantRegister {
				reg.On("SetDataDirectory", mock.Anything, dataDir).Return(nil).Once()
			}

			res := NewRunner().Run(ctx, NewScaffoldOperation(Options{Files: fm}, reg, ScaffoldRequest{
				Root:                  root,
				Token:                 "240101",
				SkipRegisterOnFailure: tt.skip,
			}))

			require.True(t, res.OK(), res.Message)
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.DirExists(t, filepath.Join(root, "240101", "Mocap", "Raw"))
			assert.DirExists(t, dataDir, "later directories are still attempted")
			assert.NoDirExists(t, filepath.Join(root, "240101", "Mocap", "Cleaned"))

			require.NotEmpty(t, res.Warnings)
			assert.Contains(t, res.Warnings[0], "Could not create directory")

			var failed []string
			for _, c := range res.Changes {
				if c.Type == status.FileError {
					failed = append(failed, c.Path)
				}
			}
			assert.Equal(t, []string{filepath.Join(root, "240101", "Mocap", "Cleaned")}, failed)

			if tt.wantRegister {
				reg.AssertExpectations(t)
				assert.Equal(t, dataDir, res.Path)
			} else {
				reg.AssertNotCalled(t, "SetDataDirectory", mock.Anything, mock.Anything)
				assert.Empty(t, res.Path)
			}
		})
	}
}

func TestSessionPaths(t *testing.T) {
	root := filepath.Join("shows", "agbo")
	assert.Equal(t, []string{
		filepath.Join(root, "240101", "Mocap", "Raw"),
		filepath.Join(root, "240101", "Mocap", "Cleaned"),
		filepath.Join(root, "240101", "RefCams"),
	}, SessionPaths(root, "240101"))
}

func TestValidSessionTokenProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[0-9]{6}`).Draw(t, "token")
		assert.True(t, ValidSessionToken(token), token)
	})

	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[0-9]{0,5}|[0-9]{7,10}`).Draw(t, "token")
		assert.False(t, ValidSessionToken(token), token)
	})

	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[0-9]{0,5}`).Draw(t, "prefix")
		bad := rapid.SampledFrom([]string{"-", "a", " ", "/", "."}).Draw(t, "bad")
		token := prefix + bad
		for len(token) < 6 {
			token += "0"
		}
		assert.False(t, ValidSessionToken(token), token)
	})
}
