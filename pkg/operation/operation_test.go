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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/shootday/pkg/files"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

// tb is satisfied by *testing.T and *rapid.T
type tb interface {
	require.TestingT
	Helper()
}

// writeTree creates files under root from a rel path to content map
func writeTree(t tb, root string, tree map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0o755))
	for rel, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// readTree returns every regular file under root keyed by slash rel path
func readTree(t tb, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

// 🔧 failingFiles fails MkdirAll for paths ending in failSuffix
type failingFiles struct {
	files.OS
	failSuffix string
}

func (f failingFiles) MkdirAll(ctx context.Context, path string) error {
	if strings.HasSuffix(path, f.failSuffix) {
		return errors.Errorf("permission denied: %s", path)
	}
	return f.OS.MkdirAll(ctx, path)
}

// 🔧 MockRegistrar is a mock implementation of Registrar
type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) SetDataDirectory(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// 🔧 funcOperation runs fn as an operation
type funcOperation struct {
	name  string
	fn    func(ctx context.Context, res *Result) error
	calls int
}

func (op *funcOperation) Name() string { return op.name }

func (op *funcOperation) Execute(ctx context.Context, res *Result) error {
	op.calls++
	return op.fn(ctx, res)
}

func TestRunnerClassifiesErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "success",
			err:         nil,
			wantKind:    KindSuccess,
			wantMessage: "done",
		},
		{
			name:        "validation",
			err:         invalid("date", "the date must be in yymmdd format"),
			wantKind:    KindValidation,
			wantMessage: "invalid date: the date must be in yymmdd format",
		},
		{
			name:        "wrapped_validation",
			err:         errors.Errorf("outer: %w", invalid("source directory", "missing")),
			wantKind:    KindValidation,
			wantMessage: "outer: invalid source directory: missing",
		},
		{
			name:        "runtime",
			err:         errors.New("disk full"),
			wantKind:    KindRuntime,
			wantMessage: "An error occurred: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &funcOperation{name: "test", fn: func(ctx context.Context, res *Result) error {
				res.Message = "done"
				return tt.err
			}}

			res := NewRunner().Run(testContext(t), op)

			assert.Equal(t, "test", res.Operation)
			assert.Equal(t, tt.wantKind, res.Kind, "kind")
			assert.Equal(t, tt.wantMessage, res.Message)
			assert.Equal(t, tt.wantKind == KindSuccess, res.OK())
			if tt.err == nil {
				assert.NoError(t, res.Err)
			} else {
				assert.ErrorIs(t, res.Err, tt.err)
			}
		})
	}
}

func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	op := &funcOperation{name: "test", fn: func(ctx context.Context, res *Result) error { return nil }}
	res := NewRunner().Run(ctx, op)

	assert.Equal(t, KindRuntime, res.Kind)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Zero(t, op.calls, "operation should not run")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "runtime", KindRuntime.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestIgnoreSet(t *testing.T) {
	ctx := testContext(t)

	_, err := newIgnoreSet([]string{"[unclosed"})
	require.Error(t, err)
	assert.True(t, IsValidation(err), "bad globs are a validation failure")

	set, err := newIgnoreSet([]string{"*.tmp", "cache", "Mocap/**/*.bak"})
	require.NoError(t, err)

	tests := []struct {
		rel  string
		want bool
	}{
		{"scratch.tmp", true},
		{"deep/dir/scratch.tmp", true},
		{"cache", true},
		{"Mocap/Raw/take.bak", true},
		{"Mocap/Raw/take.fbx", false},
		{"notes.txt", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, set.match(ctx, filepath.FromSlash(tt.rel)), tt.rel)
	}

	var empty *ignoreSet
	assert.False(t, empty.match(ctx, "anything"))
}
