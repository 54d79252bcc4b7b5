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

	"github.com/walteh/shootday/pkg/files"
	"github.com/walteh/shootday/pkg/status"
)

// 🎯 Operation is one user triggered file chore
type Operation interface {
	// Name is used for logging and results
	Name() string
	// Execute fills res as it goes and returns the error that stopped it.
	// res is never nil.
	Execute(ctx context.Context, res *Result) error
}

// 🔧 Options contains the collaborators shared by all operations
type Options struct {
	// Files is the file system surface, files.OS when nil
	Files files.FileManager
	// Progress receives merge progress, may be nil
	Progress status.Reporter
}

// 🏗️ BaseOperation carries the shared collaborators
type BaseOperation struct {
	Files    files.FileManager
	Progress status.Reporter
}

// 🏭 NewBaseOperation fills in defaults
func NewBaseOperation(opts Options) BaseOperation {
	fm := opts.Files
	if fm == nil {
		fm = files.NewOS()
	}
	return BaseOperation{
		Files:    fm,
		Progress: opts.Progress,
	}
}
