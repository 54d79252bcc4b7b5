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
	"fmt"

	"github.com/walteh/shootday/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📊 Kind is the outcome class of an operation
type Kind int

const (
	KindSuccess    Kind = iota
	KindValidation      // bad input, nothing was touched
	KindRuntime         // a file operation failed part way
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindValidation:
		return "validation"
	case KindRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// 📦 Result is what every operation hands back to the presentation layer
type Result struct {
	Operation string
	Kind      Kind
	Message   string
	// Count is files copied for a merge and files moved for a sort
	Count int
	// Path is the registered data directory after a scaffold
	Path     string
	Changes  []status.FileChange
	Warnings []string
	Err      error
}

// OK reports whether the operation succeeded
func (r *Result) OK() bool {
	return r != nil && r.Kind == KindSuccess
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) record(c status.FileChange) {
	r.Changes = append(r.Changes, c)
}

// ⚠️ ValidationError marks input that was rejected before any mutation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is, or wraps, a ValidationError
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
