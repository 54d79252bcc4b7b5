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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations one at a time on the calling goroutine
type Runner struct{}

// 🏗️ NewRunner creates a new runner
func NewRunner() *Runner {
	return &Runner{}
}

// 🏃 Run executes op and classifies how it ended. It never returns nil.
func (r *Runner) Run(ctx context.Context, op Operation) *Result {
	logger := zerolog.Ctx(ctx).With().Str("operation", op.Name()).Logger()
	ctx = logger.WithContext(ctx)

	res := &Result{Operation: op.Name()}

	if err := ctx.Err(); err != nil {
		res.Kind = KindRuntime
		res.Err = errors.Errorf("operation not started: %w", err)
		res.Message = res.Err.Error()
		return res
	}

	logger.Debug().Msg("starting operation")

	err := op.Execute(ctx, res)
	switch {
	case err == nil:
		res.Kind = KindSuccess
	case IsValidation(err):
		res.Kind = KindValidation
		res.Err = err
		res.Message = err.Error()
	default:
		res.Kind = KindRuntime
		res.Err = err
		res.Message = "An error occurred: " + err.Error()
	}

	logger.Info().
		Stringer("kind", res.Kind).
		Int("count", res.Count).
		Int("warnings", len(res.Warnings)).
		Err(res.Err).
		Msg("operation finished")

	return res
}
