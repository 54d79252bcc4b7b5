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

// Package host is the narrow surface of the capture application that the
// dialogs talk to, plus the menu and the per-kind dialog registry.
package host

import (
	"context"
)

// 🪟 Window is the parent handle dialogs are owned by
type Window struct {
	Title string
}

// 🔌 Host is everything the tool needs from the capture application
type Host interface {
	// MainWindow returns the handle new dialogs are parented to
	MainWindow() Window
	// SetDataDirectory stores the active reference camera folder in the
	// host configuration. Last write wins.
	SetDataDirectory(ctx context.Context, path string) error
}
