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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	barWidth   = 30 // cells in the text progress bar
	entryWidth = 35 // Base width for the entry name
)

// 🎯 FormatBarLine renders a one line text bar for consoles without pterm
// support, e.g. "[#########.....] 3/5 Scene_01"
func FormatBarLine(p Progress) string {
	filled := 0
	if p.Total > 0 {
		filled = p.Done * barWidth / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := color.GreenString(strings.Repeat("#", filled)) + color.HiBlackString(strings.Repeat(".", barWidth-filled))

	return fmt.Sprintf("[%s] %d/%d %-*s",
		bar,
		p.Done,
		p.Total,
		entryWidth,
		p.Entry,
	)
}
