package status

import (
	"fmt"
)

// FileFormatter defines how progress should be formatted
type FileFormatter interface {
	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatEntry formats the label shown after one entry was handled
	FormatEntry(p Progress) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatEntry names the entry and the running file count
func (f *DefaultFileFormatter) FormatEntry(p Progress) string {
	return fmt.Sprintf("%s (%d/%d, %d files copied)", p.Entry, p.Done, p.Total, p.Copied)
}
