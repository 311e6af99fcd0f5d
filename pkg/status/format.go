package status

import (
	"fmt"
	"strings"
)

// FileFormatter defines how entry outcomes and progress should be formatted
type FileFormatter interface {
	// FormatEntry formats the outcome of one entry
	FormatEntry(entry Entry) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatEntry formats an entry outcome with emojis
func (f *DefaultFileFormatter) FormatEntry(entry Entry) string {
	if errs := entry.Errors(); len(errs) > 0 {
		return fmt.Sprintf("❌ Failed %s: %s", entry.RelOldPath(), strings.Join(errs, "; "))
	}

	renamed := entry.Rename == RenameDone
	modified := entry.Content == ContentChanged
	switch {
	case renamed && modified:
		return fmt.Sprintf("📝 Modified and renamed %s -> %s", entry.RelOldPath(), entry.RelNewPath())
	case renamed:
		return fmt.Sprintf("✏️  Renamed %s -> %s", entry.RelOldPath(), entry.RelNewPath())
	case modified:
		return fmt.Sprintf("📝 Modified %s", entry.RelOldPath())
	default:
		return fmt.Sprintf("👍 Unchanged %s", entry.RelOldPath())
	}
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

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
