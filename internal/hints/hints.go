// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ForUnknownTemplate lists the template ids the catalog knows.
func ForUnknownTemplate(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMissingFields suggests how to supply missing context fields.
// Staff fields get an extra pointer to the config file signatory.
func ForMissingFields(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	hints := []string{"add them to the context file or pass --set path=value"}
	if lo.SomeBy(paths, func(p string) bool { return strings.HasPrefix(p, "staff.") }) {
		hints = append(hints, "set a default signatory under staff: in the config file")
	}
	return formatHints(hints)
}

// ForConfigNotFound suggests --config and the per-user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	idx := slices.IndexFunc(searchedPaths, func(p string) bool {
		return strings.Contains(p, "go-admitdoc")
	})
	if idx >= 0 {
		hint += " or create " + searchedPaths[idx]
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForContextFile explains the accepted context file shape.
func ForContextFile() string {
	return formatHints([]string{
		"context files are YAML or JSON mappings, e.g. student: {fullName: Jane}",
		"quote values with leading zeros such as reference numbers and phone numbers (\"000123\")",
	})
}

// ForUnsupportedText points at the TrueType font settings.
func ForUnsupportedText() string {
	return format("set pdf.fontRegular (and pdf.fontBold) in the config file or ADMITDOC_FONT to a UTF-8 TrueType font")
}

// ForDateFormat lists the date presets and tokens.
func ForDateFormat() string {
	return format("use a preset (iso, european, us, long) or tokens like DD/MM/YYYY, [literal] for text")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
