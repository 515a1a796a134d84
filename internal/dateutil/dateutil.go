// Package dateutil converts user-friendly date formats to Go layouts and
// recognizes the date strings that appear in admissions records.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// Named presets. PresetLong is what letters use by default ("January 5, 2025").
const (
	PresetISO      = "iso"
	PresetEuropean = "european"
	PresetUS       = "us"
	PresetLong     = "long"
)

// LongLayout is the Go layout of the "long" preset.
const LongLayout = "January 2, 2006"

// isoLayout is used by ResolveDate for the bare "auto" value.
const isoLayout = "2006-01-02"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	PresetISO:      "YYYY-MM-DD",
	PresetEuropean: "DD/MM/YYYY",
	PresetUS:       "MM/DD/YYYY",
	PresetLong:     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Bracketed text is copied literally: "[Due]: D MMMM" keeps "Due".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &b)
		if n == 0 {
			b.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return b.String(), nil
}

// matchToken writes the Go layout of the longest token prefixing s and
// returns the number of bytes consumed, or 0 when s starts with a literal.
func matchToken(s string, b *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// Layout resolves a preset name (case-insensitive) or a token format to a Go
// layout. An empty value yields LongLayout.
func Layout(formatOrPreset string) (string, error) {
	if formatOrPreset == "" {
		return LongLayout, nil
	}
	if preset, ok := DatePresets[strings.ToLower(formatOrPreset)]; ok {
		formatOrPreset = preset
	}
	return ParseDateFormat(formatOrPreset)
}

// isoPattern matches calendar dates with an optional time and zone part.
var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(?:[T ]\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?:Z|[+-]\d{2}:?\d{2})?)?$`)

// isoLayouts are tried in order once isoPattern matched.
var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
}

// looseLayouts cover the hand-typed forms admissions staff use for
// dates that sit in known date fields.
var looseLayouts = []string{
	"2006/01/02",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Monday, January 2, 2006",
}

// ParseISO reports whether s is an ISO-like date ("2025-01-05",
// "2025-01-05T09:30:00Z", ...) and returns the parsed time.
func ParseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !isoPattern.MatchString(s) {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Parse accepts ISO-like dates plus a handful of common written forms.
// Day-first is assumed for slash-separated dates.
func Parse(s string) (time.Time, bool) {
	if t, ok := ParseISO(s); ok {
		return t, true
	}
	s = strings.TrimSpace(s)
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → current date using named preset (iso, european, us, long)
//   - any other value → returned unchanged
func ResolveDate(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}
	if lower == "auto" {
		return now.Format(isoLayout), nil
	}
	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	formatPart := value[len("auto:"):]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}

	layout, err := Layout(formatPart)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
