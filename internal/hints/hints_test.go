package hints

import (
	"strings"
	"testing"
)

func TestForUnknownTemplate(t *testing.T) {
	t.Parallel()

	if got := ForUnknownTemplate(nil); got != "" {
		t.Errorf("ForUnknownTemplate(nil) = %q, want empty", got)
	}

	got := ForUnknownTemplate([]string{"offerLetter", "interviewInvitation"})
	if !strings.Contains(got, "available: offerLetter, interviewInvitation") {
		t.Errorf("ForUnknownTemplate() = %q", got)
	}
}

func TestForMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		paths       []string
		wantEmpty   bool
		wantStaff   bool
		wantSetFlag bool
	}{
		{
			name:      "no paths",
			paths:     nil,
			wantEmpty: true,
		},
		{
			name:        "student fields only",
			paths:       []string{"student.fullName", "application.startDate"},
			wantSetFlag: true,
		},
		{
			name:        "staff field adds signatory hint",
			paths:       []string{"application.startDate", "staff.email"},
			wantSetFlag: true,
			wantStaff:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForMissingFields(tt.paths)
			if tt.wantEmpty {
				if got != "" {
					t.Errorf("expected empty hint, got %q", got)
				}
				return
			}
			if strings.Contains(got, "--set") != tt.wantSetFlag {
				t.Errorf("--set mention = %v, want %v in %q", !tt.wantSetFlag, tt.wantSetFlag, got)
			}
			if strings.Contains(got, "signatory") != tt.wantStaff {
				t.Errorf("signatory mention = %v, want %v in %q", !tt.wantStaff, tt.wantStaff, got)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"./office.yaml", "/home/a/.config/go-admitdoc/office.yaml"},
			contains: "create /home/a/.config/go-admitdoc/office.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForContextFile(t *testing.T) {
	t.Parallel()

	hint := ForContextFile()
	for _, want := range []string{"YAML or JSON", "leading zeros", `"000123"`} {
		if !strings.Contains(hint, want) {
			t.Errorf("ForContextFile() = %q, want it to mention %q", hint, want)
		}
	}
}

func TestForUnsupportedText(t *testing.T) {
	t.Parallel()

	hint := ForUnsupportedText()
	for _, want := range []string{"pdf.fontRegular", "ADMITDOC_FONT"} {
		if !strings.Contains(hint, want) {
			t.Errorf("ForUnsupportedText() = %q, want it to mention %q", hint, want)
		}
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForUnknownTemplate([]string{"offerLetter"}),
		ForMissingFields([]string{"staff.email"}),
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForContextFile(),
		ForDateFormat(),
		ForUnsupportedText(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
		if strings.Count(h, "hint:") != 1 {
			t.Errorf("hint should carry a single prefix: %q", h)
		}
	}
}
