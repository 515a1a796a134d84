package config

// Notes:
// - LoadConfig name resolution tests change the working directory and
//   XDG_CONFIG_HOME, so they do not call t.Parallel().
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/alnah/go-admitdoc/internal/assets"
	"github.com/alnah/go-admitdoc/internal/dateutil"
	"github.com/alnah/go-admitdoc/internal/pdflayout"
)

// ---------------------------------------------------------------------------
// TestConfig_Validate - Lengths, locales, formats and ranges
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "zero config is valid",
			cfg:  Config{},
		},
		{
			name: "full valid config",
			cfg: Config{
				Locale:     "de-DE",
				DateFormat: "european",
				Formatting: FormattingConfig{CurrencyPaths: []string{"payment.deposit"}},
				Staff:      StaffConfig{FullName: "A. Banda", Email: "a.banda@mihas.edu.zm"},
				PDF:        PDFConfig{PageSize: "Letter", Margin: 72},
				Workers:    4,
				Log:        LogConfig{Level: "debug", Format: "json"},
			},
		},
		{
			name:    "name too long",
			cfg:     Config{Staff: StaffConfig{FullName: strings.Repeat("a", MaxNameLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "token path too long",
			cfg:     Config{Formatting: FormattingConfig{DatePaths: []string{strings.Repeat("a", MaxTokenPathLen+1)}}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unparseable locale",
			cfg:     Config{Locale: "not a locale"},
			wantErr: ErrInvalidLocale,
		},
		{
			name:    "unclosed literal in date format",
			cfg:     Config{DateFormat: "[Due DD/MM/YYYY"},
			wantErr: dateutil.ErrInvalidDateFormat,
		},
		{
			name:    "unknown page size",
			cfg:     Config{PDF: PDFConfig{PageSize: "a3"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative margin",
			cfg:     Config{PDF: PDFConfig{Margin: -1}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "margin swallows the page",
			cfg:     Config{PDF: PDFConfig{Margin: 400}},
			wantErr: pdflayout.ErrInvalidGeometry,
		},
		{
			name:    "workers out of range",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown log level",
			cfg:     Config{Log: LogConfig{Level: "verbose"}},
			wantErr: ErrInvalidValue,
		},
		{
			name: "style none is valid",
			cfg:  Config{Output: OutputConfig{Style: "none", HTML: true}},
		},
		{
			name:    "bold font without regular",
			cfg:     Config{PDF: PDFConfig{FontBold: "/fonts/Bold.ttf"}},
			wantErr: ErrInvalidValue,
		},
		{
			name: "font paths",
			cfg:  Config{PDF: PDFConfig{FontRegular: "/fonts/Regular.ttf", FontBold: "/fonts/Bold.ttf"}},
		},
		{
			name:    "style name with path",
			cfg:     Config{Output: OutputConfig{Style: "../letter"}},
			wantErr: assets.ErrInvalidStyleName,
		},
		{
			name:    "unknown log format",
			cfg:     Config{Log: LogConfig{Format: "xml"}},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("staff.title", "1234567890", 10); err != nil {
		t.Errorf("value at limit: unexpected error %v", err)
	}
	err := validateFieldLength("staff.title", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "staff.title") || !strings.Contains(err.Error(), "11 chars") {
		t.Errorf("error %q should name the field and its length", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_LocaleTag / TestPDFConfig_Geometry - Derived settings
// ---------------------------------------------------------------------------

func TestConfig_LocaleTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		want   language.Tag
	}{
		{locale: "", want: language.English},
		{locale: "fr", want: language.French},
		{locale: "%%", want: language.English},
	}
	for _, tt := range tests {
		cfg := Config{Locale: tt.locale}
		if got := cfg.LocaleTag(); got != tt.want {
			t.Errorf("LocaleTag(%q) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}

func TestPDFConfig_LoadFonts(t *testing.T) {
	t.Parallel()

	testdata := filepath.Join("..", "pdflayout", "testdata")
	regular := filepath.Join(testdata, "DejaVuSansCondensed.ttf")
	bold := filepath.Join(testdata, "DejaVuSansCondensed-Bold.ttf")
	notFont := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(notFont, []byte("not a font file"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		cfg      PDFConfig
		wantZero bool
		wantBold bool
		wantErr  error
	}{
		{name: "no fonts", cfg: PDFConfig{}, wantZero: true},
		{name: "regular only", cfg: PDFConfig{FontRegular: regular}},
		{name: "regular and bold", cfg: PDFConfig{FontRegular: regular, FontBold: bold}, wantBold: true},
		{name: "missing file", cfg: PDFConfig{FontRegular: filepath.Join(testdata, "nope.ttf")}, wantErr: os.ErrNotExist},
		{name: "missing bold file", cfg: PDFConfig{FontRegular: regular, FontBold: "nope.ttf"}, wantErr: os.ErrNotExist},
		{name: "not a font", cfg: PDFConfig{FontRegular: notFont}, wantErr: pdflayout.ErrInvalidFont},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fonts, err := tt.cfg.LoadFonts()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadFonts() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFonts() error: %v", err)
			}
			if fonts.IsZero() != tt.wantZero {
				t.Errorf("IsZero() = %v, want %v", fonts.IsZero(), tt.wantZero)
			}
			if (len(fonts.Bold) > 0) != tt.wantBold {
				t.Errorf("bold loaded = %v, want %v", len(fonts.Bold) > 0, tt.wantBold)
			}
		})
	}
}

func TestPDFConfig_Geometry(t *testing.T) {
	t.Parallel()

	def := pdflayout.DefaultGeometry()

	got, err := PDFConfig{}.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error: %v", err)
	}
	if diff := cmp.Diff(def, got); diff != "" {
		t.Errorf("empty PDFConfig should keep defaults (-want +got):\n%s", diff)
	}

	got, err = PDFConfig{PageSize: "LETTER", Margin: 72}.Geometry()
	if err != nil {
		t.Fatalf("Geometry() error: %v", err)
	}
	if got.PageWidth != 612 || got.PageHeight != 792 || got.Margin != 72 {
		t.Errorf("letter geometry = %+v", got)
	}
	if got.BodySize != def.BodySize {
		t.Errorf("BodySize = %v, want default %v", got.BodySize, def.BodySize)
	}
}

// ---------------------------------------------------------------------------
// TestStaffConfig_MergeStaff - Default signatory merge
// ---------------------------------------------------------------------------

func TestStaffConfig_MergeStaff(t *testing.T) {
	t.Parallel()

	defaults := StaffConfig{FullName: "A. Banda", Title: "Admissions Officer", Email: "office@mihas.edu.zm"}

	tests := []struct {
		name string
		ctx  map[string]any
		want map[string]any
	}{
		{
			name: "nil context gets full signatory",
			ctx:  nil,
			want: map[string]any{"staff": map[string]any{
				"fullName": "A. Banda", "title": "Admissions Officer", "email": "office@mihas.edu.zm",
			}},
		},
		{
			name: "context values win",
			ctx: map[string]any{"staff": map[string]any{
				"fullName": "C. Phiri", "email": "c.phiri@mihas.edu.zm", "title": "  ",
			}},
			want: map[string]any{"staff": map[string]any{
				"fullName": "C. Phiri", "email": "c.phiri@mihas.edu.zm", "title": "Admissions Officer",
			}},
		},
		{
			name: "non-mapping staff left alone",
			ctx:  map[string]any{"staff": "A. Banda"},
			want: map[string]any{"staff": "A. Banda"},
		},
		{
			name: "other namespaces untouched",
			ctx:  map[string]any{"student": map[string]any{"fullName": "Jane"}},
			want: map[string]any{
				"student": map[string]any{"fullName": "Jane"},
				"staff": map[string]any{
					"fullName": "A. Banda", "title": "Admissions Officer", "email": "office@mihas.edu.zm",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := defaults.MergeStaff(tt.ctx)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeStaff() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("empty defaults add nothing", func(t *testing.T) {
		t.Parallel()

		got := StaffConfig{}.MergeStaff(map[string]any{"student": map[string]any{}})
		if _, ok := got["staff"]; ok {
			t.Errorf("staff namespace added from empty defaults: %#v", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File path and name resolution
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	writeFile := func(t *testing.T, path, content string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "office.yaml")
		writeFile(t, path, `
locale: en-GB
dateFormat: european
formatting:
  currencyPaths: [payment.deposit]
staff:
  fullName: A. Banda
  title: Admissions Officer
pdf:
  author: Admissions Office
  pageSize: letter
output:
  defaultDir: ./out
  text: true
workers: 3
log:
  level: debug
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		want := &Config{
			Locale:     "en-GB",
			DateFormat: "european",
			Formatting: FormattingConfig{CurrencyPaths: []string{"payment.deposit"}},
			Staff:      StaffConfig{FullName: "A. Banda", Title: "Admissions Officer"},
			PDF:        PDFConfig{Author: "Admissions Office", PageSize: "letter"},
			Output:     OutputConfig{DefaultDir: "./out", Text: true},
			Workers:    3,
			Log:        LogConfig{Level: "debug"},
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing explicit path", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeFile(t, path, "style: professional\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values rejected after parsing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeFile(t, path, "workers: 500\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("name prefers yaml in working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "office.yaml"), "locale: fr\n")
		writeFile(t, filepath.Join(dir, "office.yml"), "locale: de\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("office")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Locale != "fr" {
			t.Errorf("Locale = %q, want fr (.yaml first)", cfg.Locale)
		}
	})

	t.Run("name resolves from user config directory", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		if _, err := os.UserConfigDir(); err != nil {
			t.Skip("cannot get user config dir")
		}
		t.Chdir(t.TempDir())

		userConfigDir, _ := os.UserConfigDir()
		writeFile(t, filepath.Join(userConfigDir, AppName, "office.yml"), "workers: 2\n")

		cfg, err := LoadConfig("office")
		if err != nil {
			t.Fatalf("LoadConfig() error: %v", err)
		}
		if cfg.Workers != 2 {
			t.Errorf("Workers = %d, want 2", cfg.Workers)
		}
	})

	t.Run("name not found lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nonexistent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nonexistent.yaml") || !strings.Contains(err.Error(), "nonexistent.yml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		t.Skip("cannot get user config dir")
	}

	got := SearchPaths("office")
	want := []string{
		"office.yaml",
		"office.yml",
		filepath.Join(userConfigDir, AppName, "office.yaml"),
		filepath.Join(userConfigDir, AppName, "office.yml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SearchPaths() mismatch (-want +got):\n%s", diff)
	}
}
