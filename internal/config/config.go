// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/alnah/go-admitdoc/internal/assets"
	"github.com/alnah/go-admitdoc/internal/dateutil"
	"github.com/alnah/go-admitdoc/internal/fileutil"
	"github.com/alnah/go-admitdoc/internal/pdflayout"
	"github.com/alnah/go-admitdoc/internal/tokens"
	"github.com/alnah/go-admitdoc/internal/yamlutil"
)

// AppName names the per-user config directory.
const AppName = "go-admitdoc"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidLocale   = errors.New("invalid locale")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxNameLength     = 100
	MaxTitleLength    = 100
	MaxEmailLength    = 254 // RFC 5321
	MaxPhoneLength    = 40
	MaxLocaleLength   = 35 // BCP 47 tags with extensions
	MaxPathLength     = 4096
	MaxTokenPathLen   = 200
	MaxPageSizeLength = 10
	MaxWorkers        = 64
)

// Config holds all configuration for the admitdoc CLI.
type Config struct {
	Locale     string           `yaml:"locale"`
	DateFormat string           `yaml:"dateFormat"` // preset or format string, empty = long dates
	Formatting FormattingConfig `yaml:"formatting"`
	Staff      StaffConfig      `yaml:"staff"`
	PDF        PDFConfig        `yaml:"pdf"`
	Output     OutputConfig     `yaml:"output"`
	Workers    int              `yaml:"workers"` // 0 = auto
	Log        LogConfig        `yaml:"log"`
}

// FormattingConfig adds token paths to the built-in currency and date sets.
type FormattingConfig struct {
	CurrencyPaths []string `yaml:"currencyPaths"`
	DatePaths     []string `yaml:"datePaths"`
}

// StaffConfig is the default signatory, used for staff.* fields a context
// leaves empty.
type StaffConfig struct {
	FullName string `yaml:"fullName"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

// PDFConfig defines document metadata and page settings.
type PDFConfig struct {
	Author   string  `yaml:"author"`
	Creator  string  `yaml:"creator"`
	PageSize string  `yaml:"pageSize"` // "a4", "letter", "legal" (default: "a4")
	Margin   float64 `yaml:"margin"`   // points, 0 = default

	// TrueType font files for text outside Windows-1252. Empty = Helvetica.
	FontRegular string `yaml:"fontRegular"`
	FontBold    string `yaml:"fontBold"` // empty = reuse fontRegular
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the context file
	Text       bool   `yaml:"text"`       // also write .txt
	HTML       bool   `yaml:"html"`       // also write .html
	Style      string `yaml:"style"`      // HTML stylesheet name, "none" to omit (default: "letter")
	StyleDir   string `yaml:"styleDir"`   // directory of custom {name}.css files
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Page dimensions in points.
var pageSizes = map[string][2]float64{
	"a4":     {595.28, 841.89},
	"letter": {612, 792},
	"legal":  {612, 1008},
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers who build a
// Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"locale", c.Locale, MaxLocaleLength},
		{"dateFormat", c.DateFormat, dateutil.MaxDateFormatLength},
		{"staff.fullName", c.Staff.FullName, MaxNameLength},
		{"staff.title", c.Staff.Title, MaxTitleLength},
		{"staff.email", c.Staff.Email, MaxEmailLength},
		{"staff.phone", c.Staff.Phone, MaxPhoneLength},
		{"pdf.author", c.PDF.Author, MaxNameLength},
		{"pdf.creator", c.PDF.Creator, MaxNameLength},
		{"pdf.pageSize", c.PDF.PageSize, MaxPageSizeLength},
		{"pdf.fontRegular", c.PDF.FontRegular, MaxPathLength},
		{"pdf.fontBold", c.PDF.FontBold, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.styleDir", c.Output.StyleDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	for i, p := range c.Formatting.CurrencyPaths {
		if err := validateFieldLength(fmt.Sprintf("formatting.currencyPaths[%d]", i), p, MaxTokenPathLen); err != nil {
			return err
		}
	}
	for i, p := range c.Formatting.DatePaths {
		if err := validateFieldLength(fmt.Sprintf("formatting.datePaths[%d]", i), p, MaxTokenPathLen); err != nil {
			return err
		}
	}

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidLocale, c.Locale, err)
		}
	}
	if _, err := dateutil.Layout(c.DateFormat); err != nil {
		return fmt.Errorf("dateFormat: %w", err)
	}

	if c.PDF.PageSize != "" {
		if _, ok := pageSizes[strings.ToLower(c.PDF.PageSize)]; !ok {
			return fmt.Errorf("%w: pdf.pageSize %q (must be a4, letter, or legal)", ErrInvalidValue, c.PDF.PageSize)
		}
	}
	if c.PDF.Margin < 0 {
		return fmt.Errorf("%w: pdf.margin cannot be negative, got %.2f", ErrInvalidValue, c.PDF.Margin)
	}
	if _, err := c.PDF.Geometry(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if c.PDF.FontBold != "" && c.PDF.FontRegular == "" {
		return fmt.Errorf("%w: pdf.fontBold requires pdf.fontRegular", ErrInvalidValue)
	}

	if c.Output.Style != "" && c.Output.Style != assets.NoStyle {
		if err := assets.ValidateStyleName(c.Output.Style); err != nil {
			return fmt.Errorf("output.style: %w", err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// LocaleTag parses Locale, falling back to English when it is empty.
func (c *Config) LocaleTag() language.Tag {
	if c.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Geometry returns the default page geometry adjusted for PageSize and Margin.
func (p PDFConfig) Geometry() (pdflayout.Geometry, error) {
	g := pdflayout.DefaultGeometry()
	if size, ok := pageSizes[strings.ToLower(p.PageSize)]; ok {
		g.PageWidth, g.PageHeight = size[0], size[1]
	}
	if p.Margin > 0 {
		g.Margin = p.Margin
	}
	if err := g.Validate(); err != nil {
		return pdflayout.Geometry{}, err
	}
	return g, nil
}

// LoadFonts reads the configured TrueType files. Both empty yields the zero
// Fonts, which selects the core faces.
func (p PDFConfig) LoadFonts() (pdflayout.Fonts, error) {
	var fonts pdflayout.Fonts
	if p.FontRegular == "" {
		return fonts, nil
	}
	regular, err := os.ReadFile(p.FontRegular) // #nosec G304 -- path from user config
	if err != nil {
		return fonts, fmt.Errorf("reading pdf.fontRegular: %w", err)
	}
	fonts.Regular = regular
	if p.FontBold != "" {
		bold, err := os.ReadFile(p.FontBold) // #nosec G304 -- path from user config
		if err != nil {
			return pdflayout.Fonts{}, fmt.Errorf("reading pdf.fontBold: %w", err)
		}
		fonts.Bold = bold
	}
	if err := fonts.Validate(); err != nil {
		return pdflayout.Fonts{}, err
	}
	return fonts, nil
}

// MergeStaff fills staff.* fields missing from ctx with the configured
// signatory. Values already present in ctx always win.
func (s StaffConfig) MergeStaff(ctx map[string]any) map[string]any {
	defaults := map[string]string{
		"fullName": s.FullName,
		"title":    s.Title,
		"email":    s.Email,
		"phone":    s.Phone,
	}

	if ctx == nil {
		ctx = map[string]any{}
	}
	staff, ok := ctx["staff"].(map[string]any)
	if !ok {
		if ctx["staff"] != nil {
			// Not a mapping; the required-field check reports it.
			return ctx
		}
		staff = map[string]any{}
	}

	for key, value := range defaults {
		if value == "" || tokens.HasValue(staff[key]) {
			continue
		}
		staff[key] = value
	}
	if len(staff) > 0 {
		ctx["staff"] = staff
	}
	return ctx
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that changes nothing.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
