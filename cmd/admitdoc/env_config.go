package main

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-admitdoc/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // ADMITDOC_CONFIG: config file name or path
	Locale     string // ADMITDOC_LOCALE: number formatting locale
	DateFormat string // ADMITDOC_DATE_FORMAT: date preset or format
	OutputDir  string // ADMITDOC_OUTPUT_DIR: default output directory
	Workers    int    // ADMITDOC_WORKERS: parallel renders
	LogLevel   string // ADMITDOC_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // ADMITDOC_LOG_FORMAT: console, json
	Style      string // ADMITDOC_STYLE: HTML stylesheet name
	StyleDir   string // ADMITDOC_STYLE_DIR: custom stylesheet directory

	StaffName  string // ADMITDOC_STAFF_NAME: default signatory name
	StaffTitle string // ADMITDOC_STAFF_TITLE: default signatory title
	StaffEmail string // ADMITDOC_STAFF_EMAIL: default signatory email
	StaffPhone string // ADMITDOC_STAFF_PHONE: default signatory phone
	PDFAuthor  string // ADMITDOC_PDF_AUTHOR: PDF author metadata
	FontPath   string // ADMITDOC_FONT: regular TrueType font file
	BoldPath   string // ADMITDOC_FONT_BOLD: bold TrueType font file
}

// envPrefix marks the variables admitdoc reads.
const envPrefix = "ADMITDOC_"

// knownEnvVars lists valid ADMITDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ADMITDOC_CONFIG":      true,
	"ADMITDOC_LOCALE":      true,
	"ADMITDOC_DATE_FORMAT": true,
	"ADMITDOC_OUTPUT_DIR":  true,
	"ADMITDOC_WORKERS":     true,
	"ADMITDOC_LOG_LEVEL":   true,
	"ADMITDOC_LOG_FORMAT":  true,
	"ADMITDOC_STYLE":       true,
	"ADMITDOC_STYLE_DIR":   true,
	"ADMITDOC_STAFF_NAME":  true,
	"ADMITDOC_STAFF_TITLE": true,
	"ADMITDOC_STAFF_EMAIL": true,
	"ADMITDOC_STAFF_PHONE": true,
	"ADMITDOC_PDF_AUTHOR":  true,
	"ADMITDOC_FONT":        true,
	"ADMITDOC_FONT_BOLD":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("ADMITDOC_CONFIG"),
		Locale:     os.Getenv("ADMITDOC_LOCALE"),
		DateFormat: os.Getenv("ADMITDOC_DATE_FORMAT"),
		OutputDir:  os.Getenv("ADMITDOC_OUTPUT_DIR"),
		LogLevel:   os.Getenv("ADMITDOC_LOG_LEVEL"),
		LogFormat:  os.Getenv("ADMITDOC_LOG_FORMAT"),
		Style:      os.Getenv("ADMITDOC_STYLE"),
		StyleDir:   os.Getenv("ADMITDOC_STYLE_DIR"),
		StaffName:  os.Getenv("ADMITDOC_STAFF_NAME"),
		StaffTitle: os.Getenv("ADMITDOC_STAFF_TITLE"),
		StaffEmail: os.Getenv("ADMITDOC_STAFF_EMAIL"),
		StaffPhone: os.Getenv("ADMITDOC_STAFF_PHONE"),
		PDFAuthor:  os.Getenv("ADMITDOC_PDF_AUTHOR"),
		FontPath:   os.Getenv("ADMITDOC_FONT"),
		BoldPath:   os.Getenv("ADMITDOC_FONT_BOLD"),
	}

	if workers := os.Getenv("ADMITDOC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns unrecognized ADMITDOC_* variable names.
func unknownEnvVars() []string {
	var unknown []string
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars logs a warning per unrecognized ADMITDOC_* variable.
// Helps catch typos like ADMITDOC_LOCAL instead of ADMITDOC_LOCALE.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, name := range unknownEnvVars() {
		logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfEmpty(&cfg.Locale, env.Locale)
	setIfEmpty(&cfg.DateFormat, env.DateFormat)
	setIfEmpty(&cfg.Output.DefaultDir, env.OutputDir)
	setIfEmpty(&cfg.Log.Level, env.LogLevel)
	setIfEmpty(&cfg.Log.Format, env.LogFormat)
	setIfEmpty(&cfg.Output.Style, env.Style)
	setIfEmpty(&cfg.Output.StyleDir, env.StyleDir)
	setIfEmpty(&cfg.Staff.FullName, env.StaffName)
	setIfEmpty(&cfg.Staff.Title, env.StaffTitle)
	setIfEmpty(&cfg.Staff.Email, env.StaffEmail)
	setIfEmpty(&cfg.Staff.Phone, env.StaffPhone)
	setIfEmpty(&cfg.PDF.Author, env.PDFAuthor)
	setIfEmpty(&cfg.PDF.FontRegular, env.FontPath)
	setIfEmpty(&cfg.PDF.FontBold, env.BoldPath)

	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}

func setIfEmpty(dst *string, value string) {
	if value != "" && *dst == "" {
		*dst = value
	}
}
