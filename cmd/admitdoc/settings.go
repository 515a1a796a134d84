package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-admitdoc"
	"github.com/alnah/go-admitdoc/internal/assets"
	"github.com/alnah/go-admitdoc/internal/config"
	"github.com/alnah/go-admitdoc/internal/fileutil"
	"github.com/alnah/go-admitdoc/internal/hints"
	"github.com/alnah/go-admitdoc/internal/logging"
)

// settings is everything a rendering command needs once flags, environment
// and config file are merged.
type settings struct {
	cfg      *config.Config
	logger   *zap.Logger
	renderer *admitdoc.Renderer
	css      string // stylesheet for HTML outputs
}

// loadSettings resolves configuration with precedence
// flags > ADMITDOC_* env vars > config file > defaults,
// then builds the logger and the renderer.
func loadSettings(common commonFlags, format formatFlags, out outputFlags, env *Environment) (*settings, error) {
	envCfg := loadEnvConfig()

	cfg, err := loadConfigFile(common.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(common, format, out, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: env.Stderr,
	})
	if err != nil {
		return nil, err
	}
	warnUnknownEnvVars(logger)

	renderer, err := newRenderer(cfg, logger)
	if err != nil {
		return nil, err
	}

	var css string
	if cfg.Output.HTML {
		if css, err = loadStyle(cfg.Output); err != nil {
			return nil, err
		}
	}

	logger.Debug("settings loaded",
		zap.String("locale", cfg.LocaleTag().String()),
		zap.String("dateFormat", cfg.DateFormat),
		zap.String("pageSize", cfg.PDF.PageSize),
		zap.Int("workers", cfg.Workers),
	)
	return &settings{cfg: cfg, logger: logger, renderer: renderer, css: css}, nil
}

// loadConfigFile loads the named config, or defaults when no name is given.
// The flag wins over ADMITDOC_CONFIG.
func loadConfigFile(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(name) {
				searched = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(common commonFlags, format formatFlags, out outputFlags, cfg *config.Config) {
	if format.locale != "" {
		cfg.Locale = format.locale
	}
	if format.dateFormat != "" {
		cfg.DateFormat = format.dateFormat
	}
	cfg.Formatting.CurrencyPaths = append(cfg.Formatting.CurrencyPaths, format.currencyPaths...)
	cfg.Formatting.DatePaths = append(cfg.Formatting.DatePaths, format.datePaths...)

	if out.text {
		cfg.Output.Text = true
	}
	if out.html {
		cfg.Output.HTML = true
	}
	if out.style != "" {
		cfg.Output.Style = out.style
	}

	switch {
	case common.verbose:
		cfg.Log.Level = "debug"
	case common.quiet:
		cfg.Log.Level = "error"
	}
}

// loadStyle resolves the HTML stylesheet, custom directory first.
func loadStyle(out config.OutputConfig) (string, error) {
	resolver, err := assets.NewResolver(out.StyleDir)
	if err != nil {
		return "", err
	}
	return resolver.LoadStyle(out.Style)
}

// newRenderer builds a renderer from the merged config.
func newRenderer(cfg *config.Config, logger *zap.Logger) (*admitdoc.Renderer, error) {
	geometry, err := cfg.PDF.Geometry()
	if err != nil {
		return nil, err
	}
	fonts, err := cfg.PDF.LoadFonts()
	if err != nil {
		return nil, err
	}
	return admitdoc.NewRenderer(
		admitdoc.WithLocale(cfg.LocaleTag()),
		admitdoc.WithDateFormat(cfg.DateFormat),
		admitdoc.WithCurrencyPaths(cfg.Formatting.CurrencyPaths...),
		admitdoc.WithDatePaths(cfg.Formatting.DatePaths...),
		admitdoc.WithGeometry(geometry),
		admitdoc.WithFonts(fonts.Regular, fonts.Bold),
		admitdoc.WithPDFMetadata(cfg.PDF.Author, cfg.PDF.Creator),
		admitdoc.WithLogger(logger),
	)
}
