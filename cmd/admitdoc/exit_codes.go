package main

import (
	"errors"
	"os"

	"github.com/alnah/go-admitdoc"
	"github.com/alnah/go-admitdoc/internal/assets"
	"github.com/alnah/go-admitdoc/internal/config"
	"github.com/alnah/go-admitdoc/internal/logging"
	"github.com/alnah/go-admitdoc/internal/yamlutil"
)

// Exit codes for the admitdoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All documents rendered
	ExitGeneral = 1 // General/unexpected error, or some batch jobs failed
	ExitUsage   = 2 // Invalid flags, config, template id or context fields
	ExitIO      = 3 // File not found, permission denied, unreadable context
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadContext) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, assets.ErrStyleRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidSet) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidContext) ||
		errors.Is(err, admitdoc.ErrUnknownTemplate) ||
		errors.Is(err, admitdoc.ErrMissingFields) ||
		errors.Is(err, admitdoc.ErrInvalidDateFormat) ||
		errors.Is(err, admitdoc.ErrInvalidGeometry) ||
		errors.Is(err, admitdoc.ErrInvalidFont) ||
		errors.Is(err, admitdoc.ErrUnsupportedText) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidLocale) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidOption) ||
		errors.Is(err, yamlutil.ErrNotMapping) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidStyleName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
