package main

import (
	"errors"

	"github.com/samber/lo"

	"github.com/alnah/go-admitdoc"
	"github.com/alnah/go-admitdoc/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrReadContext        = errors.New("failed to read context file")
	ErrInvalidContext     = errors.New("invalid context file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidSet         = errors.New("invalid --set value")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidFormat      = errors.New("invalid output format")
	ErrBatchFailed        = errors.New("some documents failed")
)

// hintFor returns the hint for library errors that carry structured data.
// CLI errors get their hints appended where they are created.
func hintFor(err error) string {
	var unknown *admitdoc.UnknownTemplateError
	if errors.As(err, &unknown) {
		return hints.ForUnknownTemplate(templateIDs())
	}
	var missing *admitdoc.MissingFieldsError
	if errors.As(err, &missing) {
		return hints.ForMissingFields(missing.Fields)
	}
	if errors.Is(err, admitdoc.ErrInvalidDateFormat) {
		return hints.ForDateFormat()
	}
	if errors.Is(err, admitdoc.ErrUnsupportedText) {
		return hints.ForUnsupportedText()
	}
	return ""
}

// templateIDs lists the registered template ids in catalog order.
func templateIDs() []string {
	return lo.Map(admitdoc.Templates(), func(d admitdoc.TemplateDefinition, _ int) string {
		return string(d.ID)
	})
}
