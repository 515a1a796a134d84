package admitdoc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-admitdoc/internal/dateutil"
	"github.com/alnah/go-admitdoc/internal/pdflayout"
)

// Sentinel errors for library operations.
var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrMissingFields   = errors.New("missing required fields")

	// Renderer option validation errors.
	ErrInvalidDateFormat = dateutil.ErrInvalidDateFormat
	ErrInvalidGeometry   = pdflayout.ErrInvalidGeometry
	ErrInvalidFont       = pdflayout.ErrInvalidFont

	// ErrUnsupportedText reports document text the core PDF fonts cannot
	// draw. WithFonts lifts the restriction.
	ErrUnsupportedText = pdflayout.ErrUnsupportedText
)

// UnknownTemplateError reports a template id that is not in the catalog.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTemplate, e.ID)
}

// Is makes errors.Is(err, ErrUnknownTemplate) match.
func (e *UnknownTemplateError) Is(target error) bool {
	return target == ErrUnknownTemplate
}

// MissingFieldsError lists every required token path without a value, in
// declaration order.
type MissingFieldsError struct {
	TemplateID TemplateID
	Fields     []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s for %s: %s", ErrMissingFields, e.TemplateID, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrMissingFields) match.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
