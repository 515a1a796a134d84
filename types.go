package admitdoc

import (
	"bytes"
	"io"

	"github.com/alnah/go-admitdoc/internal/pdflayout"
	"github.com/alnah/go-admitdoc/internal/templates"
)

// Template catalog types.
type (
	TemplateID         = templates.ID
	TemplateDefinition = templates.Definition
	TemplateToken      = templates.Token
	TemplateSection    = templates.Section
	BulletToken        = templates.BulletToken
)

// Registered template ids.
const (
	OfferLetter             = templates.OfferLetter
	InterviewInvitation     = templates.InterviewInvitation
	RejectionFeedback       = templates.RejectionFeedback
	PaymentBalanceStatement = templates.PaymentBalanceStatement
)

// PDF layout types, for callers supplying their own surface or geometry.
type (
	Geometry    = pdflayout.Geometry
	Surface     = pdflayout.Surface
	FontMetrics = pdflayout.FontMetrics
	Face        = pdflayout.Face
	PDFMetadata = pdflayout.Metadata
	Fonts       = pdflayout.Fonts
)

// DefaultGeometry returns the A4 layout used when no geometry is configured.
func DefaultGeometry() Geometry {
	return pdflayout.DefaultGeometry()
}

// RenderContext is the caller-supplied data a template is filled against.
// Fields are grouped in the namespaces student, application, staff, feedback
// and payment. Nested values may be any map keyed by strings.
type RenderContext map[string]any

// RenderOptions tunes one render call.
type RenderOptions struct {
	// FileName is used verbatim when set; otherwise ComputeDefaultFileName.
	FileName string
	// TitleOverride replaces the template name as the document title.
	TitleOverride string
}

// PDFOutput is the rendered PDF.
type PDFOutput struct {
	Bytes    []byte
	FileName string
}

// Blob returns a fresh reader over the PDF bytes, ready to attach to an
// email or stream to storage.
func (p PDFOutput) Blob() io.Reader {
	return bytes.NewReader(p.Bytes)
}

// RenderedDocument bundles every rendering of one document.
type RenderedDocument struct {
	Template TemplateDefinition
	Title    string
	Text     string
	HTML     string
	// Tokens maps every declared token path to its formatted value.
	Tokens map[string]string
	PDF    PDFOutput
	Pages  int
}
