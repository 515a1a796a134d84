package pdflayout

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
)

const (
	coreFamily = "Helvetica"
	utf8Family = "admitdocsans"
)

var (
	// ErrUnsupportedText reports text the core fonts cannot encode. Configure
	// TrueType fonts with Fonts to draw it.
	ErrUnsupportedText = errors.New("text cannot be encoded in the core PDF fonts")
	ErrInvalidFont     = errors.New("invalid TrueType font")
)

// Metadata is written into the PDF document information dictionary.
type Metadata struct {
	Title   string
	Author  string
	Creator string
	Subject string
}

// Fonts holds TrueType font data for UTF-8 text. Bold falls back to Regular.
// The zero value selects the core Helvetica faces.
type Fonts struct {
	Regular []byte
	Bold    []byte
}

// IsZero reports whether no TrueType font is configured.
func (f Fonts) IsZero() bool {
	return len(f.Regular) == 0 && len(f.Bold) == 0
}

// Validate checks that both faces carry TrueType data.
func (f Fonts) Validate() error {
	if f.IsZero() {
		return nil
	}
	if len(f.Regular) == 0 {
		return fmt.Errorf("%w: bold face given without a regular face", ErrInvalidFont)
	}
	if !isTrueType(f.Regular) {
		return fmt.Errorf("%w: regular face", ErrInvalidFont)
	}
	if len(f.Bold) > 0 && !isTrueType(f.Bold) {
		return fmt.Errorf("%w: bold face", ErrInvalidFont)
	}
	return nil
}

// isTrueType checks the sfnt version tag. gofpdf reads TrueType outlines
// only, so CFF-based OpenType ("OTTO") is rejected.
func isTrueType(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	tag := string(data[:4])
	return tag == "\x00\x01\x00\x00" || tag == "true"
}

// GofpdfSurface draws with gofpdf. By default it uses the core Helvetica
// faces, whose metrics ship with the library, and text is translated to
// cp1252. Text outside cp1252 makes Bytes fail with ErrUnsupportedText.
// With Fonts set, text is drawn as UTF-8 in the embedded TrueType faces.
type GofpdfSurface struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
	utf8   bool
	err    error
}

// NewGofpdfSurface creates a surface sized by g. No page exists until the
// first AddPage. fonts must have passed Validate.
func NewGofpdfSurface(g Geometry, meta Metadata, fonts Fonts) *GofpdfSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	pdf.SetAutoPageBreak(false, 0)

	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}

	s := &GofpdfSurface{pdf: pdf, family: coreFamily}
	if fonts.IsZero() {
		s.tr = pdf.UnicodeTranslatorFromDescriptor("")
		return s
	}

	bold := fonts.Bold
	if len(bold) == 0 {
		bold = fonts.Regular
	}
	pdf.AddUTF8FontFromBytes(utf8Family, "", fonts.Regular)
	pdf.AddUTF8FontFromBytes(utf8Family, "B", bold)
	s.family = utf8Family
	s.utf8 = true
	s.tr = func(text string) string { return text }
	return s
}

func (s *GofpdfSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *GofpdfSurface) DrawText(x, y float64, text string, face Face, size float64) {
	if !s.utf8 && s.err == nil {
		if r, ok := firstUnencodable(text); ok {
			s.err = fmt.Errorf("%w: %q in %q", ErrUnsupportedText, r, text)
		}
	}
	s.setFont(face, size)
	s.pdf.Text(x, y, s.tr(text))
}

func (s *GofpdfSurface) Metrics(face Face) FontMetrics {
	return gofpdfMetrics{surface: s, face: face}
}

// Bytes closes the document and returns its bytes. It must be called once.
func (s *GofpdfSurface) Bytes() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *GofpdfSurface) setFont(face Face, size float64) {
	style := ""
	if face == Bold {
		style = "B"
	}
	s.pdf.SetFont(s.family, style, size)
}

// firstUnencodable returns the first rune of text outside cp1252.
func firstUnencodable(text string) (rune, bool) {
	for _, r := range text {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return r, true
		}
	}
	return 0, false
}

type gofpdfMetrics struct {
	surface *GofpdfSurface
	face    Face
}

func (m gofpdfMetrics) WidthOfTextAtSize(text string, size float64) float64 {
	m.surface.setFont(m.face, size)
	return m.surface.pdf.GetStringWidth(m.surface.tr(text))
}
