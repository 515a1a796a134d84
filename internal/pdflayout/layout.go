package pdflayout

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-admitdoc/internal/compose"
)

// ErrInvalidGeometry indicates page geometry that leaves no room for text.
var ErrInvalidGeometry = errors.New("invalid page geometry")

// Geometry holds page size, margins, font sizes and spacing, in points.
type Geometry struct {
	PageWidth         float64 `yaml:"pageWidth"`
	PageHeight        float64 `yaml:"pageHeight"`
	Margin            float64 `yaml:"margin"`
	BodySize          float64 `yaml:"bodySize"`
	HeadingSize       float64 `yaml:"headingSize"`
	LineHeight        float64 `yaml:"lineHeight"`
	HeadingLineHeight float64 `yaml:"headingLineHeight"`
	HeadingGap        float64 `yaml:"headingGap"`
	ParagraphGap      float64 `yaml:"paragraphGap"`
	SectionGap        float64 `yaml:"sectionGap"`
}

// DefaultGeometry returns an A4 page with 56pt margins.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:         595.28,
		PageHeight:        841.89,
		Margin:            56,
		BodySize:          11,
		HeadingSize:       14,
		LineHeight:        16,
		HeadingLineHeight: 20,
		HeadingGap:        4,
		ParagraphGap:      6,
		SectionGap:        10,
	}
}

// ContentWidth is the page width minus both margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Bottom is the lowest y a line may reach.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin
}

// Validate rejects geometry with no drawable area or non-positive sizes.
func (g Geometry) Validate() error {
	if g.ContentWidth() <= 0 || g.Bottom() <= g.Margin {
		return fmt.Errorf("%w: margins %.2f leave no room on a %.2fx%.2f page", ErrInvalidGeometry, g.Margin, g.PageWidth, g.PageHeight)
	}
	if g.BodySize <= 0 || g.HeadingSize <= 0 || g.LineHeight <= 0 || g.HeadingLineHeight <= 0 {
		return fmt.Errorf("%w: font sizes and line heights must be positive", ErrInvalidGeometry)
	}
	if g.HeadingGap < 0 || g.ParagraphGap < 0 || g.SectionGap < 0 {
		return fmt.Errorf("%w: gaps cannot be negative", ErrInvalidGeometry)
	}
	return nil
}

// Face selects one of the two embedded font faces.
type Face int

const (
	Regular Face = iota
	Bold
)

// Surface is what Layout draws on. y is the text baseline measured from the
// top of the page.
type Surface interface {
	AddPage()
	DrawText(x, y float64, text string, face Face, size float64)
	Metrics(face Face) FontMetrics
	Bytes() ([]byte, error)
}

// ParagraphStyle controls DrawParagraph.
type ParagraphStyle struct {
	Bullet bool
	Bold   bool
}

// Layout tracks the vertical cursor while drawing one document.
// It is not safe for concurrent use.
type Layout struct {
	surface Surface
	geo     Geometry
	cursor  float64
	pages   int
}

// New starts a document on s with its first page.
func New(s Surface, g Geometry) *Layout {
	l := &Layout{surface: s, geo: g}
	l.newPage()
	return l
}

func (l *Layout) newPage() {
	l.surface.AddPage()
	l.pages++
	l.cursor = l.geo.Margin
}

// Pages returns the number of pages started so far.
func (l *Layout) Pages() int { return l.pages }

// Cursor returns the current vertical position.
func (l *Layout) Cursor() float64 { return l.cursor }

// EnsureSpace starts a new page when height more points would cross the
// bottom margin. A fresh page is never skipped, so content taller than a
// page overflows instead of looping.
func (l *Layout) EnsureSpace(height float64) {
	if l.cursor+height > l.geo.Bottom() && l.cursor > l.geo.Margin {
		l.newPage()
	}
}

// DrawHeading draws text in bold at heading size, then the heading gap.
func (l *Layout) DrawHeading(text string) {
	size := l.geo.HeadingSize
	for _, line := range Wrap(text, l.surface.Metrics(Bold), size, l.geo.ContentWidth()) {
		l.EnsureSpace(l.geo.HeadingLineHeight)
		l.surface.DrawText(l.geo.Margin, l.cursor+size, line, Bold, size)
		l.cursor += l.geo.HeadingLineHeight
	}
	l.cursor += l.geo.HeadingGap
}

// DrawParagraph draws wrapped body text followed by the paragraph gap.
// Bulleted paragraphs print the bullet on the first line only and indent
// every line by the bullet width.
func (l *Layout) DrawParagraph(text string, style ParagraphStyle) {
	face := Regular
	if style.Bold {
		face = Bold
	}
	metrics := l.surface.Metrics(face)
	size := l.geo.BodySize
	width := l.geo.ContentWidth()

	indent := 0.0
	if style.Bullet {
		indent = metrics.WidthOfTextAtSize(compose.BulletPrefix, size)
		width -= indent
	}

	for i, line := range Wrap(text, metrics, size, width) {
		l.EnsureSpace(l.geo.LineHeight)
		baseline := l.cursor + size
		if style.Bullet && i == 0 {
			l.surface.DrawText(l.geo.Margin, baseline, compose.BulletPrefix, face, size)
		}
		l.surface.DrawText(l.geo.Margin+indent, baseline, line, face, size)
		l.cursor += l.geo.LineHeight
	}
	l.cursor += l.geo.ParagraphGap
}

// DrawBlock draws one composed block followed by the section gap.
// Empty blocks draw nothing.
func (l *Layout) DrawBlock(b compose.Block) {
	if b.Empty() {
		return
	}
	for _, n := range b.Nodes {
		switch n.Kind {
		case compose.KindHeading:
			l.DrawHeading(n.Text)
		case compose.KindParagraph:
			l.DrawParagraph(n.Text, ParagraphStyle{})
		case compose.KindBulletList:
			for _, item := range n.Items {
				l.DrawParagraph(item, ParagraphStyle{Bullet: true})
			}
		}
	}
	l.cursor += l.geo.SectionGap
}

// Render draws the optional title and every block, then serializes the
// surface. ctx is checked before serialization.
func (l *Layout) Render(ctx context.Context, title string, blocks []compose.Block) ([]byte, error) {
	if title != "" {
		l.DrawHeading(title)
	}
	for _, b := range blocks {
		l.DrawBlock(b)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := l.surface.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serializing pdf: %w", err)
	}
	return data, nil
}
