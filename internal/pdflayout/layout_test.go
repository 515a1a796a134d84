package pdflayout

// Notes:
// - Layout tests draw on a recording surface with fixed-width metrics so that
//   line breaks and page breaks are predictable.
// - TestGofpdfSurface* touch gofpdf; they check the output is a PDF, not its
//   exact bytes (gofpdf stamps the creation date).
// - testdata holds the DejaVu Sans Condensed faces shipped with gofpdf for the
//   UTF-8 font path.

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-admitdoc/internal/compose"
)

// fixedMetrics gives every rune a width of size*ratio.
type fixedMetrics struct{ ratio float64 }

func (m fixedMetrics) WidthOfTextAtSize(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * m.ratio
}

type drawCall struct {
	page int
	x, y float64
	text string
	face Face
	size float64
}

type recordingSurface struct {
	pages int
	calls []drawCall
	err   error
}

func (s *recordingSurface) AddPage() { s.pages++ }

func (s *recordingSurface) DrawText(x, y float64, text string, face Face, size float64) {
	s.calls = append(s.calls, drawCall{page: s.pages, x: x, y: y, text: text, face: face, size: size})
}

func (s *recordingSurface) Metrics(Face) FontMetrics { return fixedMetrics{ratio: 0.5} }

func (s *recordingSurface) Bytes() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-fake"), nil
}

func (s *recordingSurface) texts() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.text
	}
	return out
}

// ---------------------------------------------------------------------------
// TestWrap - Greedy word wrap with hard splits
// ---------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	t.Parallel()

	m := fixedMetrics{ratio: 1} // one point per rune at size 1

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"empty", "", 10, []string{""}},
		{"whitespace only", " \t\n ", 10, []string{""}},
		{"fits on one line", "hello world", 11, []string{"hello world"}},
		{"breaks between words", "hello world", 10, []string{"hello", "world"}},
		{"normalizes spaces", "  a   b\tc ", 10, []string{"a b c"}},
		{"packs greedily", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"hard splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"continues after split", "abcdef gh", 4, []string{"abcd", "ef", "gh"}},
		{"split tail joins next word", "abcde f", 4, []string{"abcd", "e f"}},
		{"multibyte runes", "ééééé", 2, []string{"éé", "éé", "é"}},
		{"rune wider than line", "ab", 0.5, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Wrap(tt.text, m, 1, tt.maxWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %v) mismatch (-want +got):\n%s", tt.text, tt.maxWidth, diff)
			}
		})
	}
}

func TestWrap_Properties(t *testing.T) {
	t.Parallel()

	m := fixedMetrics{ratio: 0.5}
	rng := rand.New(rand.NewSource(42))
	vocabulary := strings.Fields("the applicant will attend orientation before classes begin on the start date confirmed in this letter a b cc")

	for i := range 200 {
		n := 1 + rng.Intn(40)
		words := make([]string, n)
		for j := range words {
			words[j] = vocabulary[rng.Intn(len(vocabulary))]
		}
		text := strings.Join(words, strings.Repeat(" ", 1+rng.Intn(3)))
		maxWidth := 70.0 + float64(rng.Intn(200)) // wider than any vocabulary word

		lines := Wrap(text, m, 11, maxWidth)
		for _, line := range lines {
			if w := m.WidthOfTextAtSize(line, 11); w > maxWidth {
				t.Fatalf("case %d: line %q width %.1f exceeds %.1f", i, line, w, maxWidth)
			}
		}
		if got, want := strings.Join(lines, " "), strings.Join(words, " "); got != want {
			t.Fatalf("case %d: rejoined %q, want %q", i, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLayout - Drawing primitives and pagination
// ---------------------------------------------------------------------------

func TestLayout_DrawHeading(t *testing.T) {
	t.Parallel()

	s := &recordingSurface{}
	g := DefaultGeometry()
	l := New(s, g)

	l.DrawHeading("Offer of Admission")

	want := []drawCall{{page: 1, x: g.Margin, y: g.Margin + g.HeadingSize, text: "Offer of Admission", face: Bold, size: g.HeadingSize}}
	if diff := cmp.Diff(want, s.calls, cmp.AllowUnexported(drawCall{})); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if got, want := l.Cursor(), g.Margin+g.HeadingLineHeight+g.HeadingGap; got != want {
		t.Errorf("Cursor() = %v, want %v", got, want)
	}
}

func TestLayout_DrawParagraph_Bullet(t *testing.T) {
	t.Parallel()

	s := &recordingSurface{}
	g := DefaultGeometry()
	g.PageWidth = 2*g.Margin + 110 // 20 runes at 11pt * 0.5
	l := New(s, g)

	l.DrawParagraph("first line words and more words here", ParagraphStyle{Bullet: true})

	indent := fixedMetrics{ratio: 0.5}.WidthOfTextAtSize(compose.BulletPrefix, g.BodySize)
	if s.calls[0].text != compose.BulletPrefix || s.calls[0].x != g.Margin {
		t.Fatalf("first call = %+v, want bullet at margin", s.calls[0])
	}
	bullets := 0
	for _, c := range s.calls {
		if c.text == compose.BulletPrefix {
			bullets++
			continue
		}
		if c.x != g.Margin+indent {
			t.Errorf("line %q at x=%v, want %v", c.text, c.x, g.Margin+indent)
		}
		if c.face != Regular {
			t.Errorf("line %q face = %v, want Regular", c.text, c.face)
		}
	}
	if bullets != 1 {
		t.Errorf("bullet drawn %d times, want 1", bullets)
	}
	lines := len(s.calls) - 1
	if lines < 2 {
		t.Fatalf("expected the paragraph to wrap, got %d lines", lines)
	}
	if got, want := l.Cursor(), g.Margin+float64(lines)*g.LineHeight+g.ParagraphGap; got != want {
		t.Errorf("Cursor() = %v, want %v", got, want)
	}
}

func TestLayout_DrawParagraph_Bold(t *testing.T) {
	t.Parallel()

	s := &recordingSurface{}
	l := New(s, DefaultGeometry())
	l.DrawParagraph("Signed", ParagraphStyle{Bold: true})

	if len(s.calls) != 1 || s.calls[0].face != Bold {
		t.Errorf("calls = %+v, want one bold line", s.calls)
	}
}

func TestLayout_EnsureSpace(t *testing.T) {
	t.Parallel()

	g := DefaultGeometry()

	t.Run("fresh page never breaks", func(t *testing.T) {
		t.Parallel()

		s := &recordingSurface{}
		l := New(s, g)
		l.EnsureSpace(g.PageHeight * 2)
		if l.Pages() != 1 || s.pages != 1 {
			t.Errorf("pages = %d, want 1", l.Pages())
		}
	})

	t.Run("breaks when crossing bottom margin", func(t *testing.T) {
		t.Parallel()

		s := &recordingSurface{}
		l := New(s, g)
		l.DrawParagraph("x", ParagraphStyle{})
		l.EnsureSpace(g.Bottom())
		if l.Pages() != 2 || s.pages != 2 {
			t.Errorf("pages = %d, want 2", l.Pages())
		}
		if l.Cursor() != g.Margin {
			t.Errorf("Cursor() = %v, want top margin %v", l.Cursor(), g.Margin)
		}
	})

	t.Run("content that fits stays on page", func(t *testing.T) {
		t.Parallel()

		s := &recordingSurface{}
		l := New(s, g)
		l.DrawParagraph("x", ParagraphStyle{})
		l.EnsureSpace(g.Bottom() - l.Cursor() - 0.5)
		if l.Pages() != 1 {
			t.Errorf("pages = %d, want 1", l.Pages())
		}
	})
}

func TestLayout_Pagination(t *testing.T) {
	t.Parallel()

	s := &recordingSurface{}
	g := DefaultGeometry()
	l := New(s, g)

	items := make([]string, 120)
	for i := range items {
		items[i] = "Item"
	}
	blocks := []compose.Block{{Nodes: []compose.Node{{Kind: compose.KindBulletList, Items: items}}}}

	if _, err := l.Render(context.Background(), "", blocks); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if l.Pages() < 3 {
		t.Fatalf("Pages() = %d, want at least 3 for 120 bullets", l.Pages())
	}
	for _, c := range s.calls {
		if c.y > g.Bottom() {
			t.Errorf("text %q drawn at y=%v below bottom margin %v", c.text, c.y, g.Bottom())
		}
		if c.y < g.Margin {
			t.Errorf("text %q drawn at y=%v above top margin", c.text, c.y)
		}
	}
}

func TestLayout_Render(t *testing.T) {
	t.Parallel()

	s := &recordingSurface{}
	l := New(s, DefaultGeometry())
	blocks := []compose.Block{
		{Nodes: []compose.Node{
			{Kind: compose.KindHeading, Text: "Next steps"},
			{Kind: compose.KindParagraph, Text: "Dear Jane Mwale,"},
			{Kind: compose.KindBulletList, Items: []string{"One", "Two"}},
		}},
		{},
		{Nodes: []compose.Node{{Kind: compose.KindParagraph, Text: "Yours sincerely,"}}},
	}

	data, err := l.Render(context.Background(), "Offer Letter", blocks)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Render() = %q, want surface bytes", data)
	}

	want := []string{"Offer Letter", "Next steps", "Dear Jane Mwale,", compose.BulletPrefix, "One", compose.BulletPrefix, "Two", "Yours sincerely,"}
	if diff := cmp.Diff(want, s.texts()); diff != "" {
		t.Errorf("drawn text mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_RenderErrors(t *testing.T) {
	t.Parallel()

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(&recordingSurface{}, DefaultGeometry()).Render(ctx, "t", nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Render() error = %v, want context.Canceled", err)
		}
	})

	t.Run("surface failure propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("font embedding failed")
		_, err := New(&recordingSurface{err: boom}, DefaultGeometry()).Render(context.Background(), "t", nil)
		if !errors.Is(err, boom) {
			t.Errorf("Render() error = %v, want %v", err, boom)
		}
	})
}

func TestGeometry_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultGeometry().Validate(); err != nil {
		t.Fatalf("DefaultGeometry().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"margins too wide", func(g *Geometry) { g.Margin = 300 }},
		{"zero body size", func(g *Geometry) { g.BodySize = 0 }},
		{"negative gap", func(g *Geometry) { g.SectionGap = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := DefaultGeometry()
			tt.mutate(&g)
			if err := g.Validate(); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Validate() = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGofpdfSurface - Real PDF output
// ---------------------------------------------------------------------------

func TestGofpdfSurface(t *testing.T) {
	t.Parallel()

	g := DefaultGeometry()
	s := NewGofpdfSurface(g, Metadata{Title: "Offer Letter", Author: "Admissions", Creator: "admitdoc"}, Fonts{})

	regular := s.Metrics(Regular)
	bold := s.Metrics(Bold)
	if w := regular.WidthOfTextAtSize("Jane Mwale", g.BodySize); w <= 0 {
		t.Errorf("regular width = %v, want > 0", w)
	}
	if regular.WidthOfTextAtSize("Jane Mwale", 22) <= regular.WidthOfTextAtSize("Jane Mwale", 11) {
		t.Error("width does not grow with size")
	}
	if bold.WidthOfTextAtSize("first letter", 11) <= regular.WidthOfTextAtSize("first letter", 11) {
		t.Error("bold Helvetica should be wider than regular")
	}

	items := make([]string, 80)
	for i := range items {
		items[i] = "Bring a copy of this letter and your identity document on your first day."
	}
	blocks := []compose.Block{{Nodes: []compose.Node{
		{Kind: compose.KindHeading, Text: "Next steps"},
		{Kind: compose.KindBulletList, Items: items},
	}}}

	l := New(s, g)
	data, err := l.Render(context.Background(), "Offer Letter", blocks)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF-: %q", data[:min(len(data), 8)])
	}
	if l.Pages() < 2 {
		t.Errorf("Pages() = %d, want at least 2", l.Pages())
	}
}

func loadTestFonts(t *testing.T) Fonts {
	t.Helper()

	regular, err := os.ReadFile(filepath.Join("testdata", "DejaVuSansCondensed.ttf"))
	if err != nil {
		t.Fatalf("reading regular font: %v", err)
	}
	bold, err := os.ReadFile(filepath.Join("testdata", "DejaVuSansCondensed-Bold.ttf"))
	if err != nil {
		t.Fatalf("reading bold font: %v", err)
	}
	return Fonts{Regular: regular, Bold: bold}
}

func TestGofpdfSurface_CoreFontsRejectUnencodableText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "ascii", text: "Dear Jane Mwale,", wantErr: false},
		{name: "cp1252 accents and symbols", text: "Zoë Müller • café – €1,500.00", wantErr: false},
		{name: "polish and vietnamese", text: "Dear Łukasz Nguyễn,", wantErr: true},
		{name: "han", text: "张伟", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := DefaultGeometry()
			s := NewGofpdfSurface(g, Metadata{}, Fonts{})
			s.AddPage()
			s.DrawText(g.Margin, g.Margin, tt.text, Regular, g.BodySize)

			data, err := s.Bytes()
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedText) {
					t.Fatalf("Bytes() error = %v, want ErrUnsupportedText", err)
				}
				if data != nil {
					t.Error("no bytes expected on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Bytes() error: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Error("output is not a PDF")
			}
		})
	}
}

func TestGofpdfSurface_UTF8Fonts(t *testing.T) {
	t.Parallel()

	g := DefaultGeometry()
	s := NewGofpdfSurface(g, Metadata{Title: "Offer of Admission"}, loadTestFonts(t))

	regular := s.Metrics(Regular)
	if w := regular.WidthOfTextAtSize("Łukasz Nguyễn", g.BodySize); w <= 0 {
		t.Errorf("width = %v, want > 0", w)
	}

	blocks := []compose.Block{{Nodes: []compose.Node{
		{Kind: compose.KindHeading, Text: "Offer of Admission"},
		{Kind: compose.KindParagraph, Text: "Dear Łukasz Nguyễn,"},
	}}}
	data, err := New(s, g).Render(context.Background(), "Offer of Admission", blocks)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}

func TestLayout_RenderSurfacesUnsupportedText(t *testing.T) {
	t.Parallel()

	g := DefaultGeometry()
	blocks := []compose.Block{{Nodes: []compose.Node{
		{Kind: compose.KindParagraph, Text: "Dear Łukasz Nguyễn,"},
	}}}
	_, err := New(NewGofpdfSurface(g, Metadata{}, Fonts{}), g).Render(context.Background(), "", blocks)
	if !errors.Is(err, ErrUnsupportedText) {
		t.Fatalf("Render() error = %v, want ErrUnsupportedText", err)
	}
	if !strings.Contains(err.Error(), "'Ł'") {
		t.Errorf("error should name the character: %v", err)
	}
}

func TestFonts_Validate(t *testing.T) {
	t.Parallel()

	ttf := loadTestFonts(t)
	tests := []struct {
		name    string
		fonts   Fonts
		wantErr bool
	}{
		{name: "zero value", fonts: Fonts{}},
		{name: "regular and bold", fonts: ttf},
		{name: "regular only", fonts: Fonts{Regular: ttf.Regular}},
		{name: "bold only", fonts: Fonts{Bold: ttf.Bold}, wantErr: true},
		{name: "not a font", fonts: Fonts{Regular: []byte("student:\n  fullName: Jane\n")}, wantErr: true},
		{name: "cff opentype", fonts: Fonts{Regular: []byte("OTTO\x00\x0a\x00\x80\x00\x03\x00\x20")}, wantErr: true},
		{name: "bad bold face", fonts: Fonts{Regular: ttf.Regular, Bold: []byte("nope")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.fonts.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFont) {
					t.Errorf("Validate() = %v, want ErrInvalidFont", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}
