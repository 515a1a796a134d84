package admitdoc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/alnah/go-admitdoc/internal/compose"
	"github.com/alnah/go-admitdoc/internal/dateutil"
	"github.com/alnah/go-admitdoc/internal/pdflayout"
	"github.com/alnah/go-admitdoc/internal/templates"
	"github.com/alnah/go-admitdoc/internal/tokens"
)

// Compile-time interface implementation check.
var _ pdflayout.Surface = (*pdflayout.GofpdfSurface)(nil)

// DefaultCreator is written into the PDF creator field.
const DefaultCreator = "go-admitdoc"

// SurfaceFactory creates the drawing surface for one document.
type SurfaceFactory func(g Geometry, meta PDFMetadata) Surface

// Renderer fills templates and produces text, HTML and PDF renderings.
// A Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	formatter  *tokens.Formatter
	composer   *compose.Composer
	geometry   Geometry
	newSurface SurfaceFactory
	author     string
	creator    string
	logger     *zap.Logger
}

type rendererConfig struct {
	locale        language.Tag
	dateFormat    string
	currencyPaths []string
	datePaths     []string
	geometry      Geometry
	fonts         Fonts
	newSurface    SurfaceFactory
	author        string
	creator       string
	logger        *zap.Logger
}

// Option configures a Renderer.
type Option func(*rendererConfig)

// WithLocale sets the locale for number grouping. Default: English.
func WithLocale(tag language.Tag) Option {
	return func(c *rendererConfig) {
		c.locale = tag
	}
}

// WithDateFormat sets the date format as a preset (iso, european, us, long)
// or a token format such as "D MMMM YYYY". Default: long.
func WithDateFormat(format string) Option {
	return func(c *rendererConfig) {
		c.dateFormat = format
	}
}

// WithCurrencyPaths adds token paths rendered with two decimals.
func WithCurrencyPaths(paths ...string) Option {
	return func(c *rendererConfig) {
		c.currencyPaths = append(c.currencyPaths, paths...)
	}
}

// WithDatePaths adds token paths rendered as dates.
func WithDatePaths(paths ...string) Option {
	return func(c *rendererConfig) {
		c.datePaths = append(c.datePaths, paths...)
	}
}

// WithGeometry overrides the page geometry.
func WithGeometry(g Geometry) Option {
	return func(c *rendererConfig) {
		c.geometry = g
	}
}

// WithFonts embeds TrueType fonts so the PDF can carry any UTF-8 text.
// bold may be nil to reuse regular. Without fonts the core Helvetica faces
// are used and text outside Windows-1252 fails with ErrUnsupportedText.
func WithFonts(regular, bold []byte) Option {
	return func(c *rendererConfig) {
		c.fonts = Fonts{Regular: regular, Bold: bold}
	}
}

// WithSurfaceFactory replaces the gofpdf surface, e.g. to record draw calls.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(c *rendererConfig) {
		if f != nil {
			c.newSurface = f
		}
	}
}

// WithPDFMetadata sets the author and creator written into every PDF.
// Empty values keep the defaults.
func WithPDFMetadata(author, creator string) Option {
	return func(c *rendererConfig) {
		if author != "" {
			c.author = author
		}
		if creator != "" {
			c.creator = creator
		}
	}
}

// WithLogger sets the logger. Default: no logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *rendererConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func gofpdfSurface(fonts Fonts) SurfaceFactory {
	return func(g Geometry, meta PDFMetadata) Surface {
		return pdflayout.NewGofpdfSurface(g, meta, fonts)
	}
}

// NewRenderer creates a Renderer. Returns an error when the date format,
// the geometry or the fonts are invalid.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := rendererConfig{
		locale:   language.English,
		geometry: pdflayout.DefaultGeometry(),
		creator:  DefaultCreator,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.newSurface == nil {
		cfg.newSurface = gofpdfSurface(cfg.fonts)
	}

	layout, err := dateutil.Layout(cfg.dateFormat)
	if err != nil {
		return nil, err
	}
	if err := cfg.geometry.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.fonts.Validate(); err != nil {
		return nil, err
	}

	formatter := tokens.NewFormatter(
		tokens.WithLocale(cfg.locale),
		tokens.WithDateLayout(layout),
		tokens.WithCurrencyPaths(cfg.currencyPaths...),
		tokens.WithDatePaths(cfg.datePaths...),
	)

	return &Renderer{
		formatter:  formatter,
		composer:   compose.New(formatter),
		geometry:   cfg.geometry,
		newSurface: cfg.newSurface,
		author:     cfg.author,
		creator:    cfg.creator,
		logger:     cfg.logger,
	}, nil
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(fmt.Sprintf("admitdoc: default renderer: %v", err))
	}
	return r
})

// GetTemplate returns the definition registered under id.
func GetTemplate(id TemplateID) (TemplateDefinition, error) {
	def, ok := templates.Get(id)
	if !ok {
		return TemplateDefinition{}, &UnknownTemplateError{ID: string(id)}
	}
	return def, nil
}

// Templates returns every registered definition in catalog order.
func Templates() []TemplateDefinition {
	return templates.All()
}

// ParseTemplateID resolves user input such as "offer-letter" to an id.
func ParseTemplateID(s string) (TemplateID, error) {
	id, ok := templates.ParseID(s)
	if !ok {
		return "", &UnknownTemplateError{ID: s}
	}
	return id, nil
}

// EnsureRequiredTokens fails with *MissingFieldsError naming every required
// token of def that has no value in rc.
func EnsureRequiredTokens(def TemplateDefinition, rc RenderContext) error {
	missing := tokens.MissingRequired(def.RequiredPaths(), map[string]any(rc))
	if len(missing) > 0 {
		return &MissingFieldsError{TemplateID: def.ID, Fields: missing}
	}
	return nil
}

// TokenValues formats every declared token of def, required or not.
func (r *Renderer) TokenValues(def TemplateDefinition, rc RenderContext) map[string]string {
	values := make(map[string]string, len(def.Tokens))
	for _, path := range def.TokenPaths() {
		values[path] = r.formatter.FormatAt(map[string]any(rc), path)
	}
	return values
}

// TokenValues formats every declared token of def with the default renderer.
func TokenValues(def TemplateDefinition, rc RenderContext) map[string]string {
	return defaultRenderer().TokenValues(def, rc)
}

// Render looks up the template, validates required tokens, then produces
// the text, HTML and PDF renderings. Validation failures are returned before
// any rendering work starts.
func (r *Renderer) Render(ctx context.Context, id TemplateID, rc RenderContext, opts RenderOptions) (*RenderedDocument, error) {
	start := time.Now()

	def, err := GetTemplate(id)
	if err != nil {
		return nil, err
	}
	if err := EnsureRequiredTokens(def, rc); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]any(rc)
	title := strings.TrimSpace(opts.TitleOverride)
	if title == "" {
		title = def.Name
	}

	blocks := r.composer.Compose(def.Sections, data)

	surface := r.newSurface(r.geometry, PDFMetadata{
		Title:   title,
		Author:  r.author,
		Creator: r.creator,
		Subject: def.Name,
	})
	layout := pdflayout.New(surface, r.geometry)
	pdf, err := layout.Render(ctx, title, blocks)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", id, err)
	}

	fileName := opts.FileName
	if fileName == "" {
		fileName = ComputeDefaultFileName(id, rc)
	}

	doc := &RenderedDocument{
		Template: def,
		Title:    title,
		Text:     compose.Text(blocks),
		HTML:     compose.HTML(string(def.ID), blocks),
		Tokens:   r.TokenValues(def, rc),
		PDF:      PDFOutput{Bytes: pdf, FileName: fileName},
		Pages:    layout.Pages(),
	}

	r.logger.Debug("document rendered",
		zap.String("template", string(id)),
		zap.String("file", fileName),
		zap.Int("pages", doc.Pages),
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)),
	)
	return doc, nil
}

// RenderDocumentTemplate renders with a Renderer using default options.
func RenderDocumentTemplate(ctx context.Context, id TemplateID, rc RenderContext, opts RenderOptions) (*RenderedDocument, error) {
	return defaultRenderer().Render(ctx, id, rc, opts)
}
