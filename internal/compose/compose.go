// Package compose walks template sections once and produces typed content
// blocks that the text, HTML and PDF renderers all consume.
package compose

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/alnah/go-admitdoc/internal/templates"
	"github.com/alnah/go-admitdoc/internal/tokens"
)

// Kind identifies a content node.
type Kind int

const (
	KindHeading Kind = iota + 1
	KindParagraph
	KindBulletList
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindBulletList:
		return "bullets"
	default:
		return "unknown"
	}
}

// Node is one filled piece of content. Text is set for headings and
// paragraphs, Items for bullet lists.
type Node struct {
	Kind  Kind
	Text  string
	Items []string
}

// Block holds the nodes of one section in render order.
type Block struct {
	Nodes []Node
}

// Empty reports whether the block has nothing to render.
func (b Block) Empty() bool {
	return len(b.Nodes) == 0
}

// Composer fills sections against a context.
type Composer struct {
	formatter *tokens.Formatter
}

// New creates a Composer. A nil formatter uses tokens.NewFormatter().
func New(f *tokens.Formatter) *Composer {
	if f == nil {
		f = tokens.NewFormatter()
	}
	return &Composer{formatter: f}
}

// Compose returns one block per section, in declaration order. Within a
// block the order is heading, paragraphs, then a single bullet list holding
// literal bullets followed by token-expanded bullets. Content that fills to
// blank text is omitted; blocks may end up empty.
func (c *Composer) Compose(sections []templates.Section, ctx any) []Block {
	blocks := make([]Block, 0, len(sections))
	for _, s := range sections {
		var b Block
		if h := c.fill(s.Heading, ctx); h != "" {
			b.Nodes = append(b.Nodes, Node{Kind: KindHeading, Text: h})
		}
		for _, p := range s.Paragraphs {
			if text := c.fill(p, ctx); text != "" {
				b.Nodes = append(b.Nodes, Node{Kind: KindParagraph, Text: text})
			}
		}
		if items := c.ExpandBullets(s, ctx); len(items) > 0 {
			b.Nodes = append(b.Nodes, Node{Kind: KindBulletList, Items: items})
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func (c *Composer) fill(template string, ctx any) string {
	if template == "" {
		return ""
	}
	return strings.TrimSpace(c.formatter.FillString(template, ctx))
}

// itemPattern matches {{item}} and {{item.sub.path}}.
var itemPattern = regexp.MustCompile(`\{\{\s*item(?:\.([^{}\s]+))?\s*\}\}`)

// ExpandBullets returns the section's bullet items: literal bullets first,
// then one item per element of each bullet token source. An absent source
// contributes nothing and a scalar source contributes one item. Items that
// fill to blank text are dropped.
func (c *Composer) ExpandBullets(s templates.Section, ctx any) []string {
	var items []string
	for _, b := range s.Bullets {
		if text := c.fill(b, ctx); text != "" {
			items = append(items, text)
		}
	}
	for _, bt := range s.BulletTokens {
		tmpl := bt.Template()
		for _, el := range elements(tokens.ValueAt(ctx, bt.Token)) {
			text := c.fill(c.fillItem(tmpl, bt.Token, el), ctx)
			if text != "" {
				items = append(items, text)
			}
		}
	}
	return items
}

// fillItem substitutes item references. Nested fields are formatted at
// "<source>.<field>" so allow-listed paths such as payment.breakdown.amount
// get currency or date formatting.
func (c *Composer) fillItem(tmpl, source string, el any) string {
	return itemPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		sub := itemPattern.FindStringSubmatch(m)[1]
		if sub == "" {
			return c.formatter.Format(source, el)
		}
		return c.formatter.Format(source+"."+sub, tokens.ValueAt(el, sub))
	})
}

// elements returns the items of a slice or array, a scalar as a single
// element, and nothing for nil.
func elements(v any) []any {
	if v == nil {
		return nil
	}
	if list, ok := v.([]any); ok {
		return list
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
	}
	return []any{v}
}
