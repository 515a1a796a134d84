// Package catalog documents the template catalog for people writing
// context files: a Markdown reference, its HTML rendering and a context
// skeleton per template.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-admitdoc/internal/templates"
)

// ErrHTMLConversion indicates goldmark failed to render the reference.
var ErrHTMLConversion = errors.New("catalog HTML conversion failed")

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Document templates</title>
</head>
<body>
%s</body>
</html>
`

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// Markdown renders a reference of defs: one heading per template with its
// description, a token table and the section outline.
func Markdown(defs []templates.Definition) string {
	var b strings.Builder
	b.WriteString("# Document templates\n")

	for _, d := range defs {
		fmt.Fprintf(&b, "\n## %s (`%s`)\n\n", d.Name, d.ID)
		if d.Description != "" {
			b.WriteString(d.Description + "\n\n")
		}

		b.WriteString("| Token | Required | Description |\n")
		b.WriteString("|---|---|---|\n")
		for _, t := range d.Tokens {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", t.Path, yesNo(t.Required()), escapeCell(t.Label))
		}

		headings := lo.FilterMap(d.Sections, func(s templates.Section, _ int) (string, bool) {
			return s.Heading, s.Heading != ""
		})
		if len(headings) > 0 {
			b.WriteString("\nSections:\n\n")
			for i, h := range headings {
				fmt.Fprintf(&b, "%d. %s\n", i+1, h)
			}
		}

		lists := lo.FlatMap(d.Sections, func(s templates.Section, _ int) []templates.BulletToken {
			return s.BulletTokens
		})
		if len(lists) > 0 {
			b.WriteString("\nList fields (one bullet per element):\n\n")
			for _, bt := range lists {
				fmt.Fprintf(&b, "- `%s` as `%s`\n", bt.Token, bt.Template())
			}
		}
	}

	return b.String()
}

// HTML renders the Markdown reference as a standalone HTML document.
func HTML(defs []templates.Definition) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(defs)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return fmt.Sprintf(htmlTemplate, buf.String()), nil
}

// Skeleton returns a context tree with a placeholder for every token of d.
// Bullet list sources become one-element lists; item templates that use
// {{item.field}} get a mapping with those fields.
func Skeleton(d templates.Definition) map[string]any {
	root := map[string]any{}
	lists := map[string]templates.BulletToken{}
	for _, s := range d.Sections {
		for _, bt := range s.BulletTokens {
			lists[bt.Token] = bt
		}
	}

	for _, t := range d.Tokens {
		var value any = placeholder(t)
		if bt, ok := lists[t.Path]; ok {
			value = []any{itemSkeleton(bt)}
		}
		setPath(root, t.Path, value)
	}
	for path, bt := range lists {
		if !lo.ContainsBy(d.Tokens, func(t templates.Token) bool { return t.Path == path }) {
			setPath(root, path, []any{itemSkeleton(bt)})
		}
	}
	return root
}

func placeholder(t templates.Token) string {
	label := t.Label
	if label == "" {
		label = t.Path
	}
	if t.Optional {
		return "(optional) " + label
	}
	return label
}

func itemSkeleton(bt templates.BulletToken) any {
	fields := itemFields(bt.Template())
	if len(fields) == 0 {
		return "item"
	}
	return lo.SliceToMap(fields, func(f string) (string, any) {
		return f, f
	})
}

// itemFields returns the distinct field names used as {{item.field}}.
func itemFields(tmpl string) []string {
	var fields []string
	for _, part := range strings.Split(tmpl, "{{")[1:] {
		ref, _, ok := strings.Cut(part, "}}")
		if !ok {
			continue
		}
		ref = strings.TrimSpace(ref)
		if field, found := strings.CutPrefix(ref, "item."); found && field != "" {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return lo.Uniq(fields)
}

func setPath(root map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	node := root
	for _, p := range parts[:len(parts)-1] {
		next, ok := node[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[p] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
