package compose

import (
	"html"
	"strings"
)

// BulletPrefix starts every bullet line in the text rendering.
const BulletPrefix = "• "

// Lines flattens one block into display lines, bullets prefixed.
func (b Block) Lines() []string {
	var lines []string
	for _, n := range b.Nodes {
		switch n.Kind {
		case KindHeading, KindParagraph:
			lines = append(lines, n.Text)
		case KindBulletList:
			for _, item := range n.Items {
				lines = append(lines, BulletPrefix+item)
			}
		}
	}
	return lines
}

// Text renders blocks as plain text: one line per node or bullet, blocks
// separated by a blank line, empty blocks skipped. Nothing is escaped.
func Text(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Empty() {
			continue
		}
		parts = append(parts, strings.Join(b.Lines(), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// HTML renders blocks inside an article element tagged with the template id.
// Every interpolated string is escaped.
func HTML(templateID string, blocks []Block) string {
	var sb strings.Builder

	sb.WriteString(`<article class="document-template" data-template="`)
	sb.WriteString(html.EscapeString(templateID))
	sb.WriteString("\">\n")

	for _, b := range blocks {
		if b.Empty() {
			continue
		}
		sb.WriteString("<section>\n")
		for _, n := range b.Nodes {
			switch n.Kind {
			case KindHeading:
				sb.WriteString("<h2>")
				sb.WriteString(html.EscapeString(n.Text))
				sb.WriteString("</h2>\n")
			case KindParagraph:
				sb.WriteString("<p>")
				sb.WriteString(html.EscapeString(n.Text))
				sb.WriteString("</p>\n")
			case KindBulletList:
				if len(n.Items) == 0 {
					continue
				}
				sb.WriteString("<ul>\n")
				for _, item := range n.Items {
					sb.WriteString("<li>")
					sb.WriteString(html.EscapeString(item))
					sb.WriteString("</li>\n")
				}
				sb.WriteString("</ul>\n")
			}
		}
		sb.WriteString("</section>\n")
	}

	sb.WriteString("</article>")
	return sb.String()
}
