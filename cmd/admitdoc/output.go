package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-admitdoc"
	"github.com/alnah/go-admitdoc/internal/config"
	"github.com/alnah/go-admitdoc/internal/fileutil"
	"github.com/alnah/go-admitdoc/internal/hints"
)

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
%s</head>
<body>
%s
</body>
</html>
`

// writeDocument writes the PDF to pdfPath and, when enabled, the text and
// HTML renderings next to it. css is inlined into the HTML page when set.
// Returns every path written, PDF first.
func writeDocument(doc *admitdoc.RenderedDocument, pdfPath string, out config.OutputConfig, css string) ([]string, error) {
	outputs := []struct {
		ext     string
		enabled bool
		data    func() []byte
	}{
		{".pdf", true, func() []byte { return doc.PDF.Bytes }},
		{".txt", out.Text, func() []byte { return []byte(doc.Text) }},
		{".html", out.HTML, func() []byte {
			return fmt.Appendf(nil, htmlPage, html.EscapeString(doc.Title), styleElement(css), doc.HTML)
		}},
	}

	var written []string
	for _, o := range outputs {
		if !o.enabled {
			continue
		}
		path := pdfPath
		if o.ext != ".pdf" {
			var err error
			if path, err = fileutil.ReplaceExt(pdfPath, o.ext); err != nil {
				return written, fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}
		}
		if err := fileutil.WriteFile(path, o.data()); err != nil {
			return written, fmt.Errorf("%w %s: %w%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
		}
		written = append(written, path)
	}
	return written, nil
}

func styleElement(css string) string {
	if strings.TrimSpace(css) == "" {
		return ""
	}
	return "<style>\n" + css + "\n</style>\n"
}
