package admitdoc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-admitdoc/internal/tokens"
)

// fallbackFileStem is used when neither the name nor the id leaves anything.
const fallbackFileStem = "document"

var nonFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// ComputeDefaultFileName builds "<id>-<student name>.pdf", lower-cased with
// every other character run collapsed to one hyphen. Accents are folded
// ("Zoë" becomes "zoe"). The id alone is used when the student name is
// missing or leaves nothing after cleaning.
func ComputeDefaultFileName(id TemplateID, rc RenderContext) string {
	stem := slugify(string(id))
	if stem == "" {
		stem = fallbackFileStem
	}
	name := tokens.NewFormatter().FormatAt(map[string]any(rc), "student.fullName")
	if s := slugify(name); s != "" {
		stem += "-" + s
	}
	return stem + ".pdf"
}

func slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	return strings.Trim(nonFileChars.ReplaceAllString(strings.ToLower(folded), "-"), "-")
}
