// Package templates holds the static catalog of document definitions.
//
// Each definition lists the tokens it consumes and the ordered sections that
// make up the document. Definitions are data: adding a document kind means
// adding a definition to the catalog, never new rendering logic.
package templates

import (
	"strings"

	"github.com/samber/lo"
)

// ID identifies a document kind.
type ID string

const (
	OfferLetter             ID = "offerLetter"
	InterviewInvitation     ID = "interviewInvitation"
	RejectionFeedback       ID = "rejectionFeedback"
	PaymentBalanceStatement ID = "paymentBalanceStatement"
)

// Token describes one substitutable field. Tokens are required unless
// Optional is set.
type Token struct {
	Path     string
	Label    string
	Optional bool
}

// Required reports whether the token must have a value before rendering.
func (t Token) Required() bool {
	return !t.Optional
}

// BulletToken expands an array-valued context field into one bullet per
// element. ItemTemplate may reference {{item}} or {{item.field}}; empty
// means "{{item}}".
type BulletToken struct {
	Token        string
	ItemTemplate string
}

// DefaultItemTemplate is used when a BulletToken has no ItemTemplate.
const DefaultItemTemplate = "{{item}}"

// Template returns the item template, defaulting to DefaultItemTemplate.
func (b BulletToken) Template() string {
	if b.ItemTemplate == "" {
		return DefaultItemTemplate
	}
	return b.ItemTemplate
}

// Section is one block of a document: heading, paragraphs, literal bullets,
// then token-expanded bullets, always in that order.
type Section struct {
	Heading      string
	Paragraphs   []string
	Bullets      []string
	BulletTokens []BulletToken
}

// Definition is one document kind.
type Definition struct {
	ID          ID
	Name        string
	Description string
	Tokens      []Token
	Sections    []Section
}

// RequiredPaths returns the paths of required tokens in declaration order.
func (d Definition) RequiredPaths() []string {
	return lo.FilterMap(d.Tokens, func(t Token, _ int) (string, bool) {
		return t.Path, t.Required()
	})
}

// TokenPaths returns every declared token path in declaration order.
func (d Definition) TokenPaths() []string {
	return lo.Map(d.Tokens, func(t Token, _ int) string {
		return t.Path
	})
}

// clone returns a deep copy so callers cannot mutate the catalog.
func (d Definition) clone() Definition {
	out := d
	out.Tokens = append([]Token(nil), d.Tokens...)
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		out.Sections[i] = Section{
			Heading:      s.Heading,
			Paragraphs:   append([]string(nil), s.Paragraphs...),
			Bullets:      append([]string(nil), s.Bullets...),
			BulletTokens: append([]BulletToken(nil), s.BulletTokens...),
		}
	}
	return out
}

// Get returns the definition registered under id.
func Get(id ID) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return Definition{}, false
}

// All returns every definition in catalog order.
func All() []Definition {
	return lo.Map(catalog, func(d Definition, _ int) Definition {
		return d.clone()
	})
}

// IDs returns every registered id in catalog order.
func IDs() []ID {
	return lo.Map(catalog, func(d Definition, _ int) ID {
		return d.ID
	})
}

// ParseID resolves user input to an id. Matching ignores case, hyphens,
// underscores and spaces, so "offer-letter" and "OFFER_LETTER" both resolve
// to OfferLetter.
func ParseID(s string) (ID, bool) {
	want := normalizeID(s)
	if want == "" {
		return "", false
	}
	return lo.Find(IDs(), func(id ID) bool {
		return normalizeID(string(id)) == want
	})
}

var idReplacer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalizeID(s string) string {
	return strings.ToLower(idReplacer.Replace(strings.TrimSpace(s)))
}
