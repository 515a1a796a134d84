// Package pdflayout lays composed document blocks onto fixed-size pages.
//
// Layout is independent of any PDF library: it measures text through a
// FontMetrics and draws through a Surface. GofpdfSurface is the production
// surface, backed by gofpdf core fonts.
package pdflayout

import "strings"

// FontMetrics measures rendered text width.
type FontMetrics interface {
	WidthOfTextAtSize(text string, size float64) float64
}

// Wrap splits text into lines no wider than maxWidth at size.
// Words are packed greedily; a word wider than maxWidth is split per rune.
// Blank text yields a single empty line.
func Wrap(text string, metrics FontMetrics, size, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	fits := func(s string) bool {
		return metrics.WidthOfTextAtSize(s, size) <= maxWidth
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if fits(candidate) {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if fits(word) {
			current = word
			continue
		}

		pieces := splitWord(word, fits)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord cuts word into the longest rune runs that fit. A rune that does
// not fit on its own still gets its own piece.
func splitWord(word string, fits func(string) bool) []string {
	var pieces []string
	var chunk strings.Builder
	for _, r := range word {
		if chunk.Len() > 0 && !fits(chunk.String()+string(r)) {
			pieces = append(pieces, chunk.String())
			chunk.Reset()
		}
		chunk.WriteRune(r)
	}
	return append(pieces, chunk.String())
}
