package tokens

import (
	"regexp"
	"strings"
)

// tokenPattern matches "{{ path }}"; whitespace inside the braces is ignored.
var tokenPattern = regexp.MustCompile(`\{\{\s*([^{}]*?)\s*\}\}`)

// Fill replaces every token reference in template with lookup(path).
// References with an empty path are replaced by lookup("").
func Fill(template string, lookup func(path string) string) string {
	if !strings.Contains(template, "{{") {
		return template
	}
	return tokenPattern.ReplaceAllStringFunc(template, func(m string) string {
		sub := tokenPattern.FindStringSubmatch(m)
		return lookup(strings.TrimSpace(sub[1]))
	})
}

// References returns the distinct token paths referenced by template, in
// order of first appearance.
func References(template string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, m := range tokenPattern.FindAllStringSubmatch(template, -1) {
		p := strings.TrimSpace(m[1])
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}
