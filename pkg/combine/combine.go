// Package combine merges the fetched source documents of one catalog entry
// into a single text. Combining is pure string assembly; fetching and writing
// live elsewhere.
package combine

import (
	"fmt"
	"strings"
)

// Part is one fetched source document.
type Part struct {
	Source  string // Remote relative path the content came from
	Content string
}

const ruleWidth = 78

// rule is the fixed-width horizontal line framing a source label.
var rule = "# " + strings.Repeat("-", ruleWidth)

// separator labels the provenance of the part that follows it.
func separator(source string) string {
	return fmt.Sprintf("\n\n%s\n# Source: %s\n%s\n\n", rule, source, rule)
}

// Join concatenates parts in order. A single part is returned unchanged; when
// there is more than one, every part after the first is preceded by a
// separator block naming its source path, so a reader can tell where each
// section came from.
func Join(parts []Part) string {
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0].Content
	}

	var b strings.Builder
	b.WriteString(parts[0].Content)
	for _, p := range parts[1:] {
		b.WriteString(separator(p.Source))
		b.WriteString(p.Content)
	}
	return b.String()
}
