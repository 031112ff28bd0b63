// Package catalog defines the static table of fetchable standards documents.
// The table is compiled in; there is no configuration file to load.
package catalog

import (
	"fmt"
	"strings"
)

// Entry describes one selectable standard: where its source files live on the
// remote host and what the combined document is called locally.
type Entry struct {
	Key         string   // Stable identifier, unique within the catalog
	DisplayName string   // Human-readable label shown during selection
	Description string   // One-line summary shown during selection
	SourcePaths []string // Remote relative paths, fetched and combined in this order
	OutputName  string   // Local file name used in save-to-folder mode
}

// entries is the catalog in display order. Order matters: it drives the
// selection prompt and the default processing order.
var entries = []Entry{
	{
		Key:         "coding",
		DisplayName: "Coding Standards",
		Description: "Code style, structure, and review conventions",
		SourcePaths: []string{"standards/coding.md", "standards/code-review.md"},
		OutputName:  "coding-standards.md",
	},
	{
		Key:         "design",
		DisplayName: "Design Standards",
		Description: "Visual design and component guidelines",
		SourcePaths: []string{"standards/design.md"},
		OutputName:  "design-standards.md",
	},
	{
		Key:         "seo",
		DisplayName: "SEO Standards",
		Description: "Search engine optimization requirements",
		SourcePaths: []string{"standards/seo.md"},
		OutputName:  "seo-standards.md",
	},
	{
		Key:         "accessibility",
		DisplayName: "Accessibility Standards",
		Description: "WCAG-aligned accessibility requirements",
		SourcePaths: []string{"standards/accessibility.md"},
		OutputName:  "accessibility-standards.md",
	},
	{
		Key:         "content",
		DisplayName: "Content Standards",
		Description: "Editorial voice, tone, and formatting rules",
		SourcePaths: []string{"standards/content.md"},
		OutputName:  "content-standards.md",
	},
	{
		Key:         "performance",
		DisplayName: "Performance Standards",
		Description: "Page weight, loading, and runtime performance budgets",
		SourcePaths: []string{"standards/performance.md"},
		OutputName:  "performance-standards.md",
	},
}

// Entries returns the catalog in display order. The returned slice is a copy;
// callers cannot mutate the catalog.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Find returns the entry for key, if present.
func Find(key string) (Entry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Keys returns all catalog keys in display order.
func Keys() []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Validate checks the catalog invariants: unique keys, at least one source
// path per entry, and an output name free of path separators. A violation is
// a defect in the compiled-in table, so callers treat it as fatal.
func Validate(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			return fmt.Errorf("catalog entry %q has an empty key", e.DisplayName)
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("catalog key %q is defined twice", e.Key)
		}
		seen[e.Key] = struct{}{}

		if len(e.SourcePaths) == 0 {
			return fmt.Errorf("catalog entry %q has no source paths", e.Key)
		}
		for _, p := range e.SourcePaths {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("catalog entry %q has an empty source path", e.Key)
			}
		}
		if e.OutputName == "" {
			return fmt.Errorf("catalog entry %q has no output name", e.Key)
		}
		if strings.ContainsAny(e.OutputName, `/\`) {
			return fmt.Errorf("catalog entry %q output name %q contains a path separator", e.Key, e.OutputName)
		}
	}
	return nil
}
