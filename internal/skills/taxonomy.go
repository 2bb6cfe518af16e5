// Package skills provides the skill taxonomy, resume matching, and tier metrics.
package skills

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"sync"
)

//go:embed taxonomy.json
var taxonomyFile embed.FS

var (
	defaultTaxonomy     *Taxonomy
	defaultTaxonomyOnce sync.Once
	defaultTaxonomyErr  error
)

// Entry is a single taxonomy skill with its precompiled matching pattern.
type Entry struct {
	Name    string
	pattern *regexp.Regexp
}

// Taxonomy maps category names to the skills recognized under them.
type Taxonomy struct {
	Categories map[string][]Entry
}

// Default returns the taxonomy embedded in the binary, parsing it once.
func Default() (*Taxonomy, error) {
	defaultTaxonomyOnce.Do(func() {
		data, err := taxonomyFile.ReadFile("taxonomy.json")
		if err != nil {
			defaultTaxonomyErr = fmt.Errorf("failed to read embedded taxonomy: %w", err)
			return
		}
		defaultTaxonomy, defaultTaxonomyErr = Parse(data)
	})
	return defaultTaxonomy, defaultTaxonomyErr
}

// MustDefault returns the embedded taxonomy, panicking if it cannot be parsed.
// The taxonomy is a compile-time asset, so a failure here is a build defect.
func MustDefault() *Taxonomy {
	tax, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load skill taxonomy: %v", err))
	}
	return tax
}

// Parse builds a Taxonomy from JSON mapping category names to skill lists.
func Parse(data []byte) (*Taxonomy, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	tax := &Taxonomy{Categories: make(map[string][]Entry, len(raw))}
	for category, names := range raw {
		entries := make([]Entry, 0, len(names))
		for _, name := range names {
			pattern, err := compileSkillPattern(name)
			if err != nil {
				return nil, fmt.Errorf("failed to compile pattern for skill %q: %w", name, err)
			}
			entries = append(entries, Entry{Name: name, pattern: pattern})
		}
		tax.Categories[category] = entries
	}
	return tax, nil
}

// CategoryNames returns the taxonomy's category names in sorted order.
func (t *Taxonomy) CategoryNames() []string {
	names := make([]string, 0, len(t.Categories))
	for name := range t.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// compileSkillPattern builds a case-insensitive whole-token pattern for a
// skill name. Word boundaries exclude alphanumerics plus "+" and "#" so that
// names like "C++" and "C#" stay intact rather than relying on \b, while a
// trailing period (end of sentence) still counts as a boundary.
func compileSkillPattern(name string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)(^|[^a-zA-Z0-9+#])` + regexp.QuoteMeta(name) + `($|[^a-zA-Z0-9+#])`)
}
