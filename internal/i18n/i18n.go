// Package i18n localizes the engine's user-facing phrases: duration
// units, warnings, suggestions, and score labels.
//
// Catalogs are YAML files keyed by the canonical English phrase, one
// file per language, embedded in the binary. Locale tags are resolved
// with BCP-47 matching, so "fr-CA" finds the "fr" catalog. Unknown
// locales and untranslated phrases fall back to canonical English.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Localizer maps a canonical English phrase and a locale tag to a
// localized phrase.
type Localizer interface {
	Translate(canonical, locale string) string
}

//go:embed catalogs/*.yaml
var embeddedCatalogs embed.FS

// Catalogs is the Localizer backed by the embedded YAML catalogs.
type Catalogs struct {
	matcher  language.Matcher
	messages []map[string]string

	mu      sync.RWMutex
	matched map[string]int
}

// NewCatalogs loads every embedded catalog.
func NewCatalogs() (*Catalogs, error) {
	entries, err := embeddedCatalogs.ReadDir("catalogs")
	if err != nil {
		return nil, fmt.Errorf("read catalogs: %w", err)
	}

	// English is the canonical language; it matches with an empty
	// message table so en-* tags short-circuit to the input phrase.
	tags := []language.Tag{language.English}
	messages := []map[string]string{nil}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", entry.Name(), err)
		}
		data, err := embeddedCatalogs.ReadFile("catalogs/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", entry.Name(), err)
		}
		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("catalog %q: %w", entry.Name(), err)
		}
		tags = append(tags, tag)
		messages = append(messages, table)
	}

	return &Catalogs{
		matcher:  language.NewMatcher(tags),
		messages: messages,
		matched:  make(map[string]int),
	}, nil
}

// Translate implements Localizer.
func (c *Catalogs) Translate(canonical, locale string) string {
	if locale == "" {
		return canonical
	}
	table := c.messages[c.tableIndex(locale)]
	if table == nil {
		return canonical
	}
	if translated, ok := table[canonical]; ok {
		return translated
	}
	return canonical
}

// tableIndex resolves a locale tag to a catalog index, caching the
// match per tag string.
func (c *Catalogs) tableIndex(locale string) int {
	c.mu.RLock()
	idx, ok := c.matched[locale]
	c.mu.RUnlock()
	if ok {
		return idx
	}

	idx = 0
	if tag, err := language.Parse(locale); err == nil {
		_, matched, confidence := c.matcher.Match(tag)
		if confidence > language.No {
			idx = matched
		}
	}

	c.mu.Lock()
	c.matched[locale] = idx
	c.mu.Unlock()
	return idx
}

// Noop is a Localizer that always returns the canonical phrase.
type Noop struct{}

// Translate implements Localizer.
func (Noop) Translate(canonical, _ string) string { return canonical }
