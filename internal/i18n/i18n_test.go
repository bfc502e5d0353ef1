package i18n

import (
	"testing"

	"gopkg.in/yaml.v3"

	"passrank/internal/match"
	"passrank/internal/scoring"
)

func newCatalogs(t *testing.T) *Catalogs {
	t.Helper()
	c, err := NewCatalogs()
	if err != nil {
		t.Fatalf("NewCatalogs failed: %v", err)
	}
	return c
}

// =============================================================================
// Tests for Catalogs.Translate
// =============================================================================

func TestTranslateFrench(t *testing.T) {
	c := newCatalogs(t)
	if got := c.Translate("instant", "fr"); got != "instantané" {
		t.Errorf("Translate(instant, fr) = %q", got)
	}
}

func TestTranslateGerman(t *testing.T) {
	c := newCatalogs(t)
	if got := c.Translate("instant", "de"); got != "sofort" {
		t.Errorf("Translate(instant, de) = %q", got)
	}
}

func TestTranslateEmptyLocale(t *testing.T) {
	c := newCatalogs(t)
	if got := c.Translate("instant", ""); got != "instant" {
		t.Errorf("Translate(instant, \"\") = %q", got)
	}
}

func TestTranslateEnglishIsIdentity(t *testing.T) {
	c := newCatalogs(t)
	for _, locale := range []string{"en", "en-US", "en-GB"} {
		if got := c.Translate("instant", locale); got != "instant" {
			t.Errorf("Translate(instant, %s) = %q", locale, got)
		}
	}
}

func TestTranslateRegionalVariant(t *testing.T) {
	// BCP-47 matching: fr-CA resolves to the fr catalog.
	c := newCatalogs(t)
	if got := c.Translate("instant", "fr-CA"); got != "instantané" {
		t.Errorf("Translate(instant, fr-CA) = %q", got)
	}
}

func TestTranslateUnknownLocaleFallsBack(t *testing.T) {
	c := newCatalogs(t)
	if got := c.Translate("instant", "zz-unknown"); got != "instant" {
		t.Errorf("Translate(instant, zz-unknown) = %q", got)
	}
	if got := c.Translate("instant", "not a locale!"); got != "instant" {
		t.Errorf("Translate with invalid tag = %q", got)
	}
}

func TestTranslateUntranslatedPhraseFallsBack(t *testing.T) {
	c := newCatalogs(t)
	phrase := "a phrase no catalog carries"
	if got := c.Translate(phrase, "fr"); got != phrase {
		t.Errorf("Translate(%q, fr) = %q", phrase, got)
	}
}

func TestTranslateRepeatedLookupsStable(t *testing.T) {
	// Exercises the per-tag cache.
	c := newCatalogs(t)
	for i := 0; i < 3; i++ {
		if got := c.Translate("minutes", "de"); got != "Minuten" {
			t.Errorf("lookup %d: got %q", i, got)
		}
	}
}

// =============================================================================
// Tests for catalog coverage
// =============================================================================

func TestCatalogsCoverCanonicalPhrases(t *testing.T) {
	var phrases []string
	phrases = append(phrases, scoring.DisplayUnits()...)
	phrases = append(phrases, match.Warnings()...)
	phrases = append(phrases, match.Suggestions()...)
	phrases = append(phrases, scoring.ScoreLabels()...)

	for _, name := range []string{"catalogs/fr.yaml", "catalogs/de.yaml"} {
		data, err := embeddedCatalogs.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, phrase := range phrases {
			if _, ok := table[phrase]; !ok {
				t.Errorf("%s: missing phrase %q", name, phrase)
			}
		}
	}
}

// =============================================================================
// Tests for Noop
// =============================================================================

func TestNoop(t *testing.T) {
	var n Noop
	if got := n.Translate("instant", "fr"); got != "instant" {
		t.Errorf("Noop.Translate = %q", got)
	}
}
