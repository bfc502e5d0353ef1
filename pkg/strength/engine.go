// Package strength estimates how resistant a password is to guessing.
//
// The estimator models a realistic attacker: it decomposes the
// password into the cheapest combination of dictionary words,
// leet-speak variants, keyboard runs, repeats, sequences, years, and
// dates, and derives guess counts, crack-time projections, a 0-4
// score, and concrete feedback from that decomposition.
//
// An Engine is immutable after construction apart from its display
// locale and is safe for concurrent use.
package strength

import (
	"fmt"
	"sync"

	"passrank/internal/i18n"
	"passrank/internal/layout"
	"passrank/internal/matcher"
	"passrank/internal/wordlist"
)

// Engine evaluates passwords against a fixed set of matchers.
type Engine struct {
	factory   *matcher.Factory
	localizer i18n.Localizer

	mu     sync.RWMutex
	locale string
}

type options struct {
	source      wordlist.Source
	names       []string
	localizer   i18n.Localizer
	locale      string
	layoutFiles []string
}

// Option configures engine construction.
type Option func(*options)

// WithSource replaces the embedded word lists with another dictionary
// source.
func WithSource(src wordlist.Source) Option {
	return func(o *options) { o.source = src }
}

// WithDictionaries replaces the default dictionary name set.
func WithDictionaries(names ...string) Option {
	return func(o *options) { o.names = names }
}

// WithLocalizer replaces the embedded message catalogs.
func WithLocalizer(loc i18n.Localizer) Option {
	return func(o *options) { o.localizer = loc }
}

// WithLocale sets the initial display locale, e.g. "fr-CA".
func WithLocale(tag string) Option {
	return func(o *options) { o.locale = tag }
}

// WithLayoutFiles adds custom keyboard layouts from JSON definition
// files to the built-in set.
func WithLayoutFiles(paths ...string) Option {
	return func(o *options) { o.layoutFiles = append(o.layoutFiles, paths...) }
}

// New constructs an engine. Construction fails if a dictionary cannot
// be loaded, a layout file is invalid, or the message catalogs cannot
// be parsed.
func New(opts ...Option) (*Engine, error) {
	o := options{
		source: wordlist.Embedded(),
		names:  wordlist.DefaultNames(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.localizer == nil {
		catalogs, err := i18n.NewCatalogs()
		if err != nil {
			return nil, fmt.Errorf("strength: %w", err)
		}
		o.localizer = catalogs
	}

	graphs := layout.Builtin()
	for _, path := range o.layoutFiles {
		g, err := layout.LoadCustom(path)
		if err != nil {
			return nil, fmt.Errorf("strength: %w", err)
		}
		graphs = append(graphs, g)
	}

	factory, err := matcher.NewFactory(o.source, o.names, graphs)
	if err != nil {
		return nil, fmt.Errorf("strength: %w", err)
	}

	return &Engine{
		factory:   factory,
		localizer: o.localizer,
		locale:    o.locale,
	}, nil
}

// SetLocale changes the locale used for display strings on subsequent
// evaluations.
func (e *Engine) SetLocale(tag string) {
	e.mu.Lock()
	e.locale = tag
	e.mu.Unlock()
}

// Locale returns the current display locale.
func (e *Engine) Locale() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.locale
}

// translate localizes one canonical phrase under the current locale.
func (e *Engine) translate(canonical string) string {
	return e.localizer.Translate(canonical, e.Locale())
}

// MatchPassword evaluates a password with a freshly constructed
// default engine. For repeated evaluations build one Engine and reuse
// it; construction dominates a single evaluation.
func MatchPassword(password string, userInputs ...string) (*Result, error) {
	engine, err := New()
	if err != nil {
		return nil, err
	}
	return engine.Evaluate(password, userInputs...), nil
}
