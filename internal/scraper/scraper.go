// Package scraper defines the fetcher contract shared by every job board and
// the rendered-page engine most boards run on. Each board lives in its own
// subpackage and plugs a Site description (URL building + page parsing) into
// this package's orchestration.
package scraper

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"go-jobinsights/internal/browser"
	"go-jobinsights/internal/schema"
)

// DefaultUserAgent is presented to every board, static or rendered.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0 Safari/537.36"

// Query is one unit of scraping work: a keyword search against one board.
type Query struct {
	Source   string  `yaml:"source"`
	Keyword  string  `yaml:"keyword"`
	Location string  `yaml:"location"`
	Pages    int     `yaml:"pages"` // page budget, 0 = source default
	Delay    float64 `yaml:"delay"` // seconds between pages, 0 = source default
}

// Fetcher retrieves rows for one job board. Fetch returns whatever it could
// gather: page-level failures are logged, stop pagination early and leave
// already-collected rows intact. It never reports an error to the caller.
type Fetcher interface {
	Source() string
	Fetch(ctx context.Context, q Query) []schema.Row
}

// Deps carries the collaborators shared by all fetchers.
type Deps struct {
	Browser     browser.Browser
	HTTPClient  *http.Client // static-strategy requests, nil = per-fetcher default
	Log         *zap.SugaredLogger
	UserAgent   string // empty = DefaultUserAgent
	CookiesPath string // optional cookies JSON injected into browser sessions
	DebugDir    string // when set, zero-card rendered pages are captured here
}

// EffectiveUserAgent resolves the user agent to present, falling back to the
// shared default.
func (d Deps) EffectiveUserAgent() string {
	if d.UserAgent != "" {
		return d.UserAgent
	}
	return DefaultUserAgent
}

// Registry resolves fetchers by source name.
type Registry struct {
	fetchers map[string]Fetcher
	sources  []string
}

// NewRegistry builds a registry over the given fetchers.
func NewRegistry(fetchers ...Fetcher) *Registry {
	r := &Registry{fetchers: make(map[string]Fetcher, len(fetchers))}
	for _, f := range fetchers {
		r.Register(f)
	}
	return r
}

// Register adds or replaces the fetcher for its source.
func (r *Registry) Register(f Fetcher) {
	name := f.Source()
	if _, ok := r.fetchers[name]; !ok {
		r.sources = append(r.sources, name)
	}
	r.fetchers[name] = f
}

// Lookup returns the fetcher registered for source.
func (r *Registry) Lookup(source string) (Fetcher, bool) {
	f, ok := r.fetchers[source]
	return f, ok
}

// Sources lists registered source names in registration order.
func (r *Registry) Sources() []string {
	return append([]string(nil), r.sources...)
}
