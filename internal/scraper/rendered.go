package scraper

import (
	"context"

	"go-jobinsights/internal/browser"
	"go-jobinsights/internal/schema"
)

// Site describes one rendered job board: defaults for pagination and
// politeness, how to build a result-page URL, and how to turn the rendered
// HTML into rows.
type Site struct {
	Name      string
	Pages     int     // default page budget
	Delay     float64 // default seconds between pages
	Floor     float64 // minimum delay the board tolerates, 0 = none
	TimeoutMS float64 // navigation timeout
	SettleMS  float64 // post-navigation settle wait
	Locale    string  // browser locale, empty = driver default
	Scroll    bool    // paced scrolling after settle, for bot-wary boards
	FirstPage int     // 1 for page-numbered boards, 0 for offset-based ones
	PageURL   func(keyword, location string, page int) string
	Parse     func(html string) ([]schema.Row, error)
}

// Rendered drives a headless browser session through a Site's result pages.
type Rendered struct {
	site Site
	deps Deps
}

// NewRendered builds the rendered-strategy fetcher for site.
func NewRendered(site Site, deps Deps) *Rendered {
	return &Rendered{site: site, deps: deps}
}

func (r *Rendered) Source() string { return r.site.Name }

// Fetch opens one browser session and walks result pages until the budget
// runs out or a page past the first comes back empty. Session, render and
// parse failures are logged and end pagination; rows collected so far are
// returned either way.
func (r *Rendered) Fetch(ctx context.Context, q Query) []schema.Row {
	var rows []schema.Row

	budget := q.Pages
	if budget <= 0 {
		budget = r.site.Pages
	}
	limiter := PageLimiter(q.Delay, r.site.Delay, r.site.Floor)

	sess, err := r.deps.Browser.NewSession(ctx, r.sessionOptions())
	if err != nil {
		r.deps.Log.Warnw("browser session failed", "source", r.site.Name, "error", err)
		return rows
	}
	defer sess.Close()

	first := r.site.FirstPage
	for page := first; page < first+budget; page++ {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		html, err := sess.Render(ctx, r.site.PageURL(q.Keyword, q.Location, page))
		if err != nil {
			r.deps.Log.Warnw("page render failed", "source", r.site.Name, "page", page, "error", err)
			break
		}
		pageRows, err := r.site.Parse(html)
		if err != nil {
			r.deps.Log.Warnw("page parse failed", "source", r.site.Name, "page", page, "error", err)
			break
		}
		if len(pageRows) == 0 {
			if r.deps.DebugDir != "" {
				if err := sess.Screenshot(r.site.Name); err != nil {
					r.deps.Log.Debugw("screenshot failed", "source", r.site.Name, "error", err)
				}
			}
			if page != first {
				break
			}
			continue
		}
		rows = append(rows, pageRows...)
	}
	return rows
}

func (r *Rendered) sessionOptions() browser.SessionOptions {
	return browser.SessionOptions{
		UserAgent:   r.deps.EffectiveUserAgent(),
		Locale:      r.site.Locale,
		Scroll:      r.site.Scroll,
		TimeoutMS:   r.site.TimeoutMS,
		SettleMS:    r.site.SettleMS,
		CookiesPath: r.deps.CookiesPath,
		DebugDir:    r.deps.DebugDir,
	}
}
