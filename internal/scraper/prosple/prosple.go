// Package prosple scrapes au.prosple.com, the one board that serves its
// results server-side. The fast path is a plain GET and a parse of the
// Next.js data blob embedded in the page; only when that comes back empty
// does the fetcher fall back to rendering the same page headless and sweeping
// job-detail anchors out of the hydrated DOM.
package prosple

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"go-jobinsights/internal/browser"
	"go-jobinsights/internal/schema"
	"go-jobinsights/internal/scraper"
)

// Source is the board identifier tagged onto every emitted row.
const Source = "prosple"

const (
	origin     = "https://au.prosple.com"
	searchPath = "/search-jobs"

	defaultPages = 3
	defaultDelay = 1.0
	delayFloor   = 0.4
	timeoutMS    = 25000
	settleMS     = 1000
)

// Fetcher walks prosple result pages static-first with an optional rendered
// fallback. A nil browser in deps disables the fallback entirely.
type Fetcher struct {
	deps   scraper.Deps
	client *http.Client
	base   string // search URL prefix, overridable in tests
}

// New builds the prosple fetcher.
func New(deps scraper.Deps) *Fetcher {
	client := deps.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeoutMS * time.Millisecond}
	}
	return &Fetcher{deps: deps, client: client, base: origin + searchPath}
}

func (f *Fetcher) Source() string { return Source }

// Fetch pages through results starting at page 1. Each page tries the static
// strategy first; an empty static result retries the same page rendered when
// a browser is available. The rendered session is opened lazily on the first
// fallback and closed before Fetch returns.
func (f *Fetcher) Fetch(ctx context.Context, q scraper.Query) []schema.Row {
	budget := q.Pages
	if budget <= 0 {
		budget = defaultPages
	}
	limiter := scraper.PageLimiter(q.Delay, defaultDelay, delayFloor)

	var rows []schema.Row
	var sess browser.Session
	defer func() {
		if sess != nil {
			sess.Close()
		}
	}()

	for page := 1; page <= budget; page++ {
		if err := limiter.Wait(ctx); err != nil {
			break
		}

		pageURL := f.pageURL(q.Keyword, q.Location, page)
		pageRows, err := f.fetchStatic(ctx, pageURL)
		if err != nil {
			f.deps.Log.Warnw("static fetch failed", "source", Source, "page", page, "error", err)
			break
		}

		if len(pageRows) == 0 && f.deps.Browser != nil {
			if sess == nil {
				sess, err = f.deps.Browser.NewSession(ctx, f.sessionOptions())
				if err != nil {
					f.deps.Log.Warnw("browser session failed", "source", Source, "error", err)
					break
				}
			}
			pageRows, err = f.fetchRendered(ctx, sess, pageURL)
			if err != nil {
				f.deps.Log.Warnw("rendered fallback failed", "source", Source, "page", page, "error", err)
				break
			}
		}

		if len(pageRows) == 0 {
			if page > 1 {
				break
			}
			continue
		}
		rows = append(rows, pageRows...)
	}
	return rows
}

func (f *Fetcher) pageURL(keyword, location string, page int) string {
	params := url.Values{}
	params.Set("keywords", keyword)
	params.Set("locations", location)
	params.Set("page", strconv.Itoa(page))
	return f.base + "?" + params.Encode()
}

// fetchStatic GETs a result page and parses the embedded Next.js payload.
// A non-200 status or a page without the payload yields no rows, handing the
// page over to the rendered fallback rather than failing the query.
func (f *Fetcher) fetchStatic(ctx context.Context, pageURL string) ([]schema.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.deps.EffectiveUserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return ParseNextData(string(body)), nil
}

// ParseNextData pulls job listings out of the script#__NEXT_DATA__ blob.
// Missing script, broken JSON or an unexpected shape all read as zero rows.
func ParseNextData(html string) []schema.Row {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	payload := doc.Find("script#__NEXT_DATA__").First().Text()
	if payload == "" {
		return nil
	}

	var data nextData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil
	}

	var rows []schema.Row
	for _, opp := range data.Props.PageProps.InitialResult.Opportunities {
		title := scraper.CleanText(opp.Title)
		if title == "" {
			continue
		}

		company := opp.ParentEmployer.Title
		if company == "" {
			company = opp.ParentEmployer.AdvertiserName
		}

		location := opp.LocationDescription
		if location == "" {
			var labels []string
			for _, loc := range opp.PhysicalLocations {
				if loc.Label != "" {
					labels = append(labels, loc.Label)
				}
			}
			location = strings.Join(labels, ", ")
		}

		jobURL := opp.DetailPageURL
		if jobURL == "" {
			continue
		}
		jobURL = scraper.AbsoluteURL(origin, jobURL)

		rows = append(rows, schema.NewRow(Source, title, scraper.CleanText(company), scraper.CleanText(location), "", "", jobURL))
	}
	return rows
}

type nextData struct {
	Props struct {
		PageProps struct {
			InitialResult struct {
				Opportunities []opportunity `json:"opportunities"`
			} `json:"initialResult"`
		} `json:"pageProps"`
	} `json:"props"`
}

type opportunity struct {
	Title          string `json:"title"`
	ParentEmployer struct {
		Title          string `json:"title"`
		AdvertiserName string `json:"advertiserName"`
	} `json:"parentEmployer"`
	LocationDescription string `json:"locationDescription"`
	PhysicalLocations   []struct {
		Label string `json:"label"`
	} `json:"physicalLocations"`
	DetailPageURL string `json:"detailPageURL"`
}

func (f *Fetcher) fetchRendered(ctx context.Context, sess browser.Session, pageURL string) ([]schema.Row, error) {
	html, err := sess.Render(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return ParseRendered(html)
}

// ParseRendered sweeps the hydrated DOM for opportunity-detail anchors and
// reads company and location off each anchor's enclosing card when present.
func ParseRendered(html string) ([]schema.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse prosple page: %w", err)
	}

	var rows []schema.Row
	doc.Find("a[href*='/graduate-jobs/'], a[href*='/internships/'], a[href*='/cadetships/']").
		Each(func(_ int, a *goquery.Selection) {
			title := scraper.CleanText(a.Text())
			href, _ := a.Attr("href")
			if title == "" || href == "" {
				return
			}
			jobURL := scraper.AbsoluteURL(origin, href)

			card := a.Closest("article, li, div")
			company := scraper.FirstText(card,
				"[data-testid='organisation-name']", ".organisation-name", ".job-card__company", ".company")
			location := scraper.FirstText(card,
				"[data-testid='location']", ".job-card__location", ".location", ".MuiChip-label")

			rows = append(rows, schema.NewRow(Source, title, company, location, "", "", jobURL))
		})
	return rows, nil
}

func (f *Fetcher) sessionOptions() browser.SessionOptions {
	return browser.SessionOptions{
		UserAgent:   f.deps.EffectiveUserAgent(),
		TimeoutMS:   timeoutMS,
		SettleMS:    settleMS,
		CookiesPath: f.deps.CookiesPath,
		DebugDir:    f.deps.DebugDir,
	}
}
