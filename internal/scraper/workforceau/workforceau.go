// Package workforceau scrapes the Workforce Australia job search. The site is
// a government Vue app; cards carry data-testid attributes when fully
// hydrated, with a job-detail anchor sweep as the loosest fallback.
package workforceau

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobinsights/internal/schema"
	"go-jobinsights/internal/scraper"
)

// Source is the board identifier tagged onto every emitted row.
const Source = "workforce_au"

const (
	origin     = "https://www.workforceaustralia.gov.au"
	searchBase = origin + "/individuals/jobs/search"
	detailPath = "/individuals/jobs/details"
)

// New builds the workforce_au fetcher.
func New(deps scraper.Deps) *scraper.Rendered {
	return scraper.NewRendered(Site(), deps)
}

// Site describes workforce_au to the rendered-page engine.
func Site() scraper.Site {
	return scraper.Site{
		Name:      Source,
		Pages:     6,
		Delay:     1.1,
		Floor:     0.4,
		TimeoutMS: 25000,
		SettleMS:  2000,
		Locale:    "en-AU",
		FirstPage: 1,
		PageURL:   pageURL,
		Parse:     Parse,
	}
}

func pageURL(keyword, location string, page int) string {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("location", location)
	params.Set("page", strconv.Itoa(page))
	return searchBase + "?" + params.Encode()
}

// Parse extracts result cards, falling back to bare detail anchors when no
// card shell matches.
func Parse(html string) ([]schema.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse workforce_au page: %w", err)
	}

	cards := scraper.FirstMatch(doc.Selection,
		"article.job-card, li.job-card, div.job-card",
		"li[data-testid*='job-card']",
	)
	if cards.Length() == 0 {
		return anchorRows(doc), nil
	}

	var rows []schema.Row
	cards.Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a[href*='"+detailPath+"'], h3 a, h2 a").First()
		if link.Length() == 0 {
			link = card.Find("a").First()
		}

		title := scraper.CleanText(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}
		jobURL := scraper.AbsoluteURL(origin, href)

		company := scraper.FirstText(card,
			"[data-testid='company-name']", ".company", ".job-company")
		location := scraper.FirstText(card,
			"[data-testid='job-location']", ".location", ".job-location")
		posted := scraper.FirstText(card,
			"[data-testid='posted-date']", ".posted", ".time")

		rows = append(rows, schema.NewRow(Source, title, company, location, posted, "", jobURL))
	})
	return rows, nil
}

func anchorRows(doc *goquery.Document) []schema.Row {
	var rows []schema.Row
	doc.Find("a[href*='" + detailPath + "']").Each(func(_ int, a *goquery.Selection) {
		title := scraper.CleanText(a.Text())
		href, _ := a.Attr("href")
		if title == "" || href == "" {
			return
		}
		rows = append(rows, schema.NewRow(Source, title, "", "", "", "", scraper.AbsoluteURL(origin, href)))
	})
	return rows
}
