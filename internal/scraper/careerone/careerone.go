// Package careerone scrapes careerone.com.au search results. When no card
// container matches at all, the parser degrades to harvesting any anchor that
// links to a job detail page.
package careerone

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
const Source = "careerone"

const (
	origin     = "https://www.careerone.com.au"
	searchBase = origin + "/jobs"
)

// New builds the careerone fetcher.
func New(deps scraper.Deps) *scraper.Rendered {
	return scraper.NewRendered(Site(), deps)
}

// Site describes careerone to the rendered-page engine.
func Site() scraper.Site {
	return scraper.Site{
		Name:      Source,
		Pages:     6,
		Delay:     1.1,
		Floor:     0.4,
		TimeoutMS: 25000,
		SettleMS:  2000,
		FirstPage: 1,
		PageURL:   pageURL,
		Parse:     Parse,
	}
}

func pageURL(keyword, location string, page int) string {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("l", location)
	params.Set("page", strconv.Itoa(page))
	return searchBase + "?" + params.Encode()
}

// Parse extracts result cards, falling back to bare job-detail anchors when
// no container selector matches.
func Parse(html string) ([]schema.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse careerone page: %w", err)
	}

	cards := scraper.FirstMatch(doc.Selection,
		"article",
		"div[data-automation='result']",
		"div.job",
	)
	if cards.Length() == 0 {
		return anchorRows(doc), nil
	}

	var rows []schema.Row
	cards.Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a[href*='/job/'], a[data-automation='job-title'], h2 a, h3 a").First()
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
			"[data-automation='company-name']", ".company", ".job-company")
		location := scraper.FirstText(card,
			"[data-automation='job-location']", ".location", ".job-location")
		posted := scraper.FirstText(card,
			".posted", ".time", "[data-automation='job-age']")

		rows = append(rows, schema.NewRow(Source, title, company, location, posted, "", jobURL))
	})
	return rows, nil
}

// anchorRows is the loosest fallback: any link into /job/ becomes a row with
// just a title and URL.
func anchorRows(doc *goquery.Document) []schema.Row {
	var rows []schema.Row
	doc.Find("a[href*='/job/']").Each(func(_ int, a *goquery.Selection) {
		title := scraper.CleanText(a.Text())
		href, _ := a.Attr("href")
		if title == "" || href == "" {
			return
		}
		rows = append(rows, schema.NewRow(Source, title, "", "", "", "", scraper.AbsoluteURL(origin, href)))
	})
	return rows
}
