// Package indeed scrapes au.indeed.com search results. Indeed paginates with
// a start offset in steps of ten and rotates its generated class names often,
// so parsing leans on data attributes before falling back to looser result
// containers.
package indeed

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
const Source = "indeed"

const (
	origin     = "https://au.indeed.com"
	searchBase = origin + "/jobs"
)

// New builds the indeed fetcher.
func New(deps scraper.Deps) *scraper.Rendered {
	return scraper.NewRendered(Site(), deps)
}

// Site describes indeed to the rendered-page engine. FirstPage is zero
// because pagination is offset-based: page n maps to start=n*10.
func Site() scraper.Site {
	return scraper.Site{
		Name:      Source,
		Pages:     6,
		Delay:     1.2,
		Floor:     0.5,
		TimeoutMS: 25000,
		SettleMS:  2000,
		Locale:    "en-AU",
		FirstPage: 0,
		PageURL:   pageURL,
		Parse:     Parse,
	}
}

func pageURL(keyword, location string, page int) string {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("l", location)
	params.Set("start", strconv.Itoa(page*10))
	params.Set("radius", "50")
	return searchBase + "?" + params.Encode()
}

// Parse extracts result cards. Rows need both a title and a link; indeed
// detail URLs are useless to dedupe against without the anchor.
func Parse(html string) ([]schema.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse indeed page: %w", err)
	}

	cards := scraper.FirstMatch(doc.Selection,
		"div[class*='jobsearch-SerpJobCard'], a[data-jk], div[data-jk]",
		"div[id^='job_'], div.result, a.tapItem",
	)

	var rows []schema.Row
	cards.Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a[aria-label], a.jcs-JobTitle, a.tapItem").First()
		if link.Length() == 0 {
			link = card.Find("a").First()
		}
		if link.Length() == 0 && card.Is("a") {
			link = card
		}

		title := scraper.CleanText(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}
		jobURL := scraper.AbsoluteURL(origin, href)

		company := scraper.FirstText(card,
			".companyName", "span.company", "span[data-testid='company-name']")
		location := scraper.FirstText(card,
			".companyLocation", "div.location", "span[data-testid='text-location']")
		posted := scraper.FirstText(card,
			"span.date", "span[data-testid='myJobsStateDate']")

		rows = append(rows, schema.NewRow(Source, title, company, location, posted, "", jobURL))
	})
	return rows, nil
}
