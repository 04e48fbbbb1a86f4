// Package seek scrapes seek.com.au search results. Seek builds its search
// URLs from slugged path segments rather than query parameters and tags its
// markup with data-automation attributes, which are far more stable than its
// generated class names.
package seek

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-jobinsights/internal/schema"
	"go-jobinsights/internal/scraper"
)

// Source is the board identifier tagged onto every emitted row.
const Source = "seek"

const origin = "https://www.seek.com.au"

// New builds the seek fetcher.
func New(deps scraper.Deps) *scraper.Rendered {
	return scraper.NewRendered(Site(), deps)
}

// Site describes seek to the rendered-page engine.
func Site() scraper.Site {
	return scraper.Site{
		Name:      Source,
		Pages:     8,
		Delay:     1.2,
		Floor:     1.2,
		TimeoutMS: 25000,
		SettleMS:  2000,
		Scroll:    true,
		FirstPage: 1,
		PageURL:   pageURL,
		Parse:     Parse,
	}
}

// Keywords arrive pre-slugged ("software-engineer"); seek encodes the search
// in the path, with only the page number as a query parameter.
func pageURL(keyword, location string, page int) string {
	return fmt.Sprintf("%s/%s-jobs/in-%s?page=%d", origin, keyword, location, page)
}

// Parse extracts job cards from a rendered search-result page. Cards without
// a title are dropped; relative detail links are absolutized.
func Parse(html string) ([]schema.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse seek page: %w", err)
	}

	var rows []schema.Row
	doc.Find("[data-automation='job-card']").Each(func(_ int, card *goquery.Selection) {
		titleLink := card.Find("a[data-automation='jobTitle']").First()
		title := scraper.CleanText(titleLink.Text())
		if title == "" {
			return
		}

		url := ""
		if href, ok := titleLink.Attr("href"); ok && href != "" {
			url = scraper.AbsoluteURL(origin, href)
		}
		company := scraper.FirstText(card, "[data-automation='jobCompany']")
		location := scraper.FirstText(card, "[data-automation='jobLocation']")

		rows = append(rows, schema.NewRow(Source, title, company, location, "", "", url))
	})
	return rows, nil
}
