// Package jora scrapes au.jora.com search results. Jora's markup drifts
// between card containers and bare title anchors, so the card selector is a
// union of both shapes.
package jora

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
const Source = "jora"

const origin = "https://au.jora.com"

// New builds the jora fetcher.
func New(deps scraper.Deps) *scraper.Rendered {
	return scraper.NewRendered(Site(), deps)
}

// Site describes jora to the rendered-page engine.
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

func pageURL(keyword, location string, page int) string {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("l", location)
	params.Set("p", strconv.Itoa(page))
	return origin + "/j?" + params.Encode()
}

// Parse extracts job cards. A match may be a full card or a bare title
// anchor; either way the title anchor supplies title and link, and company
// and location come from class-named children when the card has them.
func Parse(html string) ([]schema.Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse jora page: %w", err)
	}

	var rows []schema.Row
	doc.Find("article.job-card, div.job-card, a.job-title").Each(func(_ int, card *goquery.Selection) {
		link := card
		if card.Is("a") {
			// Skip anchors already covered by their enclosing card.
			if card.Closest("article.job-card, div.job-card").Length() > 0 {
				return
			}
		} else {
			link = card.Find("a.job-title").First()
		}
		title := scraper.CleanText(link.Text())
		if title == "" {
			return
		}

		href := ""
		if v, ok := link.Attr("href"); ok {
			href = scraper.AbsoluteURL(origin, v)
		}
		company := scraper.FirstText(card, ".job-company")
		location := scraper.FirstText(card, ".job-location")

		rows = append(rows, schema.NewRow(Source, title, company, location, "", "", href))
	})
	return rows, nil
}
