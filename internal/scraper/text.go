package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses whitespace runs (non-breaking spaces included) into
// single spaces and trims the ends.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// AbsoluteURL prefixes origin onto a site-relative href (leading slash).
// Anything else passes through unchanged.
func AbsoluteURL(origin, href string) string {
	if strings.HasPrefix(href, "/") {
		return origin + href
	}
	return href
}

// FirstMatch returns the nodes of the first selector group matching anything
// under root. Groups run in priority order; a group may be a comma union,
// which matches in document order. The final (possibly empty) selection is
// returned when no group matches.
func FirstMatch(root *goquery.Selection, groups ...string) *goquery.Selection {
	sel := root.Find(groups[0])
	for _, g := range groups[1:] {
		if sel.Length() > 0 {
			return sel
		}
		sel = root.Find(g)
	}
	return sel
}

// FirstText returns the cleaned text of the first element under root matching
// any selector, trying them in order and skipping matches with empty text.
func FirstText(root *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if txt := CleanText(root.Find(s).First().Text()); txt != "" {
			return txt
		}
	}
	return ""
}

// FirstAttr returns the named attribute of the first element under root
// matching any selector and carrying a non-empty value.
func FirstAttr(root *goquery.Selection, attr string, selectors ...string) string {
	for _, s := range selectors {
		if v, ok := root.Find(s).First().Attr(attr); ok && v != "" {
			return v
		}
	}
	return ""
}
