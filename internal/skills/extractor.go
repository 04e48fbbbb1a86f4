package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"

	"go-jobinsights/internal/schema"
)

// Extractor matches dictionary terms in normalized job text. The automaton
// finds candidate substrings fast; a per-term regexp then confirms word
// boundaries so "go" never fires inside "golang".
type Extractor struct {
	matcher  *ahocorasick.Matcher
	terms    []string
	patterns []*regexp.Regexp
}

// NewExtractor compiles the matcher over the union of all dictionaries.
func NewExtractor() *Extractor {
	terms := AllTerms()
	patterns := make([]*regexp.Regexp, len(terms))
	for i, term := range terms {
		patterns[i] = boundaryPattern(term)
	}
	return &Extractor{
		matcher:  ahocorasick.NewStringMatcher(terms),
		terms:    terms,
		patterns: patterns,
	}
}

// boundaryPattern builds the confirmation regexp for one term. \b only works
// against terms that start or end on a word character; terms like "c++" and
// ".net" get explicit non-word guards instead.
func boundaryPattern(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)

	lead := `\b`
	if !isWordRune(rune(term[0])) {
		lead = `(?:^|[^a-z0-9_])`
	}
	trail := `\b`
	if !isWordRune(rune(term[len(term)-1])) {
		trail = `(?:$|[^a-z0-9_+#.])`
	}
	return regexp.MustCompile(lead + quoted + trail)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NormalizeText lowercases and collapses whitespace runs, matching how the
// dictionaries are written. Dots inside terms like "node.js" survive.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Extract returns the unique dictionary terms present in text. The input is
// normalized internally; each term counts at most once per call regardless
// of repeats.
func (e *Extractor) Extract(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}

	var found []string
	for _, idx := range e.matcher.Match([]byte(normalized)) {
		if e.patterns[idx].MatchString(normalized) {
			found = append(found, e.terms[idx])
		}
	}
	return found
}

// Count is one skill's mention total across a dataset.
type Count struct {
	Skill string
	N     int
}

// CountByCategory scans every row's title+description and tallies skill
// presence per category, one count per job per skill. Results are sorted by
// count descending, ties alphabetical.
func (e *Extractor) CountByCategory(rows []schema.Row) map[Category][]Count {
	membership := make(map[Category]map[string]bool, len(Categories))
	for _, cat := range Categories {
		set := make(map[string]bool, len(Dictionaries[cat]))
		for _, term := range Dictionaries[cat] {
			set[term] = true
		}
		membership[cat] = set
	}

	tallies := make(map[Category]map[string]int, len(Categories))
	for _, cat := range Categories {
		tallies[cat] = make(map[string]int)
	}

	for _, row := range rows {
		text := row.Title()
		if desc := row.Description(); desc != "" {
			text += " " + desc
		}
		for _, term := range e.Extract(text) {
			for _, cat := range Categories {
				if membership[cat][term] {
					tallies[cat][term]++
				}
			}
		}
	}

	out := make(map[Category][]Count, len(Categories))
	for _, cat := range Categories {
		out[cat] = sortCounts(tallies[cat])
	}
	return out
}

func sortCounts(tally map[string]int) []Count {
	counts := make([]Count, 0, len(tally))
	for skill, n := range tally {
		counts = append(counts, Count{Skill: skill, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Skill < counts[j].Skill
	})
	return counts
}
