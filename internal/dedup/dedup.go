// Package dedup collapses duplicate postings across sources and queries.
// The same job routinely surfaces under several overlapping keyword queries,
// so the pipeline dedupes the whole accumulated dataset once per run.
package dedup

import (
	"strings"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"

	"go-jobinsights/internal/schema"
)

// KeyFunc derives the dedup key for a row. ok=false drops the row from the
// output without counting it as kept or duplicate.
type KeyFunc func(schema.Row) (key uint64, ok bool)

// ContentKey is the default fuzzy key: lowercase title, company and location
// joined with "|" and hashed. URL, posted date and description are ignored on
// purpose so the same posting returned by different boards or queries
// collapses to one; the tradeoff is that recurring listings with identical
// title+company+location also collapse. Rows shorter than the location field
// are skipped.
func ContentKey(r schema.Row) (uint64, bool) {
	if len(r) < schema.FieldLocation+1 {
		return 0, false
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(r[schema.FieldTitle]))
	b.WriteByte('|')
	b.WriteString(strings.ToLower(r[schema.FieldCompany]))
	b.WriteByte('|')
	b.WriteString(strings.ToLower(r[schema.FieldLocation]))
	return xxhash.Sum64String(b.String()), true
}

// Deduper keeps the first occurrence of every key it sees.
type Deduper struct {
	key  KeyFunc
	seen mapset.Set[uint64]
}

// New builds a Deduper on the default content key.
func New() *Deduper { return NewWithKey(ContentKey) }

// NewWithKey builds a Deduper around a custom key derivation, so a stricter
// key (say, one that includes the URL) can replace the fuzzy default without
// touching the filter loop.
func NewWithKey(key KeyFunc) *Deduper {
	return &Deduper{
		key:  key,
		seen: mapset.NewThreadUnsafeSet[uint64](),
	}
}

// Filter returns the rows whose key has not been seen before, in input order.
// First occurrence wins. Malformed rows are dropped silently.
func (d *Deduper) Filter(rows []schema.Row) []schema.Row {
	out := make([]schema.Row, 0, len(rows))
	for _, r := range rows {
		key, ok := d.key(r)
		if !ok {
			continue
		}
		if !d.seen.Add(key) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Seen reports how many distinct keys have passed through the filter.
func (d *Deduper) Seen() int { return d.seen.Cardinality() }
