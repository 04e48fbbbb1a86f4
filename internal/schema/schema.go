// Package schema defines the unified job record every pipeline stage works
// with: a fixed 7-field row in the column order of the merged CSV.
package schema

// Field indices into a normalized Row.
const (
	FieldSource = iota
	FieldTitle
	FieldCompany
	FieldLocation
	FieldPostedAt
	FieldDescription
	FieldURL

	// FieldCount is the fixed width of a normalized row.
	FieldCount = 7
)

// Header is the canonical column order of the merged dataset.
var Header = []string{"source", "title", "company", "location", "posted_at", "description", "url"}

// Row is one job record. The empty string marks an absent value, so a row
// round-trips through CSV unchanged. Rows are never mutated after creation;
// the pipeline only filters and passes them through.
type Row []string

// NewRow builds a full-width row in canonical field order.
func NewRow(source, title, company, location, postedAt, description, url string) Row {
	return Row{source, title, company, location, postedAt, description, url}
}

func (r Row) field(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

// Source reports the originating job board, or "" on a short row.
func (r Row) Source() string { return r.field(FieldSource) }

// Title reports the job title, or "" on a short row.
func (r Row) Title() string { return r.field(FieldTitle) }

// Company reports the advertising company, or "" when absent.
func (r Row) Company() string { return r.field(FieldCompany) }

// Location reports the listing location, or "" when absent.
func (r Row) Location() string { return r.field(FieldLocation) }

// PostedAt reports the free-text posting date, or "" when absent.
func (r Row) PostedAt() string { return r.field(FieldPostedAt) }

// Description reports the job description, or "" when absent.
func (r Row) Description() string { return r.field(FieldDescription) }

// URL reports the job-detail link, or "" when absent.
func (r Row) URL() string { return r.field(FieldURL) }
