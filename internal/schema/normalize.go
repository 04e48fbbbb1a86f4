package schema

// Normalize coerces heterogeneous fetcher output into the fixed 7-field
// schema. Rows that already carry the full width and the expected source tag
// pass through untouched. Anything else is rebuilt: field 0 becomes source and
// the input fields shift into fields 1..6 positionally, padded with "" when
// short and truncated when long. Empty rows are dropped.
func Normalize(source string, rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		if len(r) == FieldCount && r[FieldSource] == source {
			out = append(out, r)
			continue
		}
		padded := make(Row, FieldCount)
		padded[FieldSource] = source
		for i := 1; i < FieldCount && i-1 < len(r); i++ {
			padded[i] = r[i-1]
		}
		out = append(out, padded)
	}
	return out
}
