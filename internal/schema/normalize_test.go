package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWidthAndSourceTag(t *testing.T) {
	tests := []struct {
		name   string
		source string
		in     []Row
		want   []Row
	}{
		{
			name:   "full row passes through",
			source: "seek",
			in:     []Row{{"seek", "Backend Dev", "Acme", "Melbourne", "", "", "https://a/1"}},
			want:   []Row{{"seek", "Backend Dev", "Acme", "Melbourne", "", "", "https://a/1"}},
		},
		{
			name:   "single field shifts into title",
			source: "indeed",
			in:     []Row{{"Title Only"}},
			want:   []Row{{"indeed", "Title Only", "", "", "", "", ""}},
		},
		{
			name:   "wrong source tag is rebuilt",
			source: "jora",
			in:     []Row{{"seek", "Dev", "Acme", "Sydney", "", "", "https://a/2"}},
			want:   []Row{{"jora", "seek", "Dev", "Acme", "Sydney", "", ""}},
		},
		{
			name:   "short tagged row still shifts",
			source: "seek",
			in:     []Row{{"seek", "Dev", "Acme"}},
			want:   []Row{{"seek", "seek", "Dev", "Acme", "", "", ""}},
		},
		{
			name:   "oversized row truncates",
			source: "prosple",
			in:     []Row{{"a", "b", "c", "d", "e", "f", "g", "h"}},
			want:   []Row{{"prosple", "a", "b", "c", "d", "e", "f"}},
		},
		{
			name:   "empty rows dropped",
			source: "seek",
			in:     []Row{{}, nil, {"Kept"}},
			want:   []Row{{"seek", "Kept", "", "", "", "", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.source, tt.in)
			assert.Equal(t, tt.want, got)
			for _, r := range got {
				assert.Len(t, r, FieldCount)
				assert.Equal(t, tt.source, r.Source())
			}
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize("seek", nil))
	assert.Empty(t, Normalize("seek", []Row{}))
}

func TestRowAccessorsShortRow(t *testing.T) {
	r := Row{"seek", "Dev"}
	assert.Equal(t, "seek", r.Source())
	assert.Equal(t, "Dev", r.Title())
	assert.Equal(t, "", r.Company())
	assert.Equal(t, "", r.URL())
}
