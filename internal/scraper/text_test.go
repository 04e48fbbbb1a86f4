package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Software Engineer", "Software Engineer"},
		{"surrounding space", "  Acme Pty Ltd\n", "Acme Pty Ltd"},
		{"inner runs", "Sydney \t NSW\n\n2000", "Sydney NSW 2000"},
		{"non-breaking spaces", "Data Analyst  (Remote)", "Data Analyst (Remote)"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	const origin = "https://www.seek.com.au"

	tests := []struct {
		name string
		href string
		want string
	}{
		{"relative", "/job/12345", "https://www.seek.com.au/job/12345"},
		{"already absolute", "https://other.example/job/1", "https://other.example/job/1"},
		{"scheme relative untouched", "//cdn.example/x", "https://www.seek.com.au//cdn.example/x"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsoluteURL(origin, tt.href))
		})
	}
}

func testDoc(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestFirstMatch(t *testing.T) {
	root := testDoc(t, `
		<div class="b">second</div>
		<div class="c">third</div>`)

	t.Run("first matching group wins", func(t *testing.T) {
		sel := FirstMatch(root, "div.a", "div.b", "div.c")
		require.Equal(t, 1, sel.Length())
		assert.Equal(t, "second", sel.Text())
	})

	t.Run("union group matches in document order", func(t *testing.T) {
		sel := FirstMatch(root, "div.c, div.b")
		require.Equal(t, 2, sel.Length())
		assert.Equal(t, "second", sel.First().Text())
	})

	t.Run("nothing matches", func(t *testing.T) {
		sel := FirstMatch(root, "div.a", "span.x")
		assert.Equal(t, 0, sel.Length())
	})
}

func TestFirstText(t *testing.T) {
	root := testDoc(t, `
		<span class="empty">   </span>
		<span class="company"> Acme&nbsp;Pty </span>`)

	t.Run("skips matches with empty text", func(t *testing.T) {
		assert.Equal(t, "Acme Pty", FirstText(root, ".empty", ".company"))
	})

	t.Run("no selector matches", func(t *testing.T) {
		assert.Equal(t, "", FirstText(root, ".missing"))
	})
}

func TestFirstAttr(t *testing.T) {
	root := testDoc(t, `
		<a class="blank" href="">none</a>
		<a class="job" href="/job/9">title</a>`)

	t.Run("skips empty attribute values", func(t *testing.T) {
		assert.Equal(t, "/job/9", FirstAttr(root, "href", ".blank", ".job"))
	})

	t.Run("missing attribute", func(t *testing.T) {
		assert.Equal(t, "", FirstAttr(root, "href", ".missing"))
	})
}
