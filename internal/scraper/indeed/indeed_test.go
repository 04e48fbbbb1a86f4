package indeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobinsights/internal/schema"
)

const modernPage = `
<html><body>
  <div data-jk="abc123">
    <a class="jcs-JobTitle" href="/rc/clk?jk=abc123">Software Engineer</a>
    <span data-testid="company-name">Acme Pty Ltd</span>
    <span data-testid="text-location">Brisbane QLD</span>
    <span class="date">Posted 3 days ago</span>
  </div>
  <div data-jk="def456">
    <a aria-label="Data Engineer" href="https://au.indeed.com/viewjob?jk=def456">Data  Engineer</a>
    <span class="companyName">Beta Group</span>
    <div class="location">Remote</div>
  </div>
</body></html>`

const legacyPage = `
<html><body>
  <div class="result">
    <a href="/viewjob?jk=old1">Support Analyst</a>
    <span class="company">Gamma Ltd</span>
  </div>
</body></html>`

func TestParsePrimarySelectors(t *testing.T) {
	rows, err := Parse(modernPage)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, schema.Row{
		"indeed", "Software Engineer", "Acme Pty Ltd", "Brisbane QLD",
		"Posted 3 days ago", "", "https://au.indeed.com/rc/clk?jk=abc123",
	}, rows[0])

	assert.Equal(t, "Data Engineer", rows[1].Title(), "whitespace runs collapse")
	assert.Equal(t, "https://au.indeed.com/viewjob?jk=def456", rows[1].URL())
}

func TestParseFallbackSelectors(t *testing.T) {
	rows, err := Parse(legacyPage)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Support Analyst", rows[0].Title())
	assert.Equal(t, "Gamma Ltd", rows[0].Company())
}

func TestParseLinklessCardDropped(t *testing.T) {
	rows, err := Parse(`<div data-jk="x"><span class="companyName">No Anchor Inc</span></div>`)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPageURLOffsets(t *testing.T) {
	assert.Equal(t,
		"https://au.indeed.com/jobs?l=australia&q=software&radius=50&start=0",
		pageURL("software", "australia", 0))
	assert.Contains(t, pageURL("software", "australia", 3), "start=30")
}

func TestSiteStartsAtOffsetZero(t *testing.T) {
	assert.Equal(t, 0, Site().FirstPage)
}
