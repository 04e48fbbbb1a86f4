package seek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobinsights/internal/schema"
)

const resultsPage = `
<html><body>
  <div data-automation="job-card">
    <a data-automation="jobTitle" href="/job/80012345">Senior  Backend&nbsp;Engineer</a>
    <span data-automation="jobCompany">Acme Pty Ltd</span>
    <span data-automation="jobLocation">Melbourne VIC</span>
  </div>
  <div data-automation="job-card">
    <a data-automation="jobTitle" href="https://www.seek.com.au/job/80054321">Data Analyst</a>
    <span data-automation="jobCompany">Beta Group</span>
  </div>
  <div data-automation="job-card">
    <span data-automation="jobCompany">Cardless Corp</span>
  </div>
</body></html>`

func TestParseExtractsCards(t *testing.T) {
	rows, err := Parse(resultsPage)
	require.NoError(t, err)
	require.Len(t, rows, 2, "the title-less card is dropped")

	assert.Equal(t, schema.Row{
		"seek", "Senior Backend Engineer", "Acme Pty Ltd", "Melbourne VIC",
		"", "", "https://www.seek.com.au/job/80012345",
	}, rows[0])

	assert.Equal(t, "Data Analyst", rows[1].Title())
	assert.Equal(t, "https://www.seek.com.au/job/80054321", rows[1].URL(), "absolute hrefs pass through")
	assert.Equal(t, "", rows[1].Location())
}

func TestParseEmptyPage(t *testing.T) {
	rows, err := Parse(`<html><body><p>No results found.</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPageURL(t *testing.T) {
	assert.Equal(t,
		"https://www.seek.com.au/software-engineer-jobs/in-australia?page=3",
		pageURL("software-engineer", "australia", 3))
}

func TestSiteDefaults(t *testing.T) {
	s := Site()
	assert.Equal(t, "seek", s.Name)
	assert.Equal(t, 8, s.Pages)
	assert.Equal(t, 1.2, s.Floor)
	assert.Equal(t, 1, s.FirstPage)
}
