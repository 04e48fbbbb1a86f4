package prosple

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-jobinsights/internal/browser"
	"go-jobinsights/internal/schema"
	"go-jobinsights/internal/scraper"
)

func staticPage(opportunities string) string {
	return fmt.Sprintf(`<html><body>
		<script id="__NEXT_DATA__" type="application/json">
		{"props":{"pageProps":{"initialResult":{"opportunities":[%s]}}}}
		</script>
	</body></html>`, opportunities)
}

const gradOpportunity = `{
	"title": "Graduate Software Engineer",
	"parentEmployer": {"title": "Acme Pty Ltd"},
	"locationDescription": "Melbourne",
	"detailPageURL": "/graduate-jobs/acme/12345"
}`

const internOpportunity = `{
	"title": "Data Intern",
	"parentEmployer": {"advertiserName": "Beta Group"},
	"physicalLocations": [{"label": "Sydney"}, {"label": "Remote"}],
	"detailPageURL": "https://au.prosple.com/internships/beta/67890"
}`

const renderedPage = `<html><body>
	<li>
		<a href="/graduate-jobs/gamma/111">Graduate Analyst</a>
		<span data-testid="organisation-name">Gamma Ltd</span>
		<span data-testid="location">Adelaide</span>
	</li>
	<a href="/internships/delta/222">Engineering Intern</a>
	<a href="/employers/delta">Delta profile page</a>
</body></html>`

type fakeSession struct {
	html   string
	err    error
	urls   []string
	closed bool
}

func (s *fakeSession) Render(ctx context.Context, url string) (string, error) {
	s.urls = append(s.urls, url)
	return s.html, s.err
}

func (s *fakeSession) Screenshot(name string) error { return nil }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeBrowser struct {
	sess *fakeSession
	err  error
}

func (b *fakeBrowser) NewSession(ctx context.Context, opts browser.SessionOptions) (browser.Session, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.sess, nil
}

func newTestFetcher(t *testing.T, handler http.Handler, b browser.Browser) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := New(scraper.Deps{
		Browser:    b,
		HTTPClient: srv.Client(),
		Log:        zap.NewNop().Sugar(),
	})
	f.base = srv.URL + searchPath
	return f
}

func TestParseNextData(t *testing.T) {
	rows := ParseNextData(staticPage(gradOpportunity + "," + internOpportunity))
	require.Len(t, rows, 2)

	assert.Equal(t, schema.Row{
		"prosple", "Graduate Software Engineer", "Acme Pty Ltd", "Melbourne",
		"", "", "https://au.prosple.com/graduate-jobs/acme/12345",
	}, rows[0])

	assert.Equal(t, "Beta Group", rows[1].Company(), "advertiserName backs up the employer title")
	assert.Equal(t, "Sydney, Remote", rows[1].Location(), "physical locations join when no description")
}

func TestParseNextDataMissingOrBroken(t *testing.T) {
	assert.Empty(t, ParseNextData("<html><body>plain page</body></html>"))
	assert.Empty(t, ParseNextData(`<script id="__NEXT_DATA__">{not json</script>`))
	assert.Empty(t, ParseNextData(staticPage(`{"title":"No URL Job"}`)))
}

func TestParseRendered(t *testing.T) {
	rows, err := ParseRendered(renderedPage)
	require.NoError(t, err)
	require.Len(t, rows, 2, "only opportunity-detail anchors qualify")

	assert.Equal(t, schema.Row{
		"prosple", "Graduate Analyst", "Gamma Ltd", "Adelaide",
		"", "", "https://au.prosple.com/graduate-jobs/gamma/111",
	}, rows[0])
	assert.Equal(t, schema.Row{
		"prosple", "Engineering Intern", "", "", "", "",
		"https://au.prosple.com/internships/delta/222",
	}, rows[1])
}

func TestFetchStaticPath(t *testing.T) {
	var pages []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		if page == "1" {
			fmt.Fprint(w, staticPage(gradOpportunity))
			return
		}
		fmt.Fprint(w, staticPage(""))
	})
	f := newTestFetcher(t, handler, nil)

	rows := f.Fetch(context.Background(), scraper.Query{Keyword: "software", Location: "australia", Pages: 4, Delay: 0.001})

	require.Len(t, rows, 1)
	assert.Equal(t, "Graduate Software Engineer", rows[0].Title())
	assert.Equal(t, []string{"1", "2"}, pages, "empty page past the first stops pagination")
}

func TestFetchRenderedFallback(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>client-rendered shell</body></html>")
	})
	sess := &fakeSession{html: renderedPage}
	f := newTestFetcher(t, handler, &fakeBrowser{sess: sess})

	rows := f.Fetch(context.Background(), scraper.Query{Keyword: "software", Location: "australia", Pages: 1, Delay: 0.001})

	require.Len(t, rows, 2)
	require.Len(t, sess.urls, 1, "the same page URL is retried rendered")
	assert.Contains(t, sess.urls[0], "keywords=software")
	assert.True(t, sess.closed, "the fallback session is closed before Fetch returns")
}

func TestFetchNoBrowserSkipsFallback(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>client-rendered shell</body></html>")
	})
	f := newTestFetcher(t, handler, nil)

	rows := f.Fetch(context.Background(), scraper.Query{Keyword: "software", Pages: 2, Delay: 0.001})
	assert.Empty(t, rows)
}

func TestFetchNon200YieldsNoRows(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	f := newTestFetcher(t, handler, nil)

	rows := f.Fetch(context.Background(), scraper.Query{Keyword: "software", Pages: 2, Delay: 0.001})
	assert.Empty(t, rows)
}

func TestFetchKeepsRowsOnRenderError(t *testing.T) {
	served := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		if served == 1 {
			fmt.Fprint(w, staticPage(gradOpportunity))
			return
		}
		fmt.Fprint(w, "<html><body>shell</body></html>")
	})
	sess := &fakeSession{err: errors.New("render timeout")}
	f := newTestFetcher(t, handler, &fakeBrowser{sess: sess})

	rows := f.Fetch(context.Background(), scraper.Query{Keyword: "software", Pages: 3, Delay: 0.001})

	require.Len(t, rows, 1, "rows gathered before the failure survive")
	assert.True(t, sess.closed)
}
