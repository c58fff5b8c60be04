package ingestion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thechessguy13/resume-tailor-agent/internal/types"
)

const jobPostingHTML = `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Senior Software Engineer</h1>
<article>
<h2>Requirements</h2>
<ul>
<li>Go experience</li>
<li>Distributed systems</li>
</ul>
</article>
</main>
<script>trackPageView();</script>
<footer>Footer</footer>
</body>
</html>`

func TestEndToEnd_URLFastPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(jobPostingHTML))
	}))
	defer server.Close()

	scraper := &stubScraper{}
	o := NewOrchestrator(&HTTPFetcher{}, scraper)

	content, err := o.Extract(context.Background(), Source{Kind: SourceURL, Value: server.URL})
	require.NoError(t, err)

	assert.Contains(t, content.BodyText, "Senior Software Engineer")
	assert.Contains(t, content.BodyText, "Requirements")
	assert.NotContains(t, content.BodyText, "trackPageView")
	assert.Equal(t, types.UnknownCompany, content.CompanyName)
	assert.Zero(t, scraper.calls)
}

func TestEndToEnd_URLFallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	scraper := &stubScraper{content: &types.ScrapedContent{
		CompanyName: "Initech",
		BodyText:    "Scraped via headless browser",
	}}
	o := NewOrchestrator(&HTTPFetcher{}, scraper)

	content, err := o.Extract(context.Background(), Source{Kind: SourceURL, Value: server.URL})
	require.NoError(t, err)

	assert.Equal(t, "Initech", content.CompanyName)
	assert.Equal(t, "Scraped via headless browser", content.BodyText)
	assert.Equal(t, 1, scraper.calls)
}

func TestEndToEnd_WriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "job_output")
	src := Source{Kind: SourceText, Value: "Build pipelines in Go."}
	meta := NewMetadata("Build pipelines in Go.", src)

	require.NoError(t, WriteOutput(outDir, "Build pipelines in Go.", meta))

	body, err := os.ReadFile(filepath.Join(outDir, "job_posting.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Build pipelines in Go.", string(body))

	rawMeta, err := os.ReadFile(filepath.Join(outDir, "job_posting.meta.json"))
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(rawMeta, &decoded))
	assert.Equal(t, string(SourceText), decoded.Source)
	assert.Equal(t, meta.Hash, decoded.Hash)
	assert.Empty(t, decoded.URL)
}
