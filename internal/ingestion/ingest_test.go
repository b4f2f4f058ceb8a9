package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<!DOCTYPE html>
<html>
<head><title>Job</title><style>body { color: red; }</style></head>
<body>
<nav>Home | Jobs | About</nav>
<script>trackPageView();</script>
<main>
<h1>Senior Go Engineer</h1>
<p>We are looking for a senior engineer with Go and PostgreSQL experience.</p>
</main>
<footer>Copyright 2026</footer>
</body>
</html>`

func TestHTMLToTextStripsNoise(t *testing.T) {
	text, err := HTMLToText(jobPageHTML)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "PostgreSQL experience")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright 2026")
	assert.NotContains(t, text, "color: red")
}

func TestHTMLToTextFallsBackToBody(t *testing.T) {
	text, err := HTMLToText(`<html><body><p>plain body content</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "plain body content", text)
}

func TestJobDescriptionFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	text, err := JobDescriptionFromURL(context.Background(), srv.URL, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
}

func TestJobDescriptionFromURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescriptionFromURL(context.Background(), srv.URL, false)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "404")
}

func TestJobDescriptionFromURLInvalidURL(t *testing.T) {
	var fetchErr *FetchError
	_, err := JobDescriptionFromURL(context.Background(), "not a url", false)
	require.ErrorAs(t, err, &fetchErr)
}

func TestResumeTextPassesPlainTextThrough(t *testing.T) {
	text, err := ResumeText("  plain resume text  ")
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestResumeTextReducesHTMLExports(t *testing.T) {
	html := `<html><body><header>menu</header><main><p>Jane Doe, Engineer</p></main></body></html>`
	text, err := ResumeText(html)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe, Engineer", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, shouldUseBrowser("tiny"))
	assert.False(t, shouldUseBrowser(strings.Repeat("content ", 100)))
}
