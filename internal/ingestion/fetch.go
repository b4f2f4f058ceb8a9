// Package ingestion turns external documents (job postings fetched by URL and
// uploaded resume exports) into clean plain text for prompt construction.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; PortfolioAgent/1.0)"

// FetchError represents an error during URL fetching.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// fetchHTML retrieves raw HTML from a URL.
func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	return string(bodyBytes), nil
}

var blankLines = regexp.MustCompile(`\n{3,}`)

// HTMLToText parses HTML and returns the main body text with navigation,
// scripts, and other noise elements removed.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	// Prefer semantic content containers, fall back to body.
	var text string
	for _, selector := range []string{"main", "article", "[role=main]", "body"} {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			text = sel.First().Text()
			break
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), nil
}
