// Package ingestion - browser.go provides headless browser rendering for SPA job boards.
package ingestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minContentLength is the minimum extracted text length to consider a plain
// HTTP fetch successful. Shorter content usually means a JavaScript-rendered
// page that needs browser rendering.
const minContentLength = 500

// shouldUseBrowser reports whether the extracted text is too short,
// indicating the page is likely a JavaScript-rendered SPA.
func shouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < minContentLength
}

// renderWithBrowser renders a page in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium to be installed on the system.
func renderWithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate the page.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
