package ingestion

import (
	"context"
	"strings"
	"time"
)

// browserRenderTimeout bounds headless rendering of a single page.
const browserRenderTimeout = 30 * time.Second

// JobDescriptionFromURL fetches a job posting and reduces it to plain text.
// When useBrowser is set and the plain fetch yields too little text (a
// JavaScript-rendered job board), the page is re-rendered in a headless
// browser before extraction.
func JobDescriptionFromURL(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := HTMLToText(html)
	if err != nil {
		return "", err
	}

	if useBrowser && shouldUseBrowser(text) {
		rendered, renderErr := renderWithBrowser(ctx, urlStr, browserRenderTimeout)
		if renderErr == nil {
			if renderedText, extractErr := HTMLToText(rendered); extractErr == nil && len(renderedText) > len(text) {
				text = renderedText
			}
		}
	}

	return text, nil
}

// ResumeText normalizes uploaded resume content. HTML exports are reduced to
// plain text; anything else is passed through trimmed.
func ResumeText(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "<!doctype html") || strings.HasPrefix(lower, "<html") {
		return HTMLToText(trimmed)
	}
	return trimmed, nil
}
