// Package ingestion converts already-fetched JD documents into the plain
// text the engine consumes. It performs no network I/O; callers hand in the
// HTML they obtained elsewhere.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jobContentSelectors are tried in order to locate the posting body before
// falling back to <body>.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractText parses an HTML job posting and returns its plain text.
// Navigation, scripts, and other noise elements are stripped; block-level
// structure survives as line breaks so the section parser still sees
// headers on their own lines.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, iframe, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	// Force line breaks after block elements so Text() keeps the document's
	// line structure instead of running everything together.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace trims every line and drops empty runs down to single
// blank-line separators.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				cleaned = append(cleaned, "")
				blank = true
			}
			continue
		}
		cleaned = append(cleaned, line)
		blank = false
	}
	// Drop a trailing separator left by the last blank run.
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}
	return strings.Join(cleaned, "\n")
}
