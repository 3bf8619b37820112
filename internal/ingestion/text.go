package ingestion

import (
	"regexp"
	"strings"
)

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

// NormalizeText prepares plain-text JD input for the section parser: line
// endings become LF, lines are trimmed, space runs inside a line collapse
// to single spaces, and blank runs shrink to one separator line. Line
// structure itself is preserved, so markdown headers and bullets still sit
// on their own lines for the parser to recognize.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = spaceRunRe.ReplaceAllString(strings.TrimSpace(line), " ")
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
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}
	return strings.Join(cleaned, "\n")
}
