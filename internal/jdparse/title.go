package jdparse

import (
	"regexp"
	"sort"
	"strings"
)

// Explicit title label patterns, tried in order against the whole JD.
var titleLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*job title\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*position\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*role\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*title\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^\s*hiring for\s*:\s*(.+)$`),
	regexp.MustCompile(`(?i)we(?:'re| are) hiring\s+(?:an?\s+)?([^:\n]+?)\s*[:!.\n]`),
}

// roleWordRe gates title candidates: a line with none of these words is
// never considered a title.
var roleWordRe = regexp.MustCompile(`(?i)\b(engineer|manager|director|lead|senior|staff|principal|architect|developer|analyst|scientist|designer|head|vp|coordinator|administrator|specialist|consultant|strategist)\b`)

const (
	titleScanLines    = 5
	titleMinScore     = 3.0
	titleMaxLineChars = 80
)

// ExtractJobTitle isolates the most likely job-title line from a JD.
// Explicit labels ("Job Title:", "Position:", ...) win outright; otherwise
// the first few non-empty lines are scored on length, position, decoration,
// and whether they read like a title rather than a sentence. Returns false
// when nothing qualifies.
func ExtractJobTitle(jd string) (string, bool) {
	for _, re := range titleLabelRes {
		if m := re.FindStringSubmatch(jd); m != nil {
			title := strings.TrimSpace(m[1])
			if title != "" {
				return title, true
			}
		}
	}

	type candidate struct {
		text  string
		score float64
	}
	var candidates []candidate

	scanned := 0
	for _, line := range strings.Split(jd, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if scanned >= titleScanLines {
			break
		}
		slot := scanned
		scanned++

		if !roleWordRe.MatchString(trimmed) {
			continue
		}

		cleaned := stripHeaderDecoration(trimmed)
		score := 3.0 // role-word gate passed
		if len(cleaned) < titleMaxLineChars {
			score += 2
			if len(cleaned) < 50 {
				score++
			}
		}
		if !strings.HasSuffix(cleaned, ".") && len(strings.Fields(cleaned)) <= 10 {
			score++ // reads like a title, not a sentence
		}
		score += 0.5 * float64(titleScanLines-slot) // earlier lines weigh more
		if strings.HasPrefix(trimmed, "#") || boldHeaderRe.MatchString(trimmed) {
			score++
		}

		if score >= titleMinScore {
			candidates = append(candidates, candidate{text: cleaned, score: score})
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	// Stable sort keeps encounter order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates[0].text, true
}
