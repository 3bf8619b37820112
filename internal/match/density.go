package match

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/ats-scan/internal/textutil"
)

// stuffingThreshold is the literal occurrence count at which a keyword is
// considered stuffed.
const stuffingThreshold = 5

// DensityResult reports how literally the matched keywords are repeated in
// the résumé.
type DensityResult struct {
	// OverallDensity is total occurrences over résumé word count, as a
	// one-decimal percentage.
	OverallDensity float64 `json:"overall_density"`

	// StuffedKeywords occur at least 5 times each.
	StuffedKeywords []string `json:"stuffed_keywords"`

	TotalOccurrences int `json:"total_occurrences"`
}

// Density counts literal occurrences of each matched keyword in the résumé.
// Counting is word-boundary-aware and tolerant of variable whitespace
// inside multi-word keywords; occurrences never overlap. Empty input on
// either side yields the all-zero result.
func Density(resumeText string, matchedKeywords []string) *DensityResult {
	res := &DensityResult{StuffedKeywords: []string{}}

	words := textutil.WordCount(resumeText)
	if words == 0 || len(matchedKeywords) == 0 {
		return res
	}

	lower := strings.ToLower(resumeText)
	for _, keyword := range matchedKeywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" {
			continue
		}
		count := len(occurrenceRe(kw).FindAllStringIndex(lower, -1))
		res.TotalOccurrences += count
		if count >= stuffingThreshold {
			res.StuffedKeywords = append(res.StuffedKeywords, keyword)
		}
	}

	res.OverallDensity = math.Round(float64(res.TotalOccurrences)/float64(words)*1000) / 10
	return res
}

// occurrenceRe builds the literal-occurrence pattern for a keyword: quoted,
// word-bounded, with single spaces relaxed to any whitespace run.
func occurrenceRe(kw string) *regexp.Regexp {
	parts := strings.Fields(regexp.QuoteMeta(kw))
	return regexp.MustCompile(`\b` + strings.Join(parts, `\s+`) + `\b`)
}
