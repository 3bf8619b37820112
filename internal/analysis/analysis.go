// Package analysis wires the keyword engine together: one call takes a job
// description and a résumé and returns the complete report the CLI and the
// HTTP API serve. The engine itself is deterministic; only the report ID is
// generated at this boundary.
package analysis

import (
	"github.com/google/uuid"

	"github.com/jonathan/ats-scan/internal/keywords"
	"github.com/jonathan/ats-scan/internal/match"
	"github.com/jonathan/ats-scan/internal/refdata"
	"github.com/jonathan/ats-scan/internal/scoring"
	"github.com/jonathan/ats-scan/internal/textutil"
)

// Options tune a single analysis run. The zero value means: dynamic keyword
// count, built-in reference data, default score weights.
type Options struct {
	// KeywordCount fixes the keyword budget; <= 0 selects the dynamic count.
	KeywordCount int

	// Ref overrides the reference data; nil uses the built-in tables.
	Ref *refdata.Data

	// Weights overrides the score weighting; the zero value selects defaults.
	Weights scoring.Weights
}

// Report is the complete analysis result for one (JD, résumé) pair.
type Report struct {
	ID              string                      `json:"analysis_id"`
	JobTitle        string                      `json:"job_title,omitempty"`
	KeywordCount    int                         `json:"keyword_count"`
	JDWordCount     int                         `json:"jd_word_count"`
	ResumeWordCount int                         `json:"resume_word_count"`
	MatchRate       int                         `json:"match_rate"`
	Keywords        *keywords.ExtractedKeywords `json:"keywords"`
	Match           *match.Result               `json:"match"`
	Density         *match.DensityResult        `json:"density"`
	Score           *scoring.Breakdown          `json:"score"`
}

// Analyze runs extraction, matching, density analysis, and scoring for one
// (JD, résumé) pair. Degenerate inputs (empty strings) produce degenerate
// but valid reports, never errors.
func Analyze(jobDescription, resumeText string, opts Options) *Report {
	ref := opts.Ref
	if ref == nil {
		ref = refdata.New()
	}

	extractor := keywords.NewExtractor(ref)
	count := opts.KeywordCount
	if count <= 0 {
		count = extractor.DynamicCount(jobDescription)
	}

	kw := extractor.Extract(jobDescription, count)
	res := match.NewMatcher(ref).Keywords(kw.All, resumeText)
	density := match.Density(resumeText, res.Matched)

	weights := opts.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}
	score := scoring.Compose(kw, res, density, weights)

	return &Report{
		ID:              uuid.NewString(),
		JobTitle:        kw.JobTitle,
		KeywordCount:    count,
		JDWordCount:     textutil.WordCount(jobDescription),
		ResumeWordCount: textutil.WordCount(resumeText),
		MatchRate:       match.Rate(len(res.Matched), len(kw.All)),
		Keywords:        kw,
		Match:           res,
		Density:         density,
		Score:           score,
	}
}
