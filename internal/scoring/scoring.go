// Package scoring composes matcher and density output into a weighted
// 0-100 score breakdown. The weights are product configuration, not engine
// invariants: callers can tune them without touching the engine.
package scoring

import (
	"math"

	"github.com/jonathan/ats-scan/internal/keywords"
	"github.com/jonathan/ats-scan/internal/match"
)

// Default weights for the breakdown components.
const (
	defaultKeywordRelevanceWeight    = 0.45
	defaultSkillsQualityWeight       = 0.25
	defaultExperienceAlignmentWeight = 0.15
	defaultContentQualityWeight      = 0.15
)

// Per-priority weights for keyword relevance. Title keywords count the
// most; general fallback keywords the least.
var priorityWeights = map[keywords.Priority]float64{
	keywords.PriorityTitle:            3.0,
	keywords.PriorityRequired:         2.5,
	keywords.PriorityResponsibilities: 2.0,
	keywords.PriorityNiceToHave:       1.5,
	keywords.PriorityGeneral:          1.0,
}

// Content-quality penalties.
const (
	stuffedKeywordPenalty = 15.0
	healthyDensityCeiling = 8.0 // percent; above this, density reads as over-optimization
	densityExcessPenalty  = 5.0 // per percentage point above the ceiling
)

// Weights control how the four components combine into the overall score.
// They are normalized before use, so any positive values work.
type Weights struct {
	KeywordRelevance    float64 `json:"keyword_relevance"`
	SkillsQuality       float64 `json:"skills_quality"`
	ExperienceAlignment float64 `json:"experience_alignment"`
	ContentQuality      float64 `json:"content_quality"`
}

// DefaultWeights returns the product-default weighting.
func DefaultWeights() Weights {
	return Weights{
		KeywordRelevance:    defaultKeywordRelevanceWeight,
		SkillsQuality:       defaultSkillsQualityWeight,
		ExperienceAlignment: defaultExperienceAlignmentWeight,
		ContentQuality:      defaultContentQualityWeight,
	}
}

// Breakdown is the weighted score decomposition. Component scores are
// 0-100; Overall is their weighted combination, also 0-100.
type Breakdown struct {
	KeywordRelevance    float64 `json:"keyword_relevance"`
	SkillsQuality       float64 `json:"skills_quality"`
	ExperienceAlignment float64 `json:"experience_alignment"`
	ContentQuality      float64 `json:"content_quality"`
	Overall             int     `json:"overall"`
}

// Compose builds the score breakdown from extraction, matching, and density
// results. Deterministic for identical inputs and weights.
func Compose(kw *keywords.ExtractedKeywords, res *match.Result, density *match.DensityResult, w Weights) *Breakdown {
	b := &Breakdown{
		KeywordRelevance:    keywordRelevance(kw, res),
		SkillsQuality:       skillsQuality(kw, res),
		ExperienceAlignment: experienceAlignment(kw, res),
		ContentQuality:      contentQuality(density),
	}

	total := w.KeywordRelevance + w.SkillsQuality + w.ExperienceAlignment + w.ContentQuality
	if total <= 0 {
		w = DefaultWeights()
		total = w.KeywordRelevance + w.SkillsQuality + w.ExperienceAlignment + w.ContentQuality
	}

	overall := (b.KeywordRelevance*w.KeywordRelevance +
		b.SkillsQuality*w.SkillsQuality +
		b.ExperienceAlignment*w.ExperienceAlignment +
		b.ContentQuality*w.ContentQuality) / total

	b.Overall = clampScore(int(math.Round(overall)))
	return b
}

// keywordRelevance is the priority-weighted match ratio: matching a title
// or required keyword moves the score more than matching a general one.
func keywordRelevance(kw *keywords.ExtractedKeywords, res *match.Result) float64 {
	if len(kw.All) == 0 {
		return 0
	}

	totalWeight := 0.0
	for _, k := range kw.All {
		totalWeight += weightFor(kw, k)
	}
	if totalWeight == 0 {
		return 0
	}

	matchedWeight := 0.0
	for _, k := range res.Matched {
		matchedWeight += weightFor(kw, k)
	}
	return round1(matchedWeight / totalWeight * 100)
}

// skillsQuality measures how much of the JD's technology surface the résumé
// covers, with a bonus share for exact (rather than stem/synonym) matches.
func skillsQuality(kw *keywords.ExtractedKeywords, res *match.Result) float64 {
	if len(kw.Technologies) == 0 {
		// No technology keywords to cover; fall back to the plain match rate.
		return float64(match.Rate(len(res.Matched), len(kw.All)))
	}

	matched := make(map[string]bool, len(res.Matched))
	for _, k := range res.Matched {
		matched[k] = true
	}
	covered := 0
	for _, tech := range kw.Technologies {
		if matched[tech] {
			covered++
		}
	}
	coverage := float64(covered) / float64(len(kw.Technologies))

	exact := 0
	for _, d := range res.Details {
		if d.Type == match.MatchExact {
			exact++
		}
	}
	exactShare := 0.0
	if len(res.Details) > 0 {
		exactShare = float64(exact) / float64(len(res.Details))
	}

	return round1((coverage*0.7 + exactShare*0.3) * 100)
}

// experienceAlignment is the action-verb coverage: how many of the JD's
// delivery verbs the résumé echoes.
func experienceAlignment(kw *keywords.ExtractedKeywords, res *match.Result) float64 {
	if len(kw.ActionVerbs) == 0 {
		return float64(match.Rate(len(res.Matched), len(kw.All)))
	}

	matched := make(map[string]bool, len(res.Matched))
	for _, k := range res.Matched {
		matched[k] = true
	}
	covered := 0
	for _, verb := range kw.ActionVerbs {
		if matched[verb] {
			covered++
		}
	}
	return round1(float64(covered) / float64(len(kw.ActionVerbs)) * 100)
}

// contentQuality starts at 100 and pays for over-optimization: each stuffed
// keyword and each density point above the healthy ceiling costs points.
func contentQuality(density *match.DensityResult) float64 {
	score := 100.0
	score -= float64(len(density.StuffedKeywords)) * stuffedKeywordPenalty
	if density.OverallDensity > healthyDensityCeiling {
		score -= (density.OverallDensity - healthyDensityCeiling) * densityExcessPenalty
	}
	if score < 0 {
		score = 0
	}
	return round1(score)
}

func weightFor(kw *keywords.ExtractedKeywords, keyword string) float64 {
	priority, ok := kw.Priorities[keyword]
	if !ok {
		priority = keywords.PriorityGeneral
	}
	return priorityWeights[priority]
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
