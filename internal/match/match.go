// Package match compares extracted JD keywords against résumé text using a
// three-tier strategy (exact, stem, synonym) and measures how literally the
// matched keywords are repeated.
package match

import (
	"regexp"
	"strings"
	"sync"

	"github.com/jonathan/ats-scan/internal/refdata"
	"github.com/jonathan/ats-scan/internal/textutil"
)

// Type identifies which tier produced a match.
type Type string

const (
	MatchExact   Type = "exact"
	MatchStem    Type = "stem"
	MatchSynonym Type = "synonym"
)

// Detail records how a single keyword matched. MatchedAs carries the stem
// or synonym form for non-exact tiers.
type Detail struct {
	Keyword   string `json:"keyword"`
	Type      Type   `json:"match_type"`
	MatchedAs string `json:"matched_as,omitempty"`
}

// Result partitions the keyword list into matched and missing. Every
// keyword lands in exactly one of the two; every matched keyword has
// exactly one Detail.
type Result struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Details []Detail `json:"match_details"`
}

// shortWordLen is the length at or below which exact matching requires a
// word boundary, so "go" never matches inside "ego".
const shortWordLen = 3

// Matcher matches keywords against résumé text using shared reference data
// for the synonym tier.
type Matcher struct {
	ref *refdata.Data
}

// NewMatcher returns a Matcher backed by the given reference data.
func NewMatcher(ref *refdata.Data) *Matcher {
	return &Matcher{ref: ref}
}

// Keywords matches each keyword against the résumé, trying exact, then
// stem, then synonym. Order of results follows the input keyword order.
func (m *Matcher) Keywords(keywords []string, resumeText string) *Result {
	res := &Result{
		Matched: make([]string, 0, len(keywords)),
		Missing: make([]string, 0),
	}

	resume := newResumeIndex(resumeText)

	for _, keyword := range keywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		// A blank keyword can never match, but it still belongs to the
		// partition: everything not matched is missing.
		if kw == "" {
			res.Missing = append(res.Missing, keyword)
			continue
		}

		if resume.containsTerm(kw) {
			res.Matched = append(res.Matched, keyword)
			res.Details = append(res.Details, Detail{Keyword: keyword, Type: MatchExact})
			continue
		}

		// Stem tier applies to single words only; phrase stems are not
		// meaningful for a suffix stripper.
		if !strings.Contains(kw, " ") {
			if stem := textutil.StemWord(kw); resume.stems[stem] {
				res.Matched = append(res.Matched, keyword)
				res.Details = append(res.Details, Detail{Keyword: keyword, Type: MatchStem, MatchedAs: stem})
				continue
			}
		}

		if matchedAs, ok := m.matchSynonym(kw, resume); ok {
			res.Matched = append(res.Matched, keyword)
			res.Details = append(res.Details, Detail{Keyword: keyword, Type: MatchSynonym, MatchedAs: matchedAs})
			continue
		}

		res.Missing = append(res.Missing, keyword)
	}

	return res
}

// matchSynonym tests every synonym candidate for the keyword with the same
// exact-tier containment rules. First hit wins.
func (m *Matcher) matchSynonym(kw string, resume *resumeIndex) (string, bool) {
	for _, syn := range m.ref.SynonymsFor(kw) {
		if resume.containsTerm(syn) {
			return syn, true
		}
	}
	return "", false
}

// resumeIndex precomputes the views of the résumé the tiers need: the
// lowercased text, the token set, and the stem set.
type resumeIndex struct {
	lower  string
	tokens map[string]bool
	stems  map[string]bool
}

func newResumeIndex(resumeText string) *resumeIndex {
	idx := &resumeIndex{
		lower:  strings.ToLower(resumeText),
		tokens: make(map[string]bool),
		stems:  make(map[string]bool),
	}
	for _, tok := range textutil.Tokenize(resumeText) {
		idx.tokens[tok] = true
		idx.stems[textutil.StemWord(tok)] = true
	}
	return idx
}

// containsTerm applies the exact-tier containment rules: phrases match by
// substring, short words require a word boundary, and everything else
// matches by token membership or substring.
func (idx *resumeIndex) containsTerm(term string) bool {
	if strings.Contains(term, " ") {
		return strings.Contains(idx.lower, term)
	}
	if len(term) <= shortWordLen {
		return boundaryRe(term).MatchString(idx.lower)
	}
	return idx.tokens[term] || strings.Contains(idx.lower, term)
}

// Compiled boundary patterns for short words, shared across requests. The
// short-word vocabulary is tiny (keywords and synonyms of <= 3 characters),
// so the cache never grows meaningfully.
var (
	boundaryMu  sync.Mutex
	boundaryRes = map[string]*regexp.Regexp{}
)

func boundaryRe(term string) *regexp.Regexp {
	boundaryMu.Lock()
	defer boundaryMu.Unlock()
	re, ok := boundaryRes[term]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		boundaryRes[term] = re
	}
	return re
}
