// Package refdata holds the static reference tables the keyword engine is
// built on: stopwords, technology keywords, action verbs, known multi-word
// phrases, and the skill synonym table with its derived reverse index.
//
// A Data value is built once (New or NewFromOverrides) and treated as
// read-only afterwards. It is safe to share across concurrent callers.
package refdata

import (
	"sort"
	"strings"
)

// Data bundles every reference table the engine needs. All fields are
// populated at construction and never mutated afterwards.
type Data struct {
	// Stopwords are excluded from keyword extraction entirely.
	Stopwords map[string]bool

	// TechKeywords are technology terms that always qualify as keywords and
	// additionally land in the Technologies bucket.
	TechKeywords map[string]bool

	// ActionVerbs are soft-skill/delivery verbs scanned across the whole JD.
	ActionVerbs map[string]bool

	// KnownPhrases are curated multi-word terms extracted before single-word
	// tokenization.
	KnownPhrases map[string]bool

	// PhrasesLongestFirst is KnownPhrases sorted by descending length so a
	// longer phrase always wins over a shorter phrase it contains.
	PhrasesLongestFirst []string

	// SkillSynonyms maps a canonical term to its accepted variants.
	SkillSynonyms map[string][]string

	// SynonymIndex is the derived reverse view: lowercased variant to the
	// canonical terms that list it. Rebuilt whenever the forward table
	// changes, never edited independently.
	SynonymIndex map[string][]string
}

// New builds the reference data from the built-in tables.
func New() *Data {
	d := &Data{
		Stopwords:     cloneSet(defaultStopwords),
		TechKeywords:  cloneSet(defaultTechKeywords),
		ActionVerbs:   cloneSet(defaultActionVerbs),
		KnownPhrases:  cloneSet(defaultKnownPhrases),
		SkillSynonyms: cloneSynonyms(defaultSkillSynonyms),
	}
	d.rebuildDerived()
	return d
}

// rebuildDerived recomputes every view that is a pure function of the base
// tables: the longest-first phrase ordering and the reverse synonym index.
func (d *Data) rebuildDerived() {
	phrases := make([]string, 0, len(d.KnownPhrases))
	for p := range d.KnownPhrases {
		phrases = append(phrases, p)
	}
	// Longest first; equal lengths fall back to lexicographic order so the
	// result is deterministic regardless of map iteration.
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	d.PhrasesLongestFirst = phrases

	index := make(map[string][]string)
	canonicals := make([]string, 0, len(d.SkillSynonyms))
	for canonical := range d.SkillSynonyms {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)
	for _, canonical := range canonicals {
		for _, variant := range d.SkillSynonyms[canonical] {
			key := strings.ToLower(variant)
			index[key] = append(index[key], canonical)
		}
	}
	d.SynonymIndex = index
}

// SynonymsFor gathers every candidate synonym for a keyword: the keyword's
// own variant list when it is a canonical term, plus — through the reverse
// index — each canonical that lists the keyword as a variant, together with
// that canonical's other variants. The keyword itself is never included.
func (d *Data) SynonymsFor(keyword string) []string {
	lower := strings.ToLower(keyword)
	var out []string
	seen := map[string]bool{lower: true}

	add := func(term string) {
		t := strings.ToLower(term)
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	for _, variant := range d.SkillSynonyms[lower] {
		add(variant)
	}
	for _, canonical := range d.SynonymIndex[lower] {
		add(canonical)
		for _, sibling := range d.SkillSynonyms[canonical] {
			add(sibling)
		}
	}
	return out
}

func cloneSet(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k := range src {
		dst[k] = true
	}
	return dst
}

func cloneSynonyms(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	return dst
}
