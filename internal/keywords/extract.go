// Package keywords turns a job description into a prioritized, deduplicated
// keyword set. The pipeline is strictly ordered so earlier stages claim
// higher priority: a keyword's first assignment wins and is never
// downgraded by a later stage.
package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scan/internal/jdparse"
	"github.com/jonathan/ats-scan/internal/refdata"
	"github.com/jonathan/ats-scan/internal/textutil"
)

// Priority is the JD-section-derived importance tier of a keyword, ordered
// title > required > responsibilities > nice-to-have > general.
type Priority string

const (
	PriorityTitle            Priority = "title"
	PriorityRequired         Priority = "required"
	PriorityResponsibilities Priority = "responsibilities"
	PriorityNiceToHave       Priority = "nice_to_have"
	PriorityGeneral          Priority = "general"
)

// Rank returns a numeric ordering for a priority, higher is more important.
func (p Priority) Rank() int {
	switch p {
	case PriorityTitle:
		return 5
	case PriorityRequired:
		return 4
	case PriorityResponsibilities:
		return 3
	case PriorityNiceToHave:
		return 2
	default:
		return 1
	}
}

// ExtractedKeywords is the immutable result of keyword extraction.
type ExtractedKeywords struct {
	// All is the deduplicated keyword list in extraction order, capped at
	// the requested count.
	All []string `json:"all"`

	FromTitle      []string `json:"from_title,omitempty"`
	FromRequired   []string `json:"from_required,omitempty"`
	FromNiceToHave []string `json:"from_nice_to_have,omitempty"`
	Technologies   []string `json:"technologies,omitempty"`
	ActionVerbs    []string `json:"action_verbs,omitempty"`

	// Priorities has an entry for every keyword in All.
	Priorities map[string]Priority `json:"priorities"`

	// Frequency is the whole-JD term frequency over phrases and tokens.
	Frequency map[string]int `json:"frequency"`

	// JobTitle is the title line the extractor keyed the title stage on,
	// empty when none was found. Kept off the wire; the report and the
	// extract response carry the title at the top level.
	JobTitle string `json:"-"`
}

// Extraction limits for the dynamic keyword count.
const (
	baseKeywordCount = 15
	minKeywordCount  = 10
	maxKeywordCount  = 40
	wordsPerSlot     = 50
	maxSectionBonus  = 5
)

// DefaultKeywordCount is used when a caller passes a non-positive count.
const DefaultKeywordCount = 20

// Extractor runs the keyword pipeline against shared reference data.
type Extractor struct {
	ref *refdata.Data
}

// NewExtractor returns an Extractor backed by the given reference data.
func NewExtractor(ref *refdata.Data) *Extractor {
	return &Extractor{ref: ref}
}

// DynamicCount sizes the keyword budget to the JD: longer and more
// structured JDs earn more slots, clamped to [10, 40].
func (e *Extractor) DynamicCount(jd string) int {
	sections := 0
	for _, s := range jdparse.ParseSections(jd) {
		if s.Type != jdparse.SectionUnknown {
			sections++
		}
	}
	if sections > maxSectionBonus {
		sections = maxSectionBonus
	}

	count := baseKeywordCount + textutil.WordCount(jd)/wordsPerSlot + sections
	if count < minKeywordCount {
		count = minKeywordCount
	}
	if count > maxKeywordCount {
		count = maxKeywordCount
	}
	return count
}

// Extract runs the full pipeline: title keywords first, then required,
// responsibilities, and nice-to-have sections, then a whole-JD technology
// and action-verb scan, and finally a frequency-ordered fill of any
// remaining slots.
func (e *Extractor) Extract(jd string, count int) *ExtractedKeywords {
	if count <= 0 {
		count = DefaultKeywordCount
	}

	c := newCollector(e.ref, count)

	// Whole-JD term frequency, also reused for the fill stage.
	jdTokens := textutil.TokenizeWithPhrases(jd, e.ref.PhrasesLongestFirst)
	frequency := make(map[string]int, len(jdTokens))
	var encounterOrder []string
	for _, tok := range jdTokens {
		if frequency[tok] == 0 {
			encounterOrder = append(encounterOrder, tok)
		}
		frequency[tok]++
	}

	sections := jdparse.ParseSections(jd)

	jobTitle := ""
	if title, ok := jdparse.ExtractJobTitle(jd); ok {
		jobTitle = title
		for _, tok := range textutil.TokenizeWithPhrases(title, e.ref.PhrasesLongestFirst) {
			c.add(tok, PriorityTitle, bucketTitle)
		}
	}

	e.collectSections(c, sections, jdparse.SectionRequired, PriorityRequired, bucketRequired)
	// Responsibilities feed the same bucket as requirements, one tier lower.
	e.collectSections(c, sections, jdparse.SectionResponsibilities, PriorityResponsibilities, bucketRequired)
	e.collectSections(c, sections, jdparse.SectionNiceToHave, PriorityNiceToHave, bucketNiceToHave)

	// Whole-JD scan: technologies and action verbs count wherever they
	// appear, at general priority.
	for _, tok := range jdTokens {
		if e.ref.TechKeywords[tok] {
			c.add(tok, PriorityGeneral, bucketTech)
		} else if e.ref.ActionVerbs[tok] {
			c.add(tok, PriorityGeneral, bucketVerbs)
		}
	}

	// Frequency fill: highest-frequency unseen terms take the remaining
	// slots, ties broken by first encounter.
	fill := make([]string, len(encounterOrder))
	copy(fill, encounterOrder)
	sort.SliceStable(fill, func(i, j int) bool {
		return frequency[fill[i]] > frequency[fill[j]]
	})
	for _, tok := range fill {
		if c.full() {
			break
		}
		c.add(tok, PriorityGeneral, bucketNone)
	}

	return &ExtractedKeywords{
		All:            c.all,
		FromTitle:      c.fromTitle,
		FromRequired:   c.fromRequired,
		FromNiceToHave: c.fromNiceToHave,
		Technologies:   c.technologies,
		ActionVerbs:    c.actionVerbs,
		Priorities:     c.priorities,
		Frequency:      frequency,
		JobTitle:       jobTitle,
	}
}

func (e *Extractor) collectSections(c *collector, sections []jdparse.Section, sectionType jdparse.SectionType, priority Priority, bucket bucketKind) {
	for _, s := range sections {
		if s.Type != sectionType {
			continue
		}
		for _, tok := range textutil.TokenizeWithPhrases(s.Content, e.ref.PhrasesLongestFirst) {
			if e.ref.TechKeywords[tok] {
				c.add(tok, priority, bucket|bucketTech)
			} else {
				c.add(tok, priority, bucket)
			}
		}
	}
}

// bucketKind tags which output buckets a keyword lands in. A keyword can
// carry several tags at once (a tech keyword in a required section sits in
// both Technologies and FromRequired), which keeps the buckets from
// diverging.
type bucketKind uint8

const bucketNone bucketKind = 0

const (
	bucketTitle bucketKind = 1 << iota
	bucketRequired
	bucketNiceToHave
	bucketTech
	bucketVerbs
)

type collector struct {
	ref   *refdata.Data
	limit int
	seen  map[string]bool
	all   []string

	fromTitle      []string
	fromRequired   []string
	fromNiceToHave []string
	technologies   []string
	actionVerbs    []string
	priorities     map[string]Priority
}

func newCollector(ref *refdata.Data, limit int) *collector {
	return &collector{
		ref:        ref,
		limit:      limit,
		seen:       make(map[string]bool),
		priorities: make(map[string]Priority),
	}
}

func (c *collector) full() bool {
	return len(c.all) >= c.limit
}

// add admits a candidate keyword unless it is a stopword, a too-short
// single word, already seen, or the keyword budget is spent. First
// admission fixes the keyword's priority for good.
func (c *collector) add(candidate string, priority Priority, buckets bucketKind) {
	kw := strings.ToLower(strings.TrimSpace(candidate))
	if kw == "" || c.seen[kw] || c.full() {
		return
	}
	if c.ref.Stopwords[kw] {
		return
	}
	// Single words shorter than 3 characters are noise; multi-word phrases
	// are exempt from the length floor.
	if !strings.Contains(kw, " ") && len(kw) <= 2 {
		return
	}

	c.seen[kw] = true
	c.all = append(c.all, kw)
	c.priorities[kw] = priority

	if buckets&bucketTitle != 0 {
		c.fromTitle = append(c.fromTitle, kw)
	}
	if buckets&bucketRequired != 0 {
		c.fromRequired = append(c.fromRequired, kw)
	}
	if buckets&bucketNiceToHave != 0 {
		c.fromNiceToHave = append(c.fromNiceToHave, kw)
	}
	if buckets&bucketTech != 0 {
		c.technologies = append(c.technologies, kw)
	}
	if buckets&bucketVerbs != 0 {
		c.actionVerbs = append(c.actionVerbs, kw)
	}
}
