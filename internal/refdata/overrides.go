package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-scan/schemas"
)

// Overrides extends or replaces entries in the built-in reference tables.
// Synonym entries replace the canonical's variant list wholesale; the list
// tables are additive.
type Overrides struct {
	Stopwords     []string            `json:"stopwords,omitempty"`
	TechKeywords  []string            `json:"tech_keywords,omitempty"`
	ActionVerbs   []string            `json:"action_verbs,omitempty"`
	KnownPhrases  []string            `json:"known_phrases,omitempty"`
	SkillSynonyms map[string][]string `json:"skill_synonyms,omitempty"`
}

// NewFromOverrides builds reference data from the built-in tables merged
// with an override file. The file is validated against the
// refdata_overrides JSON schema before any merging happens, so a bad file
// never produces a half-merged Data.
func NewFromOverrides(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	if err := schemas.ValidateRefdataOverrides(raw); err != nil {
		return nil, fmt.Errorf("invalid overrides file %s: %w", path, err)
	}

	var ov Overrides
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}

	d := New()
	d.applyOverrides(&ov)
	d.rebuildDerived()
	return d, nil
}

// applyOverrides merges an override set into the base tables. The caller is
// responsible for rebuilding derived views afterwards.
func (d *Data) applyOverrides(ov *Overrides) {
	for _, w := range ov.Stopwords {
		d.Stopwords[strings.ToLower(strings.TrimSpace(w))] = true
	}
	for _, w := range ov.TechKeywords {
		d.TechKeywords[strings.ToLower(strings.TrimSpace(w))] = true
	}
	for _, w := range ov.ActionVerbs {
		d.ActionVerbs[strings.ToLower(strings.TrimSpace(w))] = true
	}
	for _, p := range ov.KnownPhrases {
		d.KnownPhrases[strings.ToLower(strings.TrimSpace(p))] = true
	}
	for canonical, variants := range ov.SkillSynonyms {
		key := strings.ToLower(strings.TrimSpace(canonical))
		cleaned := make([]string, 0, len(variants))
		for _, v := range variants {
			cleaned = append(cleaned, strings.ToLower(strings.TrimSpace(v)))
		}
		d.SkillSynonyms[key] = cleaned
	}
}
