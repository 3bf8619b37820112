package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scan/schemas"
)

func TestNew_PopulatesAllTables(t *testing.T) {
	d := New()

	assert.NotEmpty(t, d.Stopwords)
	assert.NotEmpty(t, d.TechKeywords)
	assert.NotEmpty(t, d.ActionVerbs)
	assert.NotEmpty(t, d.KnownPhrases)
	assert.NotEmpty(t, d.SkillSynonyms)
	assert.Len(t, d.PhrasesLongestFirst, len(d.KnownPhrases))
}

func TestNew_PhrasesSortedLongestFirst(t *testing.T) {
	d := New()

	for i := 1; i < len(d.PhrasesLongestFirst); i++ {
		assert.GreaterOrEqual(t,
			len(d.PhrasesLongestFirst[i-1]), len(d.PhrasesLongestFirst[i]),
			"phrase %q must not be shorter than its successor %q",
			d.PhrasesLongestFirst[i-1], d.PhrasesLongestFirst[i])
	}
}

func TestNew_ReverseIndexDerivedFromForwardTable(t *testing.T) {
	d := New()

	// Every variant points back to every canonical that lists it.
	for canonical, variants := range d.SkillSynonyms {
		for _, variant := range variants {
			assert.Contains(t, d.SynonymIndex[variant], canonical,
				"reverse index must map %q back to %q", variant, canonical)
		}
	}

	// And nothing else: every index entry is backed by the forward table.
	for variant, canonicals := range d.SynonymIndex {
		for _, canonical := range canonicals {
			assert.Contains(t, d.SkillSynonyms[canonical], variant)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, b := New(), New()

	assert.Equal(t, a.PhrasesLongestFirst, b.PhrasesLongestFirst)
	assert.Equal(t, a.SynonymIndex, b.SynonymIndex)
}

func TestSynonymsFor_CanonicalTerm(t *testing.T) {
	d := New()

	syns := d.SynonymsFor("kubernetes")

	assert.Contains(t, syns, "gke")
	assert.Contains(t, syns, "k8s")
	assert.Contains(t, syns, "container orchestration")
	assert.NotContains(t, syns, "kubernetes", "a keyword is never its own synonym")
}

func TestSynonymsFor_VariantReachesCanonicalAndSiblings(t *testing.T) {
	d := New()

	// "gcp" is a variant of "cloud", so it must reach "cloud" and the
	// other cloud variants through the canonical hub.
	syns := d.SynonymsFor("gcp")

	assert.Contains(t, syns, "cloud")
	assert.Contains(t, syns, "cloud infrastructure")
	assert.NotContains(t, syns, "gcp")
}

func TestSynonymsFor_UnknownTerm(t *testing.T) {
	d := New()
	assert.Empty(t, d.SynonymsFor("underwater-basket-weaving"))
}

func TestNewFromOverrides_MergesTables(t *testing.T) {
	path := writeOverrides(t, `{
		"stopwords": ["verylongstopword"],
		"tech_keywords": ["zig"],
		"known_phrases": ["quantum computing"],
		"skill_synonyms": {"zig": ["ziglang"]}
	}`)

	d, err := NewFromOverrides(path)
	require.NoError(t, err)

	assert.True(t, d.Stopwords["verylongstopword"])
	assert.True(t, d.TechKeywords["zig"])
	assert.True(t, d.KnownPhrases["quantum computing"])
	assert.Contains(t, d.PhrasesLongestFirst, "quantum computing")
	assert.Contains(t, d.SynonymIndex["ziglang"], "zig")
}

func TestNewFromOverrides_ReplacesSynonymListWholesale(t *testing.T) {
	path := writeOverrides(t, `{"skill_synonyms": {"kubernetes": ["k8s"]}}`)

	d, err := NewFromOverrides(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"k8s"}, d.SkillSynonyms["kubernetes"])
	assert.NotContains(t, d.SynonymIndex["gke"], "kubernetes",
		"replaced variants must leave the reverse index")
}

func TestNewFromOverrides_RejectsSchemaViolations(t *testing.T) {
	// known_phrases entries must be multi-word.
	path := writeOverrides(t, `{"known_phrases": ["singleword"]}`)

	_, err := NewFromOverrides(path)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewFromOverrides_RejectsUnknownFields(t *testing.T) {
	path := writeOverrides(t, `{"stop_words": ["typo-field-name"]}`)

	_, err := NewFromOverrides(path)
	assert.Error(t, err)
}

func TestNewFromOverrides_MissingFile(t *testing.T) {
	_, err := NewFromOverrides(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
