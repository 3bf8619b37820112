package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRefdataOverrides_ValidDocument(t *testing.T) {
	doc := `{
		"stopwords": ["verylongword"],
		"tech_keywords": ["zig"],
		"action_verbs": ["orchestrate"],
		"known_phrases": ["quantum computing"],
		"skill_synonyms": {"zig": ["ziglang"]}
	}`

	assert.NoError(t, ValidateRefdataOverrides([]byte(doc)))
}

func TestValidateRefdataOverrides_EmptyObject(t *testing.T) {
	assert.NoError(t, ValidateRefdataOverrides([]byte(`{}`)))
}

func TestValidateRefdataOverrides_SingleWordPhrase(t *testing.T) {
	err := ValidateRefdataOverrides([]byte(`{"known_phrases": ["singleword"]}`))

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "known_phrases")
}

func TestValidateRefdataOverrides_UnknownField(t *testing.T) {
	err := ValidateRefdataOverrides([]byte(`{"stop_words": ["typo"]}`))

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateRefdataOverrides_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"stopwords not array", `{"stopwords": "the"}`},
		{"synonyms not object", `{"skill_synonyms": ["k8s"]}`},
		{"synonym variants not array", `{"skill_synonyms": {"kubernetes": "k8s"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ve *ValidationError
			assert.ErrorAs(t, ValidateRefdataOverrides([]byte(tt.doc)), &ve)
		})
	}
}

func TestValidateRefdataOverrides_MalformedJSON(t *testing.T) {
	err := ValidateRefdataOverrides([]byte(`{not json`))

	require.Error(t, err)
	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
