package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	tokens := Tokenize("Senior Platform Engineer, Berlin!")
	assert.Equal(t, []string{"senior", "platform", "engineer", "berlin"}, tokens)
}

func TestTokenize_SymbolRewrites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"cpp", "C++ developer", []string{"cpp", "developer"}},
		{"csharp", "C# and .NET", []string{"csharp", "and", "dotnet"}},
		{"nodejs", "Node.js backend", []string{"nodejs", "backend"}},
		{"reactjs", "React.js frontend", []string{"reactjs", "frontend"}},
		{"vuejs", "Vue.js apps", []string{"vuejs", "apps"}},
		{"cicd", "CI/CD pipelines", []string{"cicd", "pipelines"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_DropsShortTokens(t *testing.T) {
	tokens := Tokenize("a b go is ok")
	assert.Equal(t, []string{"go", "is", "ok"}, tokens)
}

func TestTokenize_TrimsHyphens(t *testing.T) {
	tokens := Tokenize("well-tested -leading trailing-")
	assert.Equal(t, []string{"well-tested", "leading", "trailing"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, Tokenize(""))
}

func TestExtractPhrases_LongestWins(t *testing.T) {
	phrases := []string{"data pipeline", "data"}

	found, remainder := ExtractPhrases("data pipeline engineer", phrases)

	require.Equal(t, []string{"data pipeline"}, found)
	// The matched span is blanked in place: offsets preserved, only the
	// residual word survives tokenization.
	assert.Len(t, remainder, len("data pipeline engineer"))
	assert.Equal(t, "engineer", strings.TrimSpace(remainder))
}

func TestExtractPhrases_NoDoubleCounting(t *testing.T) {
	phrases := []string{"machine learning"}

	found, _ := ExtractPhrases("machine learning and machine learning ops", phrases)

	assert.Equal(t, []string{"machine learning", "machine learning"}, found)
}

func TestExtractPhrases_Empty(t *testing.T) {
	found, remainder := ExtractPhrases("", []string{"machine learning"})
	assert.Nil(t, found)
	assert.Equal(t, "", remainder)
}

func TestTokenizeWithPhrases_PhrasesFirst(t *testing.T) {
	phrases := []string{"machine learning"}

	tokens := TokenizeWithPhrases("Machine Learning with Python", phrases)

	assert.Equal(t, []string{"machine learning", "with", "python"}, tokens)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 4, WordCount("four words in here"))
}
