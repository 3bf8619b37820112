// Package textutil provides the low-level text primitives the keyword
// engine is built on: tokenization, greedy phrase extraction, suffix
// stemming, and word counting. Everything here is a pure function.
package textutil

import (
	"bytes"
	"strings"
	"unicode"
)

// symbolRewrites maps technology names containing symbols to plain tokens
// before the splitter throws the symbols away. Applied in order.
var symbolRewrites = []struct{ from, to string }{
	{"c++", "cpp"},
	{"c#", "csharp"},
	{".net", "dotnet"},
	{"node.js", "nodejs"},
	{"react.js", "reactjs"},
	{"vue.js", "vuejs"},
	{"ci/cd", "cicd"},
}

// Tokenize lowercases text, rewrites symbol-bearing technology names, and
// splits on runs of non-alphanumeric characters (hyphens stay inside
// tokens). Tokens of length <= 1 are dropped; stray leading or trailing
// hyphens are trimmed.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	for _, rw := range symbolRewrites {
		lower = strings.ReplaceAll(lower, rw.from, rw.to)
	}

	raw := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})

	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.Trim(t, "-")
		if len(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ExtractPhrases scans text for known multi-word phrases, longest first.
// Each occurrence is appended to the result and its span blanked out before
// shorter phrases are searched, so a longer phrase always wins over a
// shorter phrase it contains and no span is counted twice. The remainder is
// the text with every matched span replaced by spaces, ready for word
// tokenization.
func ExtractPhrases(text string, phrasesLongestFirst []string) ([]string, string) {
	if text == "" {
		return nil, ""
	}

	buf := []byte(strings.ToLower(text))
	var found []string

	for _, phrase := range phrasesLongestFirst {
		if phrase == "" {
			continue
		}
		needle := []byte(phrase)
		for start := 0; ; {
			idx := bytes.Index(buf[start:], needle)
			if idx < 0 {
				break
			}
			at := start + idx
			found = append(found, phrase)
			for i := at; i < at+len(needle); i++ {
				buf[i] = ' '
			}
			start = at + len(needle)
		}
	}

	return found, string(buf)
}

// TokenizeWithPhrases extracts known phrases first, then tokenizes the
// residual text, returning phrases followed by word tokens.
func TokenizeWithPhrases(text string, phrasesLongestFirst []string) []string {
	phrases, remainder := ExtractPhrases(text, phrasesLongestFirst)
	return append(phrases, Tokenize(remainder)...)
}

// WordCount reports the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
