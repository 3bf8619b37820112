package textutil

import "strings"

// stemSuffixes is ordered longest first; the first qualifying suffix wins.
var stemSuffixes = []string{
	"ational", "tional", "ization", "ousness", "iveness", "fulness",
	"ation", "ness", "ment", "able", "ible", "ance", "ence", "ings",
	"ing", "ful", "ous", "ive", "ity", "ies", "ion",
	"ed", "er", "ly", "s",
}

// StemWord maps an inflected word to a normalized stem by stripping the
// first suffix that leaves at least 3 characters behind. Words where no
// suffix qualifies come back lowercased and otherwise unchanged. This is a
// deliberately simple suffix stripper, not a dictionary lemmatizer: the only
// guarantee is that the same input always produces the same stem.
func StemWord(word string) string {
	lower := strings.ToLower(word)
	for _, suffix := range stemSuffixes {
		if !strings.HasSuffix(lower, suffix) {
			continue
		}
		stem := lower[:len(lower)-len(suffix)]
		if len(stem) >= 3 && len(lower) >= len(suffix)+2 {
			return stem
		}
	}
	return lower
}
