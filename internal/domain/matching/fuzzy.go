package matching

import (
	"strings"

	"github.com/agext/levenshtein"
)

// minSimilarity is the word-window acceptance bar. The source system used a
// fuzzy threshold of 0.4 where 0 is a perfect match; 1-0.4 lands here.
const minSimilarity = 0.6

// FuzzyContains reports whether the keyword occurs in the text, tolerating
// small edits ("reactjs" still hits "react"). Both inputs are normalized
// first.
func FuzzyContains(text, keyword string) bool {
	return fuzzyContainsNormalized(Normalize(text), Normalize(keyword))
}

// fuzzyContainsNormalized expects pre-normalized inputs. A plain substring
// hit short-circuits; otherwise every window of adjacent words spanning the
// keyword's word count is compared by Levenshtein similarity.
func fuzzyContainsNormalized(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	if strings.Contains(text, keyword) {
		return true
	}

	words := strings.Fields(text)
	span := len(strings.Fields(keyword))
	if span == 0 || len(words) < span {
		return false
	}
	for i := 0; i+span <= len(words); i++ {
		window := strings.Join(words[i:i+span], " ")
		if levenshtein.Similarity(window, keyword, nil) >= minSimilarity {
			return true
		}
	}
	return false
}
