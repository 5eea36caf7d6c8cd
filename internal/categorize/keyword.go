package categorize

import (
	"context"
	"strings"

	"github.com/ryanuber/go-glob"
)

// fuzzyThreshold is the minimum similarity score a keyword must reach
// to count as a match. Taken over from the previous generation of this
// tool, which used the same cutoff.
const fuzzyThreshold = 75

// CategoryKeywords is one category with its match keywords. Keywords
// may contain "*" wildcards, e.g. "grab*" to match ride codes.
type CategoryKeywords struct {
	Name     string
	Keywords []string
}

// KeywordClassifier deterministically classifies descriptions by
// scoring every description word against every category keyword.
type KeywordClassifier struct {
	categories []CategoryKeywords
}

// NewKeywordClassifier returns a classifier for the given categories.
func NewKeywordClassifier(categories []CategoryKeywords) *KeywordClassifier {
	return &KeywordClassifier{categories: categories}
}

// Classify scores the description against all category keywords and
// returns the best match. It never returns an error; descriptions
// without any keyword hit get the default category with confidence 0.
func (k *KeywordClassifier) Classify(_ context.Context, description string) (Match, error) {
	best := Match{Category: DefaultCategory, Confidence: 0}

	words := Words(Normalize(description))
	if len(words) == 0 {
		return best, nil
	}

	for _, word := range words {
		for _, category := range k.categories {
			for _, keyword := range category.Keywords {
				keyword = strings.ToLower(strings.TrimSpace(keyword))
				if keyword == "" {
					continue
				}

				score := keywordScore(word, keyword)
				if score > best.Confidence && score > fuzzyThreshold {
					best = Match{Category: category.Name, Confidence: score}
				}
			}
		}
	}

	return best, nil
}

// keywordScore scores a single word against a single keyword.
// Wildcard keywords and exact matches score 100, everything else is
// scored by string similarity.
func keywordScore(word, keyword string) int {
	if strings.Contains(keyword, "*") {
		if glob.Glob(keyword, word) {
			return 100
		}
		return 0
	}

	if word == keyword {
		return 100
	}

	return similarity(word, keyword)
}

// similarity returns a 0-100 score based on the edit distance between
// the two strings, 100 meaning equal.
func similarity(a, b string) int {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 100
	}

	return (longest - editDistance(a, b)) * 100 / longest
}

// editDistance is the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)

	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			current[j] = min(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}

		previous, current = current, previous
	}

	return previous[len(rb)]
}
