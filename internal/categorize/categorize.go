// Package categorize assigns spending categories to expense descriptions.
//
// The keyword classifier is deterministic and backed by the category
// store. An external model can be layered on top as a fallback for
// descriptions the keywords do not cover.
package categorize

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultCategory is assigned when no classifier produces a match.
const DefaultCategory = "others"

// Match is the result of classifying a description.
type Match struct {
	Category   string `json:"category" example:"groceries"` // The assigned category
	Confidence int    `json:"confidence" example:"86"`      // Match confidence from 0 to 100
}

// Classifier assigns a category to an expense description.
type Classifier interface {
	Classify(ctx context.Context, description string) (Match, error)
}

var (
	standaloneHyphens = regexp.MustCompile(`\s+-\s+`)
	specialCharacters = regexp.MustCompile(`[^a-z0-9\s\-]`)
	wordSeparators    = regexp.MustCompile(`[\s\-]+`)
)

// accentFold decomposes characters and drops combining marks, so that
// "café" normalizes to "cafe".
var accentFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize cleans an expense description for keyword matching: fold
// accents, lowercase, drop special characters while keeping in-word
// hyphens, and collapse whitespace.
func Normalize(description string) string {
	folded, _, err := transform.String(accentFold, description)
	if err != nil {
		folded = description
	}

	s := strings.ToLower(folded)
	s = standaloneHyphens.ReplaceAllString(s, " ")
	s = specialCharacters.ReplaceAllString(s, " ")

	return strings.Join(strings.Fields(s), " ")
}

// Words splits a normalized description into the words to match
// keywords against. In-word hyphens count as separators here.
func Words(normalized string) []string {
	var words []string
	for _, w := range wordSeparators.Split(normalized, -1) {
		if w != "" {
			words = append(words, w)
		}
	}

	return words
}
