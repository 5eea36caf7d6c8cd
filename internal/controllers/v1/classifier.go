package v1

import (
	"github.com/Malrhis/Bills-handling-2/internal/categorize"
	"github.com/Malrhis/Bills-handling-2/internal/models"
	"gorm.io/gorm"
)

// minKeywordConfidence is the confidence a keyword match must reach so
// that the external fallback classifier is not consulted. Keyword
// matches score at least 76, so any hit counts.
const minKeywordConfidence = 76

// fallbackClassifier is consulted for descriptions the keywords cannot
// classify. It is nil unless an external model is configured.
var fallbackClassifier categorize.Classifier

// SetFallbackClassifier configures the external classifier used when
// keyword classification is not confident. Passing nil disables it.
func SetFallbackClassifier(classifier categorize.Classifier) {
	fallbackClassifier = classifier
}

// classifier builds the classifier for the current category set.
func classifier(db *gorm.DB) (categorize.Classifier, error) {
	categories, err := models.Categories(db)
	if err != nil {
		return nil, err
	}

	sets := make([]categorize.CategoryKeywords, 0, len(categories))
	for _, category := range categories {
		sets = append(sets, categorize.CategoryKeywords{
			Name:     category.Name,
			Keywords: category.KeywordList(),
		})
	}

	keyword := categorize.NewKeywordClassifier(sets)
	if fallbackClassifier == nil {
		return keyword, nil
	}

	return categorize.Fallback{
		Primary:       keyword,
		Secondary:     fallbackClassifier,
		MinConfidence: minKeywordConfidence,
	}, nil
}
