package categorize

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Fallback combines two classifiers. The primary is always consulted
// first; only when its confidence is below MinConfidence is the
// secondary asked. Errors from the secondary degrade to the primary
// result, so an unreachable external model never fails a paste.
type Fallback struct {
	Primary       Classifier
	Secondary     Classifier
	MinConfidence int
}

// Classify implements the Classifier interface.
func (f Fallback) Classify(ctx context.Context, description string) (Match, error) {
	match, err := f.Primary.Classify(ctx, description)
	if err != nil {
		return match, err
	}

	if match.Confidence >= f.MinConfidence || f.Secondary == nil {
		return match, nil
	}

	fallback, err := f.Secondary.Classify(ctx, description)
	if err != nil {
		log.Warn().Err(err).Str("description", description).Msg("fallback classification failed")
		return match, nil
	}

	if fallback.Category == DefaultCategory && match.Confidence > 0 {
		return match, nil
	}

	return fallback, nil
}
