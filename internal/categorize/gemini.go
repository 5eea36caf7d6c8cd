package categorize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClassifier asks a Gemini model for the category of a
// description. The model is constrained to the configured label set;
// answers outside of it fall back to the default category.
type GeminiClassifier struct {
	client *genai.Client
	model  string
	labels []string
}

// NewGeminiClassifier creates a classifier backed by the Gemini API.
func NewGeminiClassifier(ctx context.Context, apiKey, model string, labels []string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiClassifier{
		client: client,
		model:  model,
		labels: labels,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiClassifier) Close() error {
	return g.client.Close()
}

// Model returns the name of the configured model.
func (g *GeminiClassifier) Model() string {
	return g.model
}

// Classify sends the description to the model and maps the answer onto
// the label set.
func (g *GeminiClassifier) Classify(ctx context.Context, description string) (Match, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0)

	prompt := fmt.Sprintf(
		"Classify this credit card statement line into exactly one of the following spending categories: %s.\n"+
			"Answer with the category name only.\n\nStatement line: %s",
		strings.Join(g.labels, ", "), description)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Match{Category: DefaultCategory}, fmt.Errorf("gemini classification failed: %w", err)
	}

	answer := responseText(resp)

	for _, label := range g.labels {
		if strings.EqualFold(label, answer) {
			return Match{Category: strings.ToLower(label), Confidence: 100}, nil
		}
	}

	return Match{Category: DefaultCategory, Confidence: 0}, nil
}

// responseText extracts the text of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return strings.TrimSpace(b.String())
}
