package content

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Generator produces one structured content document for a prompt. The
// enhancer depends on this rather than the GenAI SDK directly so tests can
// substitute a canned generator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenAIGenerator generates website copy using Google's Gemini API with a
// constrained JSON response schema.
type GenAIGenerator struct {
	client *genai.Client
	model  string
}

// NewGenAIGenerator creates a generator backed by the Gemini API.
func NewGenAIGenerator(ctx context.Context, apiKey, model string) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIGenerator{client: client, model: model}, nil
}

// Disabled returns a Generator that always fails, for deployments without a
// GenAI key. Paired with zero retries it sends every job straight to the
// local fallback.
func Disabled() Generator {
	return disabledGenerator{}
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrGeneratorUnavailable
}

// contentSchema constrains the model output to the content package shape.
// Schema-constrained JSON makes the response parseable without prompt
// gymnastics or fence stripping.
func contentSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}
	strList := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeArray, Description: desc, Items: &genai.Schema{Type: genai.TypeString}}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline":    str("hero headline, under 10 words"),
			"subheadline": str("supporting line under the headline"),
			"value_props": strList("3 to 5 short value propositions"),
			"services": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        str("service name"),
						"description": str("one-sentence description"),
					},
					Required: []string{"name", "description"},
				},
			},
			"about": str("about paragraph, 2 to 4 sentences"),
			"ctas": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"primary":   str("primary call to action"),
					"secondary": str("secondary call to action"),
					"urgent":    str("urgency call to action"),
				},
				Required: []string{"primary"},
			},
			"meta_description": str("SEO meta description under 155 characters"),
		},
		Required: []string{"headline", "subheadline", "value_props", "about", "ctas", "meta_description"},
	}
}

// Generate implements Generator.
func (g *GenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   contentSchema(),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
