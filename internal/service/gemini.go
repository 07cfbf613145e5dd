package service

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// jsonMIMEType asks Gemini to constrain its output to JSON
const jsonMIMEType = "application/json"

// ModelInfo describes a model available to the API key
type ModelInfo struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name,omitempty"`
	Description      string   `json:"description,omitempty"`
	SupportedActions []string `json:"supported_actions,omitempty"`
}

// GeminiClient implements TextGenerator on top of the Google GenAI SDK
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string

	once    sync.Once
	client  *genai.Client
	initErr error
}

// Ensure GeminiClient implements TextGenerator
var _ TextGenerator = (*GeminiClient)(nil)

// GeminiOption customizes a GeminiClient
type GeminiOption func(*GeminiClient)

// WithBaseURL points the client at a different API host
func WithBaseURL(url string) GeminiOption {
	return func(g *GeminiClient) {
		g.baseURL = url
	}
}

// NewGeminiClient stores the configuration; the SDK client is created on first use
func NewGeminiClient(apiKey, model string, opts ...GeminiOption) *GeminiClient {
	g := &GeminiClient{
		apiKey: apiKey,
		model:  model,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if g.baseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
		}
		g.client, g.initErr = genai.NewClient(ctx, cc)
	})
	if g.initErr != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", g.initErr)
	}
	return g.client, nil
}

// ModelName returns the model used for generation
func (g *GeminiClient) ModelName() string {
	return g.model
}

// Generate sends a single-turn prompt and returns the response text.
// With jsonOutput set, the response MIME type is application/json.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	client, err := g.sdk(ctx)
	if err != nil {
		return "", err
	}

	var cfg *genai.GenerateContentConfig
	if jsonOutput {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: jsonMIMEType}
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	return result.Text(), nil
}

// ListModels enumerates every model visible to the API key
func (g *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	client, err := g.sdk(ctx)
	if err != nil {
		return nil, err
	}

	var models []ModelInfo
	for m, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		models = append(models, ModelInfo{
			Name:             m.Name,
			DisplayName:      m.DisplayName,
			Description:      m.Description,
			SupportedActions: m.SupportedActions,
		})
	}
	return models, nil
}
