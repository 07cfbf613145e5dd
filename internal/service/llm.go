package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pageza/fitsync-pro/backend/internal/metrics"
)

// maxRawExcerpt bounds how much of a malformed response is kept for diagnosis
const maxRawExcerpt = 500

var (
	// ErrGeneration marks a transport or authentication failure talking to the model
	ErrGeneration = errors.New("model request failed")
	// ErrMalformedJSON marks a model response that is not a JSON object
	ErrMalformedJSON = errors.New("malformed JSON response")
)

// ParseError reports a model response that could not be decoded.
// Raw holds the beginning of the response text.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON Error: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedJSON, e.Err}
}

// JSONResult is a decoded model response together with the text it was decoded from
type JSONResult struct {
	Data map[string]interface{}
	Raw  string
}

// LLMService sends prompts to the text generator and decodes JSON responses
type LLMService struct {
	generator TextGenerator
	metrics   *metrics.Recorder
}

// NewLLMService creates a new LLMService instance
func NewLLMService(generator TextGenerator, recorder *metrics.Recorder) *LLMService {
	return &LLMService{
		generator: generator,
		metrics:   recorder,
	}
}

// ModelName returns the model used for generation
func (s *LLMService) ModelName() string {
	return s.generator.ModelName()
}

// GenerateJSON requests a JSON-formatted completion and decodes it into a map.
// No retry is attempted and the result is not validated against any schema.
func (s *LLMService) GenerateJSON(ctx context.Context, operation, prompt string) (*JSONResult, error) {
	model := s.generator.ModelName()
	log.Printf("[LLMService] Sending %s request to Gemini API (model: %s, prompt length: %d characters)", operation, model, len(prompt))

	start := time.Now()
	raw, err := s.generator.Generate(ctx, prompt, true)
	if err != nil {
		s.metrics.ObserveRequest(model, operation, metrics.OutcomeTransportError, 0, time.Since(start))
		log.Printf("[LLMService] API error during %s: %v", operation, err)
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	log.Printf("[LLMService] Response received for %s (%d characters)", operation, len(raw))

	data, err := DecodeJSONObject(raw)
	if err != nil {
		s.metrics.ObserveRequest(model, operation, metrics.OutcomeParseError, len(raw), time.Since(start))
		log.Printf("[LLMService] JSON parsing error during %s: %v; raw response: %s...", operation, err, Excerpt(raw))
		return nil, &ParseError{Raw: Excerpt(raw), Err: err}
	}

	s.metrics.ObserveRequest(model, operation, metrics.OutcomeSuccess, len(raw), time.Since(start))
	return &JSONResult{Data: data, Raw: raw}, nil
}

// GenerateText requests a plain-text completion
func (s *LLMService) GenerateText(ctx context.Context, operation, prompt string) (string, error) {
	model := s.generator.ModelName()
	log.Printf("[LLMService] Sending %s request to Gemini API (model: %s, prompt length: %d characters)", operation, model, len(prompt))

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt, false)
	if err != nil {
		s.metrics.ObserveRequest(model, operation, metrics.OutcomeTransportError, 0, time.Since(start))
		log.Printf("[LLMService] API error during %s: %v", operation, err)
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	s.metrics.ObserveRequest(model, operation, metrics.OutcomeSuccess, len(text), time.Since(start))
	return text, nil
}

// ListModels returns the models available to the configured key
func (s *LLMService) ListModels(ctx context.Context) ([]ModelInfo, error) {
	models, err := s.generator.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	return models, nil
}

// VerifyKey makes one small request to confirm the API key works
func (s *LLMService) VerifyKey(ctx context.Context) (string, error) {
	return s.GenerateText(ctx, "verify_key", "Say 'Hello, FitSync Pro!' in exactly 5 words.")
}

// DecodeJSONObject decodes raw as a JSON object. A surrounding markdown code fence is tolerated.
func DecodeJSONObject(raw string) (map[string]interface{}, error) {
	trimmed := stripCodeFence(raw)

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.New("response is null")
	}
	return data, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Excerpt returns at most the first maxRawExcerpt characters of s
func Excerpt(s string) string {
	if utf8.RuneCountInString(s) <= maxRawExcerpt {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRawExcerpt])
}

// MaskKey shows the first 20 and last 4 characters of an API key
func MaskKey(key string) string {
	if len(key) <= 24 {
		return strings.Repeat("*", len(key))
	}
	return key[:20] + "..." + key[len(key)-4:]
}
