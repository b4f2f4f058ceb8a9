package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers. Complete issues exactly one
// completion call (plus at most one internal retry on transport failure) and
// returns the raw response text.
type Client interface {
	// Complete generates a completion for the prompt using the given profile.
	Complete(ctx context.Context, prompt string, profile Profile) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// UnavailableError indicates the completion service could not be reached or
// timed out, even after the single retry. A response that arrived but violated
// the output contract is a parse failure, not an UnavailableError.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates a completion under the profile's timeout. On timeout or
// transient transport failure it retries once with unchanged parameters before
// returning an UnavailableError. It never retries a response that arrived.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, profile Profile) (string, error) {
	modelName := c.config.GetModel(profile.Tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", profile.Tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(profile.Temperature)
	if profile.MaxTokens > 0 {
		model.SetMaxOutputTokens(profile.MaxTokens)
	}

	return completeWithRetry(ctx, modelName, func() (string, error) {
		return c.generateOnce(ctx, model, prompt, profile)
	})
}

// completeWithRetry runs call and retries exactly once when no usable response
// arrived. A response that was delivered, however malformed, surfaces as a
// non-transport error and never burns the retry.
func completeWithRetry(ctx context.Context, modelName string, call func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		text, err := call()
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isTransportError(err) {
			return "", err
		}
		if ctx.Err() != nil {
			break
		}
	}

	return "", &UnavailableError{
		Message: fmt.Sprintf("model %s did not respond", modelName),
		Cause:   lastErr,
	}
}

// generateOnce performs a single bounded generation call.
func (c *GeminiClient) generateOnce(ctx context.Context, model *genai.GenerativeModel, prompt string, profile Profile) (string, error) {
	callCtx := ctx
	if profile.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, profile.Timeout)
		defer cancel()
	}

	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", &transportError{cause: err}
	}

	return extractTextFromResponse(resp)
}

// transportError marks failures where no usable response arrived.
type transportError struct {
	cause error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.cause)
}

func (e *transportError) Unwrap() error {
	return e.cause
}

func isTransportError(err error) bool {
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
