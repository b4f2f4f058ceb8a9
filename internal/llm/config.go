// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between model tiers and future multi-provider support.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: analysis, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: rewriting, optimization, generation
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// Profile selects the model tier and generation parameters for one completion call.
// Each pipeline operation carries its own profile so timeouts and temperature stay
// an explicit per-operation policy rather than scattered constants.
type Profile struct {
	Tier        ModelTier
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

// Operation profiles. Timeouts are operation-class dependent: multi-section
// rewrites and generation get the long timeout.
var (
	// AnalyzeProfile scores portfolio content against the rubric dimensions.
	AnalyzeProfile = Profile{Tier: TierStandard, Temperature: 0.2, MaxTokens: 2048, Timeout: 30 * time.Second}
	// RecommendProfile suggests template/theme/section ordering.
	RecommendProfile = Profile{Tier: TierLite, Temperature: 0.2, MaxTokens: 1024, Timeout: 20 * time.Second}
	// RewriteProfile rewrites every section in a requested tone.
	RewriteProfile = Profile{Tier: TierAdvanced, Temperature: 0.4, MaxTokens: 4096, Timeout: 60 * time.Second}
	// OptimizeProfile tailors sections toward a job description.
	OptimizeProfile = Profile{Tier: TierAdvanced, Temperature: 0.3, MaxTokens: 4096, Timeout: 45 * time.Second}
	// GenerateProfile extracts a full draft from resume text.
	GenerateProfile = Profile{Tier: TierAdvanced, Temperature: 0.3, MaxTokens: 4096, Timeout: 60 * time.Second}
)
