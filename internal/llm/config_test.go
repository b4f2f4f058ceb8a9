package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.Models[TierLite])
	assert.NotEmpty(t, cfg.Models[TierStandard])
	assert.NotEmpty(t, cfg.Models[TierAdvanced])
}

func TestGetModelFallbackChain(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "standard-model",
			TierLite:     "lite-model",
		},
	}

	assert.Equal(t, "standard-model", cfg.GetModel(TierStandard))
	// Missing advanced falls through to standard.
	assert.Equal(t, "standard-model", cfg.GetModel(TierAdvanced))

	cfg.Models = map[ModelTier]string{TierLite: "lite-model"}
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	cfg.Models = map[ModelTier]string{}
	assert.Empty(t, cfg.GetModel(TierAdvanced))
}

func TestOperationProfiles(t *testing.T) {
	// Cheap operations stay on cheap tiers; content generation uses the
	// advanced tier with longer timeouts.
	assert.Equal(t, TierLite, RecommendProfile.Tier)
	assert.Equal(t, TierStandard, AnalyzeProfile.Tier)
	assert.Equal(t, TierAdvanced, RewriteProfile.Tier)
	assert.Equal(t, TierAdvanced, GenerateProfile.Tier)

	for _, p := range []Profile{AnalyzeProfile, RecommendProfile, RewriteProfile, OptimizeProfile, GenerateProfile} {
		assert.Positive(t, p.MaxTokens)
		assert.Positive(t, p.Timeout)
	}
}
