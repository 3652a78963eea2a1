// Package llm provides cloud LLM provider implementations and a
// configuration-driven factory.
package llm

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/interfaces"
)

// NewLLMService creates the LLM service implementation selected by
// llm.default_provider. A missing API key for the selected provider
// wraps models.ErrConfigurationMissing; startup treats that as fatal.
func NewLLMService(cfg *common.Config, logger arbor.ILogger) (interfaces.LLMService, error) {
	provider := cfg.LLM.DefaultProvider

	logger.Info().
		Str("provider", string(provider)).
		Msg("Initializing LLM service")

	switch provider {
	case common.LLMProviderClaude:
		return NewClaudeService(&cfg.Claude, logger)

	case common.LLMProviderGemini:
		return NewGeminiService(&cfg.Gemini, logger)

	default:
		return nil, fmt.Errorf("unsupported LLM provider '%s': must be '%s' or '%s'",
			provider, common.LLMProviderClaude, common.LLMProviderGemini)
	}
}
