package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/interfaces"
	"github.com/ternarybob/confero/internal/models"
)

// Service generates narrative comparisons through an LLM provider.
type Service struct {
	llm    interfaces.LLMService
	logger arbor.ILogger
}

// NewService creates a narrative service on the given LLM provider.
func NewService(llm interfaces.LLMService) *Service {
	return &Service{
		llm:    llm,
		logger: common.GetLogger(),
	}
}

// Generate produces the analyst narrative for a comparison. Provider
// failures and empty responses wrap models.ErrNarrativeUnavailable;
// the caller renders the data sections regardless.
func (s *Service) Generate(ctx context.Context, c *models.Comparison) (string, error) {
	prompt := BuildPrompt(c)

	s.logger.Debug().
		Str("run_id", c.RunID).
		Str("left", c.Left.Symbol).
		Str("right", c.Right.Symbol).
		Msg("Requesting narrative")

	response, err := s.llm.Chat(ctx, []interfaces.Message{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("run_id", c.RunID).
			Msg("Narrative generation failed")
		return "", fmt.Errorf("%w: %v", models.ErrNarrativeUnavailable, err)
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return "", fmt.Errorf("%w: provider returned empty response", models.ErrNarrativeUnavailable)
	}
	return response, nil
}
