package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/confero/internal/interfaces"
	"github.com/ternarybob/confero/internal/models"
)

func newComparison(leftName, rightName string) *models.Comparison {
	c := &models.Comparison{
		Left:  models.StockRecord{Symbol: "AAPL"},
		Right: models.StockRecord{Symbol: "MSFT"},
	}
	c.Left.Info.Name = models.StringPtr(leftName)
	c.Right.Info.Name = models.StringPtr(rightName)
	return c
}

func TestBuildPrompt(t *testing.T) {
	c := newComparison("Apple Inc.", "Microsoft Corporation")

	prompt := BuildPrompt(c)

	assert.Contains(t, prompt, "Compare AAPL (Apple Inc.) and MSFT (Microsoft Corporation).")
	assert.Contains(t, prompt, "investment recommendation")
	assert.Contains(t, prompt, "professional financial analyst report")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	c := newComparison("Apple Inc.", "Microsoft Corporation")
	assert.Equal(t, BuildPrompt(c), BuildPrompt(c))
}

func TestBuildPrompt_NameFallsBackToSymbol(t *testing.T) {
	c := &models.Comparison{
		Left:  models.StockRecord{Symbol: "ZZZZ"},
		Right: models.StockRecord{Symbol: "MSFT"},
	}
	c.Right.Info.Name = models.StringPtr("Microsoft Corporation")

	prompt := BuildPrompt(c)
	assert.Contains(t, prompt, "ZZZZ (ZZZZ)")
}

// mockLLM returns a fixed response or error.
type mockLLM struct {
	response string
	err      error
}

func (m *mockLLM) Chat(ctx context.Context, messages []interfaces.Message) (string, error) {
	return m.response, m.err
}
func (m *mockLLM) HealthCheck(ctx context.Context) error { return nil }
func (m *mockLLM) Close() error                          { return nil }

func TestGenerate(t *testing.T) {
	svc := NewService(&mockLLM{response: "## Analysis\n- AAPL leads"})

	text, err := svc.Generate(context.Background(), newComparison("Apple Inc.", "Microsoft Corporation"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "## Analysis"))
}

func TestGenerate_ProviderError(t *testing.T) {
	svc := NewService(&mockLLM{err: errors.New("rate limited")})

	_, err := svc.Generate(context.Background(), newComparison("A", "B"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNarrativeUnavailable))
}

func TestGenerate_EmptyResponse(t *testing.T) {
	svc := NewService(&mockLLM{response: "   \n  "})

	_, err := svc.Generate(context.Background(), newComparison("A", "B"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNarrativeUnavailable))
}
