package comparison

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/confero/internal/models"
)

// mockMarketData fails selected operations per symbol.
type mockMarketData struct {
	infoErr         map[string]bool
	fundamentalsErr map[string]bool
	pricesErr       map[string]bool
}

func (m *mockMarketData) CompanyInfo(ctx context.Context, symbol string) (models.CompanyInfo, error) {
	if m.infoErr[symbol] {
		return models.CompanyInfo{}, fmt.Errorf("%w: company info for %s", models.ErrDataUnavailable, symbol)
	}
	name := symbol + " Inc."
	return models.CompanyInfo{Name: &name}, nil
}

func (m *mockMarketData) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	if m.fundamentalsErr[symbol] {
		return models.Fundamentals{}, fmt.Errorf("%w: fundamentals for %s", models.ErrDataUnavailable, symbol)
	}
	pe := 25.0
	return models.Fundamentals{TrailingPE: &pe}, nil
}

func (m *mockMarketData) RecentPrices(ctx context.Context, symbol, rng, interval string) (models.PriceSeries, error) {
	if m.pricesErr[symbol] {
		return nil, fmt.Errorf("%w: price history for %s", models.ErrDataUnavailable, symbol)
	}
	return models.PriceSeries{{Date: "2025-08-01", Close: 100.0, Volume: 1000}}, nil
}

func TestBuild(t *testing.T) {
	builder := NewBuilder(&mockMarketData{})

	comparison, err := builder.Build(context.Background(), "AAPL", "MSFT")
	require.NoError(t, err)

	assert.NotEmpty(t, comparison.RunID)
	assert.False(t, comparison.GeneratedAt.IsZero())
	assert.Equal(t, "AAPL", comparison.Left.Symbol)
	assert.Equal(t, "MSFT", comparison.Right.Symbol)
	assert.Equal(t, "AAPL Inc.", comparison.Left.DisplayName())
	require.NotNil(t, comparison.Right.Fundamentals.TrailingPE)
	require.Len(t, comparison.Right.Prices, 1)
}

func TestBuild_InfoFailureAborts(t *testing.T) {
	tests := []struct {
		name    string
		infoErr map[string]bool
	}{
		{"left side", map[string]bool{"AAPL": true}},
		{"right side", map[string]bool{"MSFT": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBuilder(&mockMarketData{infoErr: tt.infoErr})

			_, err := builder.Build(context.Background(), "AAPL", "MSFT")
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrDataUnavailable))
		})
	}
}

func TestBuild_FundamentalsFailureDegrades(t *testing.T) {
	builder := NewBuilder(&mockMarketData{
		fundamentalsErr: map[string]bool{"AAPL": true},
	})

	comparison, err := builder.Build(context.Background(), "AAPL", "MSFT")
	require.NoError(t, err)

	// Failed side renders all-absent, the other side is untouched
	assert.Nil(t, comparison.Left.Fundamentals.TrailingPE)
	assert.NotNil(t, comparison.Right.Fundamentals.TrailingPE)
}

func TestBuild_PricesFailureDegrades(t *testing.T) {
	builder := NewBuilder(&mockMarketData{
		pricesErr: map[string]bool{"MSFT": true},
	})

	comparison, err := builder.Build(context.Background(), "AAPL", "MSFT")
	require.NoError(t, err)

	assert.Empty(t, comparison.Right.Prices)
	assert.NotEmpty(t, comparison.Left.Prices)
}
