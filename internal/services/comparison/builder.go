// Package comparison assembles the two-sided comparison for a run.
package comparison

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/interfaces"
	"github.com/ternarybob/confero/internal/models"
)

// Builder fetches and assembles stock records for both sides of a
// comparison. Company info failures abort the run; fundamentals and
// price failures degrade that section to all-absent values.
type Builder struct {
	marketData interfaces.MarketDataService
	logger     arbor.ILogger
}

// NewBuilder creates a comparison builder.
func NewBuilder(marketData interfaces.MarketDataService) *Builder {
	return &Builder{
		marketData: marketData,
		logger:     common.GetLogger(),
	}
}

// Build fetches both records and pairs them into a comparison.
// Returns an error wrapping models.ErrDataUnavailable when either
// side's company info cannot be fetched.
func (b *Builder) Build(ctx context.Context, left, right string) (*models.Comparison, error) {
	leftRecord, err := b.buildRecord(ctx, left)
	if err != nil {
		return nil, err
	}
	rightRecord, err := b.buildRecord(ctx, right)
	if err != nil {
		return nil, err
	}

	comparison := &models.Comparison{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Left:        *leftRecord,
		Right:       *rightRecord,
	}

	b.logger.Info().
		Str("run_id", comparison.RunID).
		Str("left", left).
		Str("right", right).
		Msg("Comparison assembled")

	return comparison, nil
}

// buildRecord fetches one symbol's record. Info is required;
// fundamentals and prices degrade to empty sections on failure.
func (b *Builder) buildRecord(ctx context.Context, symbol string) (*models.StockRecord, error) {
	info, err := b.marketData.CompanyInfo(ctx, symbol)
	if err != nil {
		b.logger.Error().
			Err(err).
			Str("symbol", symbol).
			Msg("Company info fetch failed")
		return nil, err
	}

	record := &models.StockRecord{
		Symbol: symbol,
		Info:   info,
		Prices: models.PriceSeries{},
	}

	fundamentals, err := b.marketData.Fundamentals(ctx, symbol)
	if err != nil {
		b.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Fundamentals fetch failed, rendering as absent")
	} else {
		record.Fundamentals = fundamentals
	}

	prices, err := b.marketData.RecentPrices(ctx, symbol, "", "")
	if err != nil {
		b.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Price history fetch failed, rendering empty series")
	} else {
		record.Prices = prices
	}

	return record, nil
}
