package interfaces

import (
	"context"

	"github.com/ternarybob/confero/internal/models"
)

// MarketDataService fetches normalized market data for a single symbol.
// Implementations map provider-absent fields to nil model fields and
// return models.ErrDataUnavailable (wrapped) only for transport failures
// or unrecognized symbols.
type MarketDataService interface {
	// CompanyInfo fetches descriptive company data.
	CompanyInfo(ctx context.Context, symbol string) (models.CompanyInfo, error)

	// Fundamentals fetches per-share valuation ratios.
	Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error)

	// RecentPrices fetches the recent price history for the given range
	// and interval (provider enum strings, e.g. "6mo"/"1mo"). Empty
	// values select the configured defaults. The series is chronological
	// and truncated to the most recent six points.
	RecentPrices(ctx context.Context, symbol, rng, interval string) (models.PriceSeries, error)
}
