// Package marketdata normalizes Yahoo Finance responses into the
// comparison data model. Absent provider fields become nil model
// fields; only transport failures and unknown symbols are errors.
package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/interfaces"
	"github.com/ternarybob/confero/internal/models"
	"github.com/ternarybob/confero/internal/yahoo"
)

// RecentPointCount is the number of trailing price points kept from
// the history query.
const RecentPointCount = 6

// Service implements interfaces.MarketDataService on the Yahoo client.
type Service struct {
	client          *yahoo.Client
	defaultRange    string
	defaultInterval string
	logger          arbor.ILogger
}

// NewService creates a market data service. Range and interval are the
// defaults applied when a caller passes empty values to RecentPrices.
func NewService(client *yahoo.Client, defaultRange, defaultInterval string) *Service {
	return &Service{
		client:          client,
		defaultRange:    defaultRange,
		defaultInterval: defaultInterval,
		logger:          common.GetLogger(),
	}
}

var _ interfaces.MarketDataService = (*Service)(nil)

// CompanyInfo fetches name, sector, industry and market cap for a symbol.
func (s *Service) CompanyInfo(ctx context.Context, symbol string) (models.CompanyInfo, error) {
	result, err := s.client.GetQuoteSummary(ctx, symbol,
		yahoo.WithModules("assetProfile,price"))
	if err != nil {
		return models.CompanyInfo{}, fmt.Errorf("%w: company info for %s: %v", models.ErrDataUnavailable, symbol, err)
	}

	info := models.CompanyInfo{}
	if result.Price != nil {
		name := result.Price.LongName
		if name == "" {
			name = result.Price.ShortName
		}
		info.Name = models.StringPtr(name)
		info.MarketCap = result.Price.MarketCap.Int64()
	}
	if result.AssetProfile != nil {
		info.Sector = models.StringPtr(result.AssetProfile.Sector)
		info.Industry = models.StringPtr(result.AssetProfile.Industry)
	}
	return info, nil
}

// Fundamentals fetches valuation ratios for a symbol.
func (s *Service) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	result, err := s.client.GetQuoteSummary(ctx, symbol,
		yahoo.WithModules("summaryDetail,defaultKeyStatistics"))
	if err != nil {
		return models.Fundamentals{}, fmt.Errorf("%w: fundamentals for %s: %v", models.ErrDataUnavailable, symbol, err)
	}

	f := models.Fundamentals{}
	if result.SummaryDetail != nil {
		f.PreviousClose = result.SummaryDetail.PreviousClose.Float()
		f.TrailingPE = result.SummaryDetail.TrailingPE.Float()
		f.ForwardPE = result.SummaryDetail.ForwardPE.Float()
	}
	if result.DefaultKeyStatistics != nil {
		f.PriceToBook = result.DefaultKeyStatistics.PriceToBook.Float()
		if f.ForwardPE == nil {
			f.ForwardPE = result.DefaultKeyStatistics.ForwardPE.Float()
		}
	}
	return f, nil
}

// RecentPrices fetches the price history and keeps the trailing six
// points. Bars with null closes are skipped before truncation.
func (s *Service) RecentPrices(ctx context.Context, symbol, rng, interval string) (models.PriceSeries, error) {
	if rng == "" {
		rng = s.defaultRange
	}
	if interval == "" {
		interval = s.defaultInterval
	}

	result, err := s.client.GetChart(ctx, symbol,
		yahoo.WithRange(rng), yahoo.WithInterval(interval))
	if err != nil {
		return nil, fmt.Errorf("%w: price history for %s: %v", models.ErrDataUnavailable, symbol, err)
	}

	series := buildSeries(result)
	if len(series) > RecentPointCount {
		series = series[len(series)-RecentPointCount:]
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Int("points", len(series)).
		Msg("Price history normalized")

	return series, nil
}

// buildSeries converts chart arrays into chronological price points,
// skipping bars where the close is null.
func buildSeries(result *yahoo.ChartResult) models.PriceSeries {
	if len(result.Indicators.Quote) == 0 {
		return models.PriceSeries{}
	}
	quote := result.Indicators.Quote[0]

	series := make(models.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		point := models.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: *quote.Close[i],
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			point.Volume = *quote.Volume[i]
		}
		series = append(series, point)
	}
	return series
}
