package marketdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/confero/internal/models"
	"github.com/ternarybob/confero/internal/yahoo"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := yahoo.NewClient(yahoo.WithBaseURL(server.URL))
	return NewService(client, "6mo", "1mo")
}

func TestCompanyInfo(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [{
			"assetProfile": {"sector": "Technology", "industry": "Software"},
			"price": {"longName": "Microsoft Corporation", "marketCap": {"raw": 3000000000000}}
		}], "error": null}}`))
	})

	info, err := svc.CompanyInfo(context.Background(), "MSFT")
	require.NoError(t, err)

	require.NotNil(t, info.Name)
	assert.Equal(t, "Microsoft Corporation", *info.Name)
	require.NotNil(t, info.Sector)
	assert.Equal(t, "Technology", *info.Sector)
	require.NotNil(t, info.MarketCap)
	assert.Equal(t, int64(3000000000000), *info.MarketCap)
}

func TestCompanyInfo_AbsentFields(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [{
			"price": {"shortName": "S&P 500"}
		}], "error": null}}`))
	})

	info, err := svc.CompanyInfo(context.Background(), "^GSPC")
	require.NoError(t, err)

	require.NotNil(t, info.Name)
	assert.Equal(t, "S&P 500", *info.Name)
	assert.Nil(t, info.Sector)
	assert.Nil(t, info.Industry)
	assert.Nil(t, info.MarketCap)
}

func TestCompanyInfo_UnknownSymbol(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": null, "error": {"code": "Not Found", "description": "Quote not found"}}}`))
	})

	_, err := svc.CompanyInfo(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrDataUnavailable))
}

func TestFundamentals(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [{
			"summaryDetail": {"previousClose": {"raw": 420.5}, "trailingPE": {"raw": 35.2}},
			"defaultKeyStatistics": {"priceToBook": {"raw": 12.1}, "forwardPE": {"raw": 30.0}}
		}], "error": null}}`))
	})

	f, err := svc.Fundamentals(context.Background(), "MSFT")
	require.NoError(t, err)

	require.NotNil(t, f.PreviousClose)
	assert.Equal(t, 420.5, *f.PreviousClose)
	require.NotNil(t, f.TrailingPE)
	assert.Equal(t, 35.2, *f.TrailingPE)
	// summaryDetail has no forwardPE, falls back to key statistics
	require.NotNil(t, f.ForwardPE)
	assert.Equal(t, 30.0, *f.ForwardPE)
	require.NotNil(t, f.PriceToBook)
	assert.Equal(t, 12.1, *f.PriceToBook)
}

func TestRecentPrices_TruncatesToTrailingSix(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "6mo", r.URL.Query().Get("range"))
		assert.Equal(t, "1mo", r.URL.Query().Get("interval"))
		// 8 bars, one with a null close
		w.Write([]byte(`{"chart": {"result": [{
			"timestamp": [1735689600, 1738368000, 1740787200, 1743465600, 1746057600, 1748736000, 1751328000, 1754006400],
			"indicators": {"quote": [{
				"close": [100.0, 101.0, null, 103.0, 104.0, 105.0, 106.0, 107.0],
				"volume": [1000, 1000, null, 1000, 1000, 1000, 1000, 2000]
			}]}
		}], "error": null}}`))
	})

	series, err := svc.RecentPrices(context.Background(), "AAPL", "", "")
	require.NoError(t, err)

	require.Len(t, series, 6)
	// Null bar dropped before truncation, so the window starts at 101.0
	assert.Equal(t, 101.0, series[0].Close)
	assert.Equal(t, 107.0, series[5].Close)
	assert.Equal(t, int64(2000), series[5].Volume)
	// Dates normalized to UTC calendar dates
	assert.Equal(t, "2025-08-01", series[5].Date)
}

func TestRecentPrices_EmptyHistory(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart": {"result": [{"timestamp": [], "indicators": {"quote": [{"close": [], "volume": []}]}}], "error": null}}`))
	})

	series, err := svc.RecentPrices(context.Background(), "AAPL", "", "")
	require.NoError(t, err)
	assert.Empty(t, series)
}
