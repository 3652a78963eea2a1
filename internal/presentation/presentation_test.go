package presentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/confero/internal/models"
)

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		name  string
		value *int64
		want  string
	}{
		{"absent", nil, "N/A"},
		{"billions", models.Int64Ptr(3000000000), "$3,000,000,000"},
		{"small", models.Int64Ptr(950), "$950"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMarketCap(tt.value))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "N/A", FormatFloat(nil))
	assert.Equal(t, "35.21", FormatFloat(models.Float64Ptr(35.2111)))
}

func TestFormatText(t *testing.T) {
	assert.Equal(t, "N/A", FormatText(nil))
	assert.Equal(t, "Technology", FormatText(models.StringPtr("Technology")))
}

func newRecord() models.StockRecord {
	return models.StockRecord{
		Symbol: "AAPL",
		Info: models.CompanyInfo{
			Name:      models.StringPtr("Apple Inc."),
			Sector:    models.StringPtr("Technology"),
			MarketCap: models.Int64Ptr(3000000000000),
		},
		Fundamentals: models.Fundamentals{
			PreviousClose: models.Float64Ptr(230.5),
			TrailingPE:    models.Float64Ptr(35.2),
		},
		Prices: models.PriceSeries{
			{Date: "2025-07-01", Close: 225.0, Volume: 52000000},
			{Date: "2025-08-01", Close: 230.5, Volume: 48000000},
		},
	}
}

func TestInfoTable(t *testing.T) {
	rec := newRecord()
	table := InfoTable(&rec)

	assert.Equal(t, "Apple Inc.", table.Title)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, Row{Label: "Company", Value: "Apple Inc."}, table.Rows[0])
	// Industry absent
	assert.Equal(t, Row{Label: "Industry", Value: "N/A"}, table.Rows[2])
	assert.Equal(t, Row{Label: "Market Cap", Value: "$3,000,000,000,000"}, table.Rows[3])
}

func TestFundamentalMetrics_FixedOrder(t *testing.T) {
	rec := newRecord()
	metrics := FundamentalMetrics(&rec)

	require.Len(t, metrics, 4)
	assert.Equal(t, "Previous Close", metrics[0].Label)
	assert.Equal(t, "$230.50", metrics[0].Value)
	assert.Equal(t, "Trailing P/E", metrics[1].Label)
	assert.Equal(t, "Forward P/E", metrics[2].Label)
	assert.Equal(t, "N/A", metrics[2].Value)
	assert.Equal(t, "Price/Book", metrics[3].Label)
}

func TestPriceTrend(t *testing.T) {
	rec := newRecord()
	trend := PriceTrend(&rec)

	assert.Equal(t, "AAPL", trend.Symbol)
	require.Len(t, trend.Points, 2)
	assert.Equal(t, SeriesPoint{Date: "2025-07-01", Close: 225.0}, trend.Points[0])
}

func newComparison() *models.Comparison {
	left := newRecord()
	right := models.StockRecord{
		Symbol: "MSFT",
		Info: models.CompanyInfo{
			Name: models.StringPtr("Microsoft Corporation"),
		},
		Prices: models.PriceSeries{},
	}
	return &models.Comparison{
		RunID: "test-run",
		Left:  left,
		Right: right,
	}
}

func TestRenderReport(t *testing.T) {
	report := RenderReport(newComparison(), "AAPL looks stronger on valuation.")

	assert.True(t, strings.HasPrefix(report, "# Stock Comparison: AAPL vs MSFT"))
	assert.Contains(t, report, "## Company Overview")
	assert.Contains(t, report, "| Market Cap | $3,000,000,000,000 | N/A |")
	assert.Contains(t, report, "## Fundamentals")
	assert.Contains(t, report, "| Trailing P/E | 35.20 | N/A |")
	assert.Contains(t, report, "## Recent Price History")
	assert.Contains(t, report, "| 2025-08-01 | $230.50 | 48,000,000 |")
	// Empty right series renders a placeholder, not an empty table
	assert.Contains(t, report, "No price history available.")
	assert.Contains(t, report, "## Analyst Comparison")
	assert.Contains(t, report, "AAPL looks stronger on valuation.")
}

func TestRenderReport_NoNarrative(t *testing.T) {
	report := RenderReport(newComparison(), "")
	assert.NotContains(t, report, "## Analyst Comparison")
}

func TestMarkdownToHTML(t *testing.T) {
	html, err := MarkdownToHTML("# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
}
