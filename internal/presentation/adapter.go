package presentation

import (
	"github.com/ternarybob/confero/internal/models"
)

// Row is a label/value pair in a display table.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is a titled set of rows.
type Table struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Metric is a single labelled metric value.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SeriesPoint is one point of a price trend line.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// LineSeries is a symbol's chronological price trend.
type LineSeries struct {
	Symbol string        `json:"symbol"`
	Points []SeriesPoint `json:"points"`
}

// InfoTable builds the company info table for one record.
func InfoTable(rec *models.StockRecord) Table {
	return Table{
		Title: rec.DisplayName(),
		Rows: []Row{
			{Label: "Company", Value: FormatText(rec.Info.Name)},
			{Label: "Sector", Value: FormatText(rec.Info.Sector)},
			{Label: "Industry", Value: FormatText(rec.Info.Industry)},
			{Label: "Market Cap", Value: FormatMarketCap(rec.Info.MarketCap)},
		},
	}
}

// FundamentalMetrics builds the fundamentals metrics for one record in
// fixed display order.
func FundamentalMetrics(rec *models.StockRecord) []Metric {
	return []Metric{
		{Label: "Previous Close", Value: FormatPrice(rec.Fundamentals.PreviousClose)},
		{Label: "Trailing P/E", Value: FormatFloat(rec.Fundamentals.TrailingPE)},
		{Label: "Forward P/E", Value: FormatFloat(rec.Fundamentals.ForwardPE)},
		{Label: "Price/Book", Value: FormatFloat(rec.Fundamentals.PriceToBook)},
	}
}

// PriceTrend builds the price trend line for one record.
func PriceTrend(rec *models.StockRecord) LineSeries {
	points := make([]SeriesPoint, 0, len(rec.Prices))
	for _, p := range rec.Prices {
		points = append(points, SeriesPoint{Date: p.Date, Close: p.Close})
	}
	return LineSeries{
		Symbol: rec.Symbol,
		Points: points,
	}
}
