// Package models defines the request-scoped comparison data model.
// All entities are created per run and discarded after rendering;
// nothing here is persisted.
package models

import (
	"time"
)

// CompanyInfo holds descriptive company data for one symbol.
// Nil fields mean the provider did not report the value; absence is a
// valid terminal state, not a failure.
type CompanyInfo struct {
	Name      *string `json:"name,omitempty"`
	Sector    *string `json:"sector,omitempty"`
	Industry  *string `json:"industry,omitempty"`
	MarketCap *int64  `json:"market_cap,omitempty"`
}

// Fundamentals holds per-share valuation ratios for one symbol.
type Fundamentals struct {
	PreviousClose *float64 `json:"previous_close,omitempty"`
	TrailingPE    *float64 `json:"trailing_pe,omitempty"`
	ForwardPE     *float64 `json:"forward_pe,omitempty"`
	PriceToBook   *float64 `json:"price_to_book,omitempty"`
}

// PricePoint is a single close in the recent price history.
// Date is a normalized calendar date string (YYYY-MM-DD).
type PricePoint struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// PriceSeries is a chronological sequence of price points,
// truncated to the most recent points of the history query.
type PriceSeries []PricePoint

// StockRecord is one side of a comparison: a symbol with its
// normalized info, fundamentals and recent price history.
type StockRecord struct {
	Symbol       string       `json:"symbol"`
	Info         CompanyInfo  `json:"info"`
	Fundamentals Fundamentals `json:"fundamentals"`
	Prices       PriceSeries  `json:"prices"`
}

// DisplayName returns the resolved company name, falling back to the
// symbol itself when the provider did not report one.
func (r *StockRecord) DisplayName() string {
	if r.Info.Name != nil && *r.Info.Name != "" {
		return *r.Info.Name
	}
	return r.Symbol
}

// Comparison pairs two independent stock records for one run.
// The records are symmetric; nothing is merged across sides.
type Comparison struct {
	RunID       string      `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Left        StockRecord `json:"left"`
	Right       StockRecord `json:"right"`
}

// StringPtr returns a pointer to s, or nil when s is empty.
// Provider responses use empty strings for missing text fields.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
