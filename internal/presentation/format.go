// Package presentation converts the comparison model into display
// structures, markdown and HTML. All functions are pure; absent values
// render as "N/A" and never as errors.
package presentation

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// NotAvailable is the rendering of an absent value.
const NotAvailable = "N/A"

// FormatMarketCap renders a market cap as a dollar amount with
// thousands separators.
func FormatMarketCap(cap *int64) string {
	if cap == nil {
		return NotAvailable
	}
	return "$" + humanize.Comma(*cap)
}

// FormatFloat renders a ratio or price with two decimal places.
func FormatFloat(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatPrice renders a price with a dollar prefix.
func FormatPrice(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("$%.2f", *v)
}

// FormatVolume renders a share volume with thousands separators.
func FormatVolume(v int64) string {
	return humanize.Comma(v)
}

// FormatText renders an optional string field.
func FormatText(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}
