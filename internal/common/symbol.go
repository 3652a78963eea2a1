// Package common provides shared utilities across the application.
package common

import (
	"strings"
)

// symbolChars are the characters accepted in a normalized ticker symbol.
// Covers plain tickers (AAPL), class shares (BRK-B, BRK.B) and indices (^GSPC).
const symbolChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.-^"

// MaxSymbolLength bounds a normalized symbol; Yahoo tickers never exceed this.
const MaxSymbolLength = 12

// NormalizeSymbol trims and uppercases a ticker symbol.
// Returns "" when the input is empty or contains characters a market
// symbol can never contain - the provider lookup decides whether the
// symbol actually exists.
func NormalizeSymbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || len(symbol) > MaxSymbolLength {
		return ""
	}
	for _, r := range symbol {
		if !strings.ContainsRune(symbolChars, r) {
			return ""
		}
	}
	return symbol
}

// ParseSymbolPair parses a "LEFT,RIGHT" pair as given to the -compare flag.
// Both sides must normalize to a valid symbol.
func ParseSymbolPair(pair string) (string, string, bool) {
	parts := strings.Split(pair, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	left := NormalizeSymbol(parts[0])
	right := NormalizeSymbol(parts[1])
	if left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}
