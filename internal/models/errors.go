package models

import (
	"errors"
)

// Error taxonomy for a comparison run. Individual missing fields are
// never errors - they normalize to nil model fields and render as "N/A".
var (
	// ErrConfigurationMissing indicates a required credential is absent.
	// This is the only fatal condition; startup halts before any UI
	// interaction is possible.
	ErrConfigurationMissing = errors.New("required configuration missing")

	// ErrDataUnavailable indicates the market data provider was
	// unreachable or did not recognize a symbol. Aborts the current run.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrNarrativeUnavailable indicates the text-generation call failed
	// or returned an empty response. Aborts only the narrative section;
	// already-built data sections remain valid.
	ErrNarrativeUnavailable = errors.New("narrative unavailable")
)
