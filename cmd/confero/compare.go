package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/confero/internal/app"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/models"
	"github.com/ternarybob/confero/internal/presentation"
)

// runCompareOnce runs a single comparison for a "LEFT,RIGHT" pair and
// prints the markdown report to stdout. Returns the process exit code.
func runCompareOnce(application *app.App, pair string) int {
	left, right, ok := common.ParseSymbolPair(pair)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid symbol pair %q: expected \"LEFT,RIGHT\" (e.g. \"AAPL,MSFT\")\n", pair)
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	comparison, err := application.ComparisonBuilder.Build(ctx, left, right)
	if err != nil {
		if errors.Is(err, models.ErrDataUnavailable) {
			fmt.Fprintf(os.Stderr, "market data unavailable: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "comparison failed: %v\n", err)
		return 1
	}

	narrative, err := application.NarrativeService.Generate(ctx, comparison)
	if err != nil {
		// Data sections still print; note the missing narrative
		fmt.Fprintf(os.Stderr, "warning: narrative unavailable: %v\n", err)
		narrative = ""
	}

	fmt.Print(presentation.RenderReport(comparison, narrative))
	return 0
}
