package presentation

import (
	"fmt"
	"strings"

	"github.com/ternarybob/confero/internal/models"
)

// RenderReport formats a comparison as a markdown report. The narrative
// may be empty; its section is omitted rather than rendered blank.
func RenderReport(c *models.Comparison, narrative string) string {
	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("# Stock Comparison: %s vs %s\n\n", c.Left.Symbol, c.Right.Symbol))
	sb.WriteString(fmt.Sprintf("**Date:** %s\n\n", c.GeneratedAt.Format("2006-01-02 15:04")))

	// Company Overview Section
	sb.WriteString("## Company Overview\n\n")
	sb.WriteString(fmt.Sprintf("| | %s | %s |\n", c.Left.Symbol, c.Right.Symbol))
	sb.WriteString("|--------|--------|--------|\n")
	sb.WriteString(fmt.Sprintf("| Company | %s | %s |\n",
		FormatText(c.Left.Info.Name), FormatText(c.Right.Info.Name)))
	sb.WriteString(fmt.Sprintf("| Sector | %s | %s |\n",
		FormatText(c.Left.Info.Sector), FormatText(c.Right.Info.Sector)))
	sb.WriteString(fmt.Sprintf("| Industry | %s | %s |\n",
		FormatText(c.Left.Info.Industry), FormatText(c.Right.Info.Industry)))
	sb.WriteString(fmt.Sprintf("| Market Cap | %s | %s |\n\n",
		FormatMarketCap(c.Left.Info.MarketCap), FormatMarketCap(c.Right.Info.MarketCap)))

	// Fundamentals Section
	sb.WriteString("## Fundamentals\n\n")
	sb.WriteString(fmt.Sprintf("| Metric | %s | %s |\n", c.Left.Symbol, c.Right.Symbol))
	sb.WriteString("|--------|--------|--------|\n")
	leftMetrics := FundamentalMetrics(&c.Left)
	rightMetrics := FundamentalMetrics(&c.Right)
	for i, metric := range leftMetrics {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			metric.Label, metric.Value, rightMetrics[i].Value))
	}
	sb.WriteString("\n")

	// Price History Section
	sb.WriteString("## Recent Price History\n\n")
	writePriceTable(&sb, &c.Left)
	writePriceTable(&sb, &c.Right)

	// Narrative Section
	if narrative != "" {
		sb.WriteString("## Analyst Comparison\n\n")
		sb.WriteString(narrative)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writePriceTable appends one symbol's price history table.
func writePriceTable(sb *strings.Builder, rec *models.StockRecord) {
	sb.WriteString(fmt.Sprintf("### %s\n\n", rec.Symbol))

	if len(rec.Prices) == 0 {
		sb.WriteString("No price history available.\n\n")
		return
	}

	sb.WriteString("| Date | Close | Volume |\n")
	sb.WriteString("|------|-------|--------|\n")
	for _, p := range rec.Prices {
		sb.WriteString(fmt.Sprintf("| %s | $%.2f | %s |\n",
			p.Date, p.Close, FormatVolume(p.Volume)))
	}
	sb.WriteString("\n")
}
