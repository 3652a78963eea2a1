// Package narrative generates the analyst comparison text through the
// configured LLM provider.
package narrative

import (
	"fmt"

	"github.com/ternarybob/confero/internal/models"
)

// BuildPrompt returns the analyst instruction for a comparison. The
// output is deterministic for a given comparison; the only variable
// content is the two validated symbols and their resolved names.
func BuildPrompt(c *models.Comparison) string {
	return fmt.Sprintf(
		"Compare %s (%s) and %s (%s). "+
			"Analyze fundamentals, recent price performance, risks, and give an investment recommendation. "+
			"Be concise and format your response as a professional financial analyst report with bullet points and sections.",
		c.Left.Symbol, c.Left.DisplayName(),
		c.Right.Symbol, c.Right.DisplayName(),
	)
}
