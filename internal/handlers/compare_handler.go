package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/confero/internal/common"
	"github.com/ternarybob/confero/internal/models"
	"github.com/ternarybob/confero/internal/presentation"
)

// ComparisonBuilder assembles a two-sided comparison.
type ComparisonBuilder interface {
	Build(ctx context.Context, left, right string) (*models.Comparison, error)
}

// NarrativeGenerator produces the analyst narrative for a comparison.
type NarrativeGenerator interface {
	Generate(ctx context.Context, c *models.Comparison) (string, error)
}

// CompareRequest is the POST /api/compare body.
type CompareRequest struct {
	Left  string `json:"left" validate:"required"`
	Right string `json:"right" validate:"required"`
}

// SideResponse is one rendered side of the comparison.
type SideResponse struct {
	Symbol  string                  `json:"symbol"`
	Info    presentation.Table      `json:"info"`
	Metrics []presentation.Metric   `json:"metrics"`
	Trend   presentation.LineSeries `json:"trend"`
}

// CompareResponse is the POST /api/compare response.
type CompareResponse struct {
	RunID          string       `json:"run_id"`
	Left           SideResponse `json:"left"`
	Right          SideResponse `json:"right"`
	ReportMarkdown string       `json:"report_markdown"`
	ReportHTML     string       `json:"report_html"`
	Narrative      string       `json:"narrative,omitempty"`
	NarrativeError string       `json:"narrative_error,omitempty"`
}

// CompareHandler runs a comparison for two symbols.
type CompareHandler struct {
	builder   ComparisonBuilder
	narrative NarrativeGenerator
	validate  *validator.Validate
	logger    arbor.ILogger
}

// NewCompareHandler creates the compare endpoint handler.
func NewCompareHandler(builder ComparisonBuilder, narrative NarrativeGenerator) *CompareHandler {
	return &CompareHandler{
		builder:   builder,
		narrative: narrative,
		validate:  validator.New(),
		logger:    common.GetLogger(),
	}
}

// CompareHandler handles POST /api/compare. Narrative failure degrades
// to a 200 with narrative_error; data provider failure is a 502.
func (h *CompareHandler) CompareHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Both left and right symbols are required")
		return
	}

	left := common.NormalizeSymbol(req.Left)
	right := common.NormalizeSymbol(req.Right)
	if left == "" || right == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ticker symbol")
		return
	}

	h.logger.Info().
		Str("left", left).
		Str("right", right).
		Msg("Comparison requested")

	comparison, err := h.builder.Build(r.Context(), left, right)
	if err != nil {
		if errors.Is(err, models.ErrDataUnavailable) {
			h.logger.Error().Err(err).Msg("Comparison aborted")
			WriteError(w, http.StatusBadGateway, "Market data unavailable, check the symbols and try again")
			return
		}
		h.logger.Error().Err(err).Msg("Comparison failed")
		WriteError(w, http.StatusInternalServerError, "Comparison failed")
		return
	}

	response := CompareResponse{
		RunID: comparison.RunID,
		Left:  buildSide(&comparison.Left),
		Right: buildSide(&comparison.Right),
	}

	narrative, err := h.narrative.Generate(r.Context(), comparison)
	if err != nil {
		// Data sections still render; only the narrative is lost
		response.NarrativeError = "Narrative generation is currently unavailable"
	} else {
		response.Narrative = narrative
	}

	response.ReportMarkdown = presentation.RenderReport(comparison, narrative)
	if html, err := presentation.MarkdownToHTML(response.ReportMarkdown); err == nil {
		response.ReportHTML = html
	} else {
		h.logger.Warn().Err(err).Msg("Report HTML rendering failed")
	}

	WriteJSON(w, http.StatusOK, response)
}

func buildSide(rec *models.StockRecord) SideResponse {
	return SideResponse{
		Symbol:  rec.Symbol,
		Info:    presentation.InfoTable(rec),
		Metrics: presentation.FundamentalMetrics(rec),
		Trend:   presentation.PriceTrend(rec),
	}
}
