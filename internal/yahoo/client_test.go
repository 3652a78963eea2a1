package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetQuoteSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v10/finance/quoteSummary/AAPL" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("modules") != "assetProfile,price" {
			t.Errorf("unexpected modules %q", r.URL.Query().Get("modules"))
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"quoteSummary": {
				"result": [{
					"assetProfile": {"sector": "Technology", "industry": "Consumer Electronics"},
					"price": {"longName": "Apple Inc.", "marketCap": {"raw": 3000000000000, "fmt": "3T"}}
				}],
				"error": null
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	result, err := client.GetQuoteSummary(context.Background(), "AAPL",
		WithModules("assetProfile,price"))
	if err != nil {
		t.Fatalf("GetQuoteSummary: %v", err)
	}

	if result.AssetProfile == nil || result.AssetProfile.Sector != "Technology" {
		t.Errorf("sector not decoded: %+v", result.AssetProfile)
	}
	if result.Price == nil || result.Price.LongName != "Apple Inc." {
		t.Errorf("name not decoded: %+v", result.Price)
	}
	if cap := result.Price.MarketCap.Int64(); cap == nil || *cap != 3000000000000 {
		t.Errorf("market cap not decoded: %v", cap)
	}
}

func TestGetQuoteSummary_AbsentFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": [{"summaryDetail": {"previousClose": {"raw": 12.5}}}], "error": null}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	result, err := client.GetQuoteSummary(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("GetQuoteSummary: %v", err)
	}

	if result.SummaryDetail.TrailingPE.Float() != nil {
		t.Error("absent trailingPE must decode to nil")
	}
	if pc := result.SummaryDetail.PreviousClose.Float(); pc == nil || *pc != 12.5 {
		t.Errorf("previousClose = %v, want 12.5", pc)
	}
	if result.AssetProfile != nil {
		t.Error("absent module must decode to nil")
	}
}

func TestGetQuoteSummary_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary": {"result": null, "error": {"code": "Not Found", "description": "Quote not found for ticker symbol: ZZZZ"}}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetQuoteSummary(context.Background(), "ZZZZ")

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
}

func TestGetChart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("range") != "6mo" || r.URL.Query().Get("interval") != "1mo" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"chart": {
				"result": [{
					"meta": {"symbol": "MSFT", "currency": "USD"},
					"timestamp": [1704067200, 1706745600, 1709251200],
					"indicators": {"quote": [{
						"close": [370.1, null, 401.5],
						"volume": [21000000, null, 19000000]
					}]}
				}],
				"error": null
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	result, err := client.GetChart(context.Background(), "MSFT",
		WithRange("6mo"), WithInterval("1mo"))
	if err != nil {
		t.Fatalf("GetChart: %v", err)
	}

	if len(result.Timestamp) != 3 {
		t.Fatalf("timestamps = %d, want 3", len(result.Timestamp))
	}
	quote := result.Indicators.Quote[0]
	if quote.Close[1] != nil {
		t.Error("null bar must decode to nil close")
	}
	if quote.Close[2] == nil || *quote.Close[2] != 401.5 {
		t.Errorf("close[2] = %v, want 401.5", quote.Close[2])
	}
}

func TestGetChart_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetChart(context.Background(), "AAPL")

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", apiErr.StatusCode)
	}
}
