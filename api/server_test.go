package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"listing-price/core/engine"
	"listing-price/core/fees"
)

func newTestServer() *Server {
	return NewServer("test", engine.New(fees.Default(), zap.NewNop()), zap.NewNop())
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleListing(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodPost, "/listing",
		`{"platform":"ebay","category":"other","item_cost":30,"desired_profit":"20","seller_paid_shipping":"$5"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Platform     string `json:"platform"`
		Category     string `json:"category"`
		ListingPrice string `json:"listing_price"`
		NetProfit    string `json:"net_profit"`
		Exact        struct {
			NetProfit float64 `json:"net_profit"`
		} `json:"exact"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Platform != "ebay" || resp.Category != "Other" {
		t.Errorf("unexpected platform/category %q/%q", resp.Platform, resp.Category)
	}
	if resp.ListingPrice != "63.65" {
		t.Errorf("expected listing price 63.65, got %s", resp.ListingPrice)
	}
	if d := resp.Exact.NetProfit - 20; d <= -0.01 || d >= 0.01 {
		t.Errorf("exact net profit %v not within tolerance", resp.Exact.NetProfit)
	}
}

func TestHandleListingCoercesBadAmounts(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/listing",
		`{"platform":"ebay","category":"NFTs","item_cost":"abc","desired_profit":-5,"seller_paid_shipping":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"listing_price":"0"`) {
		t.Errorf("expected a zero listing price, got %s", rec.Body.String())
	}
}

func TestHandleListingErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"unknown platform", `{"platform":"unknown","item_cost":1}`, http.StatusNotFound, "UNKNOWN_PLATFORM"},
		{"unknown category", `{"platform":"ebay","category":"NotACategory"}`, http.StatusNotFound, "UNKNOWN_CATEGORY"},
		{"missing category", `{"platform":"ebay"}`, http.StatusNotFound, "UNKNOWN_CATEGORY"},
		{"bad json", `{"platform":`, http.StatusBadRequest, "INVALID_JSON"},
	}

	s := newTestServer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/listing", tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, resp.Error.Code)
			}
		})
	}
}

func TestHandleCompare(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/compare",
		`{"category":"Sneakers","item_cost":100,"desired_profit":40,"seller_paid_shipping":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp CompareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(resp.Quotes))
	}
	if resp.Quotes[0].Platform != "ebay" {
		t.Errorf("expected ebay first, got %s", resp.Quotes[0].Platform)
	}
}

func TestHandlePlatformsAndCategories(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/platforms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("platforms: %d", rec.Code)
	}
	var platforms struct {
		Platforms []PlatformInfo `json:"platforms"`
		Count     int            `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &platforms); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if platforms.Count != 3 || platforms.Platforms[1] != (PlatformInfo{ID: "ebay", Categorized: true}) {
		t.Errorf("unexpected platforms %+v", platforms)
	}

	rec = do(t, s, http.MethodGet, "/platforms/ebay/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("categories: %d", rec.Code)
	}
	var categories struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(categories.Categories) != 11 || categories.Categories[8] != "Watches & Parts" {
		t.Errorf("unexpected categories %v", categories.Categories)
	}

	rec = do(t, s, http.MethodGet, "/platforms/etsy/categories", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for flat platform, got %d", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/platforms/nope/categories", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown platform, got %d", rec.Code)
	}
}

func TestHealthAndVersion(t *testing.T) {
	s := newTestServer()
	if rec := do(t, s, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: %d", rec.Code)
	}
	rec := do(t, s, http.MethodGet, "/version", "")
	if !strings.Contains(rec.Body.String(), `"version":"test"`) {
		t.Errorf("unexpected version body %s", rec.Body.String())
	}
}
