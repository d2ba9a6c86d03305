// Package api - Listing handlers
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"listing-price/core/output"
	"listing-price/internal/errors"
)

const maxBodyBytes = 1 << 16

// handleListing handles POST /listing
func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body ListingRequest
	if !s.decode(w, r, &body) {
		return
	}

	req := body.ToDomain()
	b, err := s.engine.ComputeListing(req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	category := ""
	if canonical, ok := s.engine.Catalog().CanonicalCategory(req.Platform, req.Category); ok {
		category = canonical
	}
	view := output.SingleReport(req, b, true).Quotes[0]
	view.Category = category

	s.writeJSON(w, ListingResponse{
		QuoteView:  view,
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body ListingRequest
	if !s.decode(w, r, &body) {
		return
	}

	report := output.CompareReport(s.engine.Compare(body.ToDomain()), true)
	s.writeJSON(w, CompareResponse{
		Quotes:     report.Quotes,
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handlePlatforms handles GET /platforms
func (s *Server) handlePlatforms(w http.ResponseWriter, r *http.Request) {
	catalog := s.engine.Catalog()
	platforms := catalog.Platforms()
	infos := make([]PlatformInfo, 0, len(platforms))
	for _, p := range platforms {
		infos = append(infos, PlatformInfo{ID: p, Categorized: catalog.IsCategorized(p)})
	}
	s.writeJSON(w, map[string]interface{}{
		"platforms": infos,
		"count":     len(infos),
	}, http.StatusOK)
}

// handleCategories handles GET /platforms/{platform}/categories
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	categories, err := s.engine.Catalog().CategoriesFor(platform)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"platform":   platform,
		"categories": categories,
	}, http.StatusOK)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	view := output.ErrorOf(err)
	s.writeError(w, view.Code, view.Message, statusFor(err))
}

// statusFor maps domain error types onto HTTP status codes.
func statusFor(err error) int {
	e, ok := errors.As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Type {
	case errors.TypeUnknownPlatform, errors.TypeUnknownCategory:
		return http.StatusNotFound
	case errors.TypeNotCategorized, errors.TypeInput:
		return http.StatusBadRequest
	case errors.TypeNegativeResult:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
