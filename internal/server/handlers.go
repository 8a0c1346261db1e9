// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/search"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// searchBody is the frontend's POST /search payload. Dates arrive as
// YYYY-MM-DD strings.
type searchBody struct {
	Query      string   `json:"query"`
	SearchIn   string   `json:"searchIn"`
	Categories []string `json:"categories"`
	Authors    string   `json:"authors"`
	DateFrom   string   `json:"dateFrom"`
	DateTo     string   `json:"dateTo"`
	MaxResults int      `json:"maxResults"`
	SortBy     string   `json:"sortBy"`
}

const dateFmt = "2006-01-02"

func (b searchBody) toRequest() (types.SearchRequest, error) {
	req := types.SearchRequest{
		Query:      b.Query,
		SearchIn:   types.SearchField(b.SearchIn),
		Categories: b.Categories,
		Authors:    b.Authors,
		MaxResults: b.MaxResults,
		SortBy:     types.SortMode(b.SortBy),
	}
	if b.DateFrom != "" {
		t, err := time.Parse(dateFmt, b.DateFrom)
		if err != nil {
			return req, fmt.Errorf("invalid dateFrom %q", b.DateFrom)
		}
		req.DateFrom = t
	}
	if b.DateTo != "" {
		t, err := time.Parse(dateFmt, b.DateTo)
		if err != nil {
			return req, fmt.Errorf("invalid dateTo %q", b.DateTo)
		}
		req.DateTo = t
	}
	return req, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "arxiv-scout API is running",
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}

	req, err := body.toRequest()
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	resp, err := search.Run(r.Context(), s.provider, req)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, arxiv.ErrUpstream):
			s.logger.Error("upstream search failed", zap.Error(err))
			writeError(w, http.StatusBadGateway, "upstream_failed", "Failed to search arXiv")
		default:
			s.logger.Error("search failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to search arXiv")
		}
		return
	}

	if s.history != nil {
		// Best-effort: a history failure never fails the search.
		if err := s.history.Record(r.Context(), req.Normalize(), resp.Total); err != nil {
			s.logger.Warn("recording search history", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}
