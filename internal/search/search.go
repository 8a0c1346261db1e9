// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search runs the search pipeline: validate the request, fetch
// candidates from the provider, filter by date, score against the query,
// rank, and truncate to one page.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// ErrInvalidRequest marks a request rejected before any upstream call.
var ErrInvalidRequest = errors.New("invalid search request")

// Provider fetches candidate papers for a request. The arXiv client
// implements this; tests substitute a stub.
type Provider interface {
	Search(ctx context.Context, req types.SearchRequest) ([]types.Paper, error)
}

const dateFmt = "2006-01-02"

// Run executes one search call end to end.
//
// The pipeline is strictly sequential and fail-fast: an invalid request
// returns before the provider is contacted, and a provider failure returns
// with no partial results. Date filtering and scoring happen locally on the
// over-fetched candidate set; Total counts the returned page.
func Run(ctx context.Context, provider Provider, req types.SearchRequest) (types.SearchResponse, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return types.SearchResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	papers, err := provider.Search(ctx, req)
	if err != nil {
		return types.SearchResponse{}, err
	}

	papers = FilterByDate(papers, req.DateFrom, req.DateTo)
	papers = ScoreAll(papers, req.Query)
	papers = Rank(papers, req.SortBy, req.MaxResults)

	return types.SearchResponse{
		Papers:  papers,
		Total:   len(papers),
		Filters: echoFilters(req),
	}, nil
}

func echoFilters(req types.SearchRequest) types.EchoedFilters {
	f := types.EchoedFilters{
		Categories: req.Categories,
		SortBy:     req.SortBy,
	}
	if !req.DateFrom.IsZero() {
		f.DateFrom = req.DateFrom.Format(dateFmt)
	}
	if !req.DateTo.IsZero() {
		f.DateTo = req.DateTo.Format(dateFmt)
	}
	return f
}
