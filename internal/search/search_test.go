// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// stubProvider returns canned papers without touching the network.
type stubProvider struct {
	papers []types.Paper
	err    error
	calls  int
	got    types.SearchRequest
}

func (s *stubProvider) Search(_ context.Context, req types.SearchRequest) ([]types.Paper, error) {
	s.calls++
	s.got = req
	return s.papers, s.err
}

func TestRunEmptyQueryRejectedBeforeFetch(t *testing.T) {
	p := &stubProvider{}
	_, err := Run(context.Background(), p, types.SearchRequest{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
	if p.calls != 0 {
		t.Errorf("provider called %d times, want 0 (fail before upstream)", p.calls)
	}
}

func TestRunInvalidSortRejected(t *testing.T) {
	_, err := Run(context.Background(), &stubProvider{}, types.SearchRequest{
		Query:  "x",
		SortBy: types.SortMode("newest"),
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("err = %v, want ErrInvalidRequest", err)
	}
}

func TestRunProviderFailureSurfacesOnce(t *testing.T) {
	boom := errors.New("upstream down")
	resp, err := Run(context.Background(), &stubProvider{err: boom}, types.SearchRequest{Query: "x"})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the provider error", err)
	}
	if len(resp.Papers) != 0 {
		t.Error("no partial results on failure")
	}
}

func TestRunAppliesDefaults(t *testing.T) {
	p := &stubProvider{}
	_, err := Run(context.Background(), p, types.SearchRequest{Query: "x"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.got.MaxResults != types.DefaultMaxResults {
		t.Errorf("MaxResults = %d, want default %d", p.got.MaxResults, types.DefaultMaxResults)
	}
	if p.got.SearchIn != types.FieldAll || p.got.SortBy != types.SortRelevance {
		t.Errorf("defaults not applied: %+v", p.got)
	}
}

func TestRunRelevancePipeline(t *testing.T) {
	p := &stubProvider{papers: []types.Paper{
		{Title: "Transformer Models for X", Summary: "neutral", Published: oldDate},
		{Title: "Unrelated Study", Summary: "neutral", Published: oldDate},
		{Title: "A Survey of Transformer Architectures", Summary: "neutral", Published: oldDate},
	}}

	resp, err := Run(context.Background(), p, types.SearchRequest{
		Query:      "transformer models",
		SearchIn:   types.FieldAll,
		SortBy:     types.SortRelevance,
		MaxResults: 2,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if resp.Total != 2 || len(resp.Papers) != 2 {
		t.Fatalf("Total = %d, len = %d, want 2", resp.Total, len(resp.Papers))
	}
	// The exact-phrase title outranks the partial-term title; the
	// unrelated entry falls off the page.
	if resp.Papers[0].Title != "Transformer Models for X" {
		t.Errorf("Papers[0] = %q", resp.Papers[0].Title)
	}
	if resp.Papers[1].Title != "A Survey of Transformer Architectures" {
		t.Errorf("Papers[1] = %q", resp.Papers[1].Title)
	}
	if resp.Papers[0].Score() <= resp.Papers[1].Score() {
		t.Errorf("scores not descending: %v, %v", resp.Papers[0].Score(), resp.Papers[1].Score())
	}
}

func TestRunDateFilterPipeline(t *testing.T) {
	p := &stubProvider{papers: []types.Paper{
		dayPaper("too early", "2022-12-01"),
		dayPaper("in range", "2023-03-15"),
		dayPaper("too late", "2023-08-01"),
	}}

	from, _ := time.Parse("2006-01-02", "2023-01-01")
	to, _ := time.Parse("2006-01-02", "2023-06-30")
	resp, err := Run(context.Background(), p, types.SearchRequest{
		Query:    "anything",
		DateFrom: from,
		DateTo:   to,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if resp.Total != 1 || resp.Papers[0].Title != "in range" {
		t.Errorf("resp = %+v, want only the 2023-03-15 paper", resp.Papers)
	}
}

func TestRunTotalCountsReturnedPage(t *testing.T) {
	var papers []types.Paper
	for i := 0; i < 9; i++ {
		papers = append(papers, types.Paper{Title: "p", Published: oldDate})
	}
	resp, err := Run(context.Background(), &stubProvider{papers: papers}, types.SearchRequest{
		Query:      "x",
		MaxResults: 3,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Total reflects the truncated page, not the candidate count.
	if resp.Total != 3 {
		t.Errorf("Total = %d, want 3", resp.Total)
	}
}

func TestRunEchoesFilters(t *testing.T) {
	from, _ := time.Parse("2006-01-02", "2023-01-01")
	resp, err := Run(context.Background(), &stubProvider{}, types.SearchRequest{
		Query:      "x",
		Categories: []string{"cs.LG", "cs.AI"},
		DateFrom:   from,
		SortBy:     types.SortDate,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	f := resp.Filters
	if len(f.Categories) != 2 || f.Categories[0] != "cs.LG" {
		t.Errorf("Filters.Categories = %v", f.Categories)
	}
	if f.DateFrom != "2023-01-01" || f.DateTo != "" {
		t.Errorf("Filters dates = %q / %q", f.DateFrom, f.DateTo)
	}
	if f.SortBy != types.SortDate {
		t.Errorf("Filters.SortBy = %q", f.SortBy)
	}
}

func TestRunEveryPaperScored(t *testing.T) {
	p := &stubProvider{papers: []types.Paper{
		{Title: "a", Published: oldDate},
		{Title: "b", Published: oldDate},
	}}
	resp, err := Run(context.Background(), p, types.SearchRequest{Query: "x"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, paper := range resp.Papers {
		if paper.RelevanceScore == nil {
			t.Errorf("Papers[%d] missing relevance score", i)
		}
	}
}
