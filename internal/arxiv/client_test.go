// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

func testRequest() types.SearchRequest {
	return types.SearchRequest{
		Query:      "attention",
		SearchIn:   types.FieldAll,
		MaxResults: 10,
		SortBy:     types.SortRelevance,
	}
}

func TestClientSearchRequestParameters(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, sampleFeed)
	}))
	defer ts.Close()

	c := NewClient(types.SearchConfig{BaseURL: ts.URL}, nil)
	if _, err := c.Search(context.Background(), testRequest()); err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := map[string]string{
		"search_query": `all:"attention"`,
		"start":        "0",
		"max_results":  "20", // twice the requested page size
		"sortBy":       "relevance",
		"sortOrder":    "descending",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("param %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestClientSearchDateSortHint(t *testing.T) {
	var sortBy string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sortBy = r.URL.Query().Get("sortBy")
		fmt.Fprint(w, sampleFeed)
	}))
	defer ts.Close()

	c := NewClient(types.SearchConfig{BaseURL: ts.URL}, nil)
	req := testRequest()
	req.SortBy = types.SortDate
	if _, err := c.Search(context.Background(), req); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if sortBy != "submittedDate" {
		t.Errorf("sortBy hint = %q, want submittedDate", sortBy)
	}
}

func TestClientSearchParsesFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleFeed)
	}))
	defer ts.Close()

	c := NewClient(types.SearchConfig{BaseURL: ts.URL}, nil)
	papers, err := c.Search(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("len(papers) = %d, want 2", len(papers))
	}
	if papers[0].ArxivID != "1706.03762v5" {
		t.Errorf("ArxivID = %q", papers[0].ArxivID)
	}
}

func TestClientSearchUpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(types.SearchConfig{BaseURL: ts.URL}, nil)
	_, err := c.Search(context.Background(), testRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestClientSearchTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused

	c := NewClient(types.SearchConfig{BaseURL: ts.URL}, nil)
	_, err := c.Search(context.Background(), testRequest())
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestClientSendsUserAgent(t *testing.T) {
	var ua string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		fmt.Fprint(w, sampleFeed)
	}))
	defer ts.Close()

	c := NewClient(types.SearchConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "scout-test/9.9"},
		BaseURL:    ts.URL,
	}, nil)
	if _, err := c.Search(context.Background(), testRequest()); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if ua != "scout-test/9.9" {
		t.Errorf("User-Agent = %q", ua)
	}
}
