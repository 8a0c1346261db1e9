// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv API: it builds search_query strings,
// issues the HTTP request, and parses the Atom feed into Paper values.
package arxiv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-scout/internal/httputil"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// DefaultBaseURL is the public arXiv query endpoint.
const DefaultBaseURL = "https://export.arxiv.org/api/query"

// ErrUpstream marks a failed arXiv API call: a transport error or a
// non-success status. No retry is attempted; the caller sees one failure.
var ErrUpstream = errors.New("arxiv request failed")

// Client fetches search results from the arXiv API.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Logger  *zap.Logger
}

// NewClient builds a Client from config. Zero-value config fields fall back
// to the public endpoint and httputil defaults.
func NewClient(cfg types.SearchConfig, logger *zap.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:    httputil.NewClient(cfg.HTTPConfig),
		BaseURL: base,
		Logger:  logger,
	}
}

// Search issues one GET against the arXiv API and returns the parsed papers.
//
// The API is asked for twice the requested page size because the date filter
// and relevance scoring run locally, after the fetch; over-fetching leaves
// enough candidates to fill the page once they have trimmed it.
func (c *Client) Search(ctx context.Context, req types.SearchRequest) ([]types.Paper, error) {
	params := url.Values{}
	params.Set("search_query", BuildQuery(req))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(2*req.MaxResults))
	params.Set("sortBy", providerSort(req.SortBy))
	params.Set("sortOrder", "descending")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: arXiv API returned HTTP %d", ErrUpstream, resp.StatusCode)
	}

	papers := ParseFeed(resp.Body, c.Logger)
	c.Logger.Debug("arxiv fetch complete",
		zap.String("query", params.Get("search_query")),
		zap.Int("papers", len(papers)),
	)
	return papers, nil
}

// providerSort maps the request sort mode to the API's sortBy hint. The hint
// only orders the candidate fetch; the final ordering is decided locally.
func providerSort(mode types.SortMode) string {
	if mode == types.SortDate {
		return "submittedDate"
	}
	return "relevance"
}
