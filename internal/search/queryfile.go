// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// QueryFile is the on-disk representation of one search and its results.
// A search can be saved to a file and reloaded later without re-querying
// the arXiv API.
type QueryFile struct {
	Request RequestParams `yaml:"request"`
	Papers  []types.Paper `yaml:"papers"`
	Summary QuerySummary  `yaml:"summary"`
}

// RequestParams stores the request in a serializable form (dates as strings).
type RequestParams struct {
	Query      string   `yaml:"query"`
	SearchIn   string   `yaml:"search_in,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	Authors    string   `yaml:"authors,omitempty"`
	DateFrom   string   `yaml:"date_from,omitempty"`
	DateTo     string   `yaml:"date_to,omitempty"`
	MaxResults int      `yaml:"max_results,omitempty"`
	SortBy     string   `yaml:"sort_by,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves a request and its results to a YAML file.
func WriteQueryFile(path string, req types.SearchRequest, resp types.SearchResponse) error {
	qf := QueryFile{
		Request: RequestParams{
			Query:      req.Query,
			SearchIn:   string(req.SearchIn),
			Categories: req.Categories,
			Authors:    req.Authors,
			MaxResults: req.MaxResults,
			SortBy:     string(req.SortBy),
		},
		Papers: resp.Papers,
		Summary: QuerySummary{
			Total:     resp.Total,
			Timestamp: time.Now(),
		},
	}
	if !req.DateFrom.IsZero() {
		qf.Request.DateFrom = req.DateFrom.Format(dateFmt)
	}
	if !req.DateTo.IsZero() {
		qf.Request.DateTo = req.DateTo.Format(dateFmt)
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToRequest converts stored RequestParams back into a SearchRequest.
func (p RequestParams) ToRequest() (types.SearchRequest, error) {
	req := types.SearchRequest{
		Query:      p.Query,
		SearchIn:   types.SearchField(p.SearchIn),
		Categories: p.Categories,
		Authors:    p.Authors,
		MaxResults: p.MaxResults,
		SortBy:     types.SortMode(p.SortBy),
	}
	if p.DateFrom != "" {
		t, err := time.Parse(dateFmt, p.DateFrom)
		if err != nil {
			return req, fmt.Errorf("invalid date_from %q: %w", p.DateFrom, err)
		}
		req.DateFrom = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(dateFmt, p.DateTo)
		if err != nil {
			return req, fmt.Errorf("invalid date_to %q: %w", p.DateTo, err)
		}
		req.DateTo = t
	}
	return req.Normalize(), nil
}
