// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SearchField selects which arXiv field the free-text query is matched against.
type SearchField string

const (
	FieldAll      SearchField = "all"
	FieldTitle    SearchField = "title"
	FieldAbstract SearchField = "abstract"
	FieldAuthor   SearchField = "author"
)

// SortMode selects the ordering of the result page.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDate      SortMode = "date"
)

// DefaultMaxResults is the page size used when the caller does not set one.
const DefaultMaxResults = 20

// SearchRequest holds one search call's parameters. A request is immutable
// once constructed; Normalize fills defaults before validation.
type SearchRequest struct {
	// Query is the free-text query. Required.
	Query string `json:"query" yaml:"query"`

	// SearchIn restricts the query to one arXiv field. Defaults to all.
	SearchIn SearchField `json:"searchIn" yaml:"search_in"`

	// Categories restricts results to arXiv taxonomy codes (e.g. "cs.LG").
	// Empty means unrestricted.
	Categories []string `json:"categories" yaml:"categories"`

	// Authors is an additional author constraint, ANDed with the field
	// clause even when SearchIn is already author.
	Authors string `json:"authors" yaml:"authors"`

	// DateFrom and DateTo bound the publication date inclusively. Zero
	// values mean unbounded.
	DateFrom time.Time `json:"-" yaml:"date_from"`
	DateTo   time.Time `json:"-" yaml:"date_to"`

	// MaxResults is the final page size. Defaults to DefaultMaxResults.
	MaxResults int `json:"maxResults" yaml:"max_results"`

	// SortBy orders the final page. Defaults to relevance.
	SortBy SortMode `json:"sortBy" yaml:"sort_by"`
}

// Normalize returns a copy with defaults applied for unset optional fields.
func (r SearchRequest) Normalize() SearchRequest {
	if r.SearchIn == "" {
		r.SearchIn = FieldAll
	}
	if r.SortBy == "" {
		r.SortBy = SortRelevance
	}
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	return r
}

// Validate checks the request. Callers should Normalize first.
func (r SearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
		validation.Field(&r.SearchIn, validation.In(FieldAll, FieldTitle, FieldAbstract, FieldAuthor)),
		validation.Field(&r.SortBy, validation.In(SortRelevance, SortDate)),
		validation.Field(&r.MaxResults, validation.Min(1)),
	)
}

// EchoedFilters repeats the filters a search was executed with, so the
// caller can render the active filter state alongside the results.
type EchoedFilters struct {
	Categories []string `json:"categories" yaml:"categories"`
	DateFrom   string   `json:"dateFrom,omitempty" yaml:"date_from,omitempty"`
	DateTo     string   `json:"dateTo,omitempty" yaml:"date_to,omitempty"`
	SortBy     SortMode `json:"sortBy" yaml:"sort_by"`
}

// SearchResponse is the success payload of one search call. Total counts the
// returned page, not the upstream match count.
type SearchResponse struct {
	Papers  []Paper       `json:"papers" yaml:"papers"`
	Total   int           `json:"total" yaml:"total"`
	Filters EchoedFilters `json:"filters" yaml:"filters"`
}
