// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arxiv-scout: the paper
// record parsed from the arXiv Atom feed, the search request and response,
// and the configuration structs.
//
// JSON field names on Paper and SearchResponse follow the web frontend's
// wire contract and must not be renamed.
package types

import "time"

// Paper is one parsed arXiv entry. A Paper is built fresh from feed text on
// every search call and never persisted; RelevanceScore is nil until the
// scorer runs, after which it is attached for the lifetime of the value.
type Paper struct {
	// ID is the canonical arXiv abs URL (e.g. "http://arxiv.org/abs/1706.03762v1").
	ID string `json:"id" yaml:"id"`

	// ArxivID is the short identifier captured from the trailing /abs/
	// segment of ID (e.g. "1706.03762v1"). Empty when ID has no such segment.
	ArxivID string `json:"arxivId" yaml:"arxiv_id"`

	// Title is the paper title, internal whitespace collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in feed order. Duplicates are preserved.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the abstract, internal whitespace collapsed.
	Summary string `json:"summary" yaml:"summary"`

	// Published is the initial submission timestamp.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the last revision timestamp; equals Published when the
	// feed omits it.
	Updated time.Time `json:"updated" yaml:"updated"`

	// Categories lists arXiv taxonomy codes in feed order.
	Categories []string `json:"categories" yaml:"categories"`

	// PrimaryCategory is Categories[0], or "Unknown" when the entry
	// carried no categories.
	PrimaryCategory string `json:"primaryCategory" yaml:"primary_category"`

	// Link is the human-readable abstract page URL (same as ID).
	Link string `json:"link" yaml:"link"`

	// PDFLink is the feed-supplied PDF URL, or one derived from ID.
	PDFLink string `json:"pdf_link" yaml:"pdf_link"`

	// RelevanceScore is the heuristic ranking signal. Nil until scored.
	RelevanceScore *float64 `json:"relevanceScore,omitempty" yaml:"relevance_score,omitempty"`
}

// Score returns the relevance score, or 0 when the paper has not been scored.
func (p Paper) Score() float64 {
	if p.RelevanceScore == nil {
		return 0
	}
	return *p.RelevanceScore
}
