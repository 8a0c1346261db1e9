// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// FilterByDate keeps papers published within [from, to], inclusive on both
// ends, preserving order. A zero bound is unbounded on that side; with both
// bounds zero the input is returned unchanged. Bounds are expected to be
// well-formed calendar dates supplied by the caller.
func FilterByDate(papers []types.Paper, from, to time.Time) []types.Paper {
	if from.IsZero() && to.IsZero() {
		return papers
	}

	kept := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if !from.IsZero() && p.Published.Before(from) {
			continue
		}
		if !to.IsZero() && p.Published.After(to) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
