// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"sort"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Rank sorts papers by the requested mode and truncates to maxResults.
//
// Both sorts are stable and descending: ties keep their parse order. An
// unscored paper sorts as score zero. maxResults <= 0 disables truncation.
func Rank(papers []types.Paper, sortBy types.SortMode, maxResults int) []types.Paper {
	ranked := make([]types.Paper, len(papers))
	copy(ranked, papers)

	switch sortBy {
	case types.SortDate:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Published.After(ranked[j].Published)
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Score() > ranked[j].Score()
		})
	}

	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}
