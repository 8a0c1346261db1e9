// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// Scoring weights. The phrase bonus is added once per matching token, not
// once per paper; that compounding is long-standing observed behavior and
// must not be changed without a ranking review.
const (
	titleTokenBonus    = 10.0
	phraseTokenBonus   = 20.0
	summaryOccurWeight = 2.0
	recencyBonus       = 5.0
	depthBonus         = 3.0
	manyAuthorsPenalty = 2.0

	minTokenLen      = 3
	manyAuthorsLimit = 10
	longSummaryLen   = 1000

	// recencyWindow is six months, approximated as 182.5 days.
	recencyWindow = 4380 * time.Hour
)

// Score computes the relevance of a paper to the query. It is pure and
// deterministic apart from the recency term, which compares Published
// against the scoring instant. Scores can be negative; nothing clamps them.
func Score(p types.Paper, query string) float64 {
	q := strings.ToLower(query)
	title := strings.ToLower(p.Title)
	summary := strings.ToLower(p.Summary)
	phraseInTitle := q != "" && strings.Contains(title, q)

	var score float64
	for _, token := range strings.Fields(q) {
		if len(token) < minTokenLen {
			continue
		}
		if strings.Contains(title, token) {
			score += titleTokenBonus
			if phraseInTitle {
				score += phraseTokenBonus
			}
		}
		score += summaryOccurWeight * float64(strings.Count(summary, token))
	}

	if time.Since(p.Published) < recencyWindow {
		score += recencyBonus
	}
	if len(p.Authors) > manyAuthorsLimit {
		score -= manyAuthorsPenalty
	}
	if len(p.Summary) > longSummaryLen {
		score += depthBonus
	}
	return score
}

// ScoreAll attaches a relevance score to every paper, returning augmented
// copies. The inputs are never mutated and a score, once attached, is never
// recomputed.
func ScoreAll(papers []types.Paper, query string) []types.Paper {
	scored := make([]types.Paper, len(papers))
	for i, p := range papers {
		s := Score(p, query)
		p.RelevanceScore = &s
		scored[i] = p
	}
	return scored
}
