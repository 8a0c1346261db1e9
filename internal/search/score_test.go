// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// oldDate is comfortably outside the recency window so tests are not
// time-dependent unless they mean to be.
var oldDate = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScoreTitleTokenBonus(t *testing.T) {
	p := types.Paper{Title: "Transformer Networks", Published: oldDate}
	if got := Score(p, "transformer"); got != 10 {
		t.Errorf("Score = %v, want 10 for one title token", got)
	}
}

func TestScorePhraseBonusCompoundsPerToken(t *testing.T) {
	// Both tokens match the title and the whole query is a title
	// substring, so each token earns 10 + 20.
	p := types.Paper{Title: "Transformer Models for X", Published: oldDate}
	if got := Score(p, "transformer models"); got != 60 {
		t.Errorf("Score = %v, want 60 (phrase bonus applied per token)", got)
	}
}

func TestScoreExactPhraseBeatsScatteredTerms(t *testing.T) {
	phrase := types.Paper{Title: "Transformer Models for X", Published: oldDate}
	scattered := types.Paper{Title: "Models of the Transformer Kind", Published: oldDate}

	if Score(phrase, "transformer models") <= Score(scattered, "transformer models") {
		t.Errorf("exact phrase title should score strictly higher: %v vs %v",
			Score(phrase, "transformer models"), Score(scattered, "transformer models"))
	}
}

func TestScoreSummaryFrequencyMonotonic(t *testing.T) {
	few := types.Paper{Summary: "attention once", Published: oldDate}
	many := types.Paper{Summary: "attention attention attention", Published: oldDate}

	if Score(many, "attention") < Score(few, "attention") {
		t.Errorf("more occurrences must never score lower: %v < %v",
			Score(many, "attention"), Score(few, "attention"))
	}
	if got := Score(many, "attention"); got != 6 {
		t.Errorf("Score = %v, want 6 (2 per occurrence)", got)
	}
}

func TestScoreShortTokensIgnored(t *testing.T) {
	p := types.Paper{Title: "of an it", Summary: "of of of", Published: oldDate}
	if got := Score(p, "of an it"); got != 0 {
		t.Errorf("Score = %v, tokens of length <= 2 must not contribute", got)
	}
}

func TestScoreRecencyBonus(t *testing.T) {
	recent := types.Paper{Published: time.Now().AddDate(0, 0, -30)}
	old := types.Paper{Published: oldDate}

	if got := Score(recent, "unrelated"); got != 5 {
		t.Errorf("Score = %v, want 5 recency bonus", got)
	}
	if got := Score(old, "unrelated"); got != 0 {
		t.Errorf("Score = %v, want 0 for old paper", got)
	}
}

func TestScoreManyAuthorsPenalty(t *testing.T) {
	authors := make([]string, 11)
	for i := range authors {
		authors[i] = "Author"
	}
	p := types.Paper{Authors: authors, Published: oldDate}
	if got := Score(p, "unrelated"); got != -2 {
		t.Errorf("Score = %v, want -2 (penalty, no clamping at zero)", got)
	}

	p.Authors = authors[:10]
	if got := Score(p, "unrelated"); got != 0 {
		t.Errorf("Score = %v, exactly 10 authors must not be penalized", got)
	}
}

func TestScoreLongSummaryBonus(t *testing.T) {
	p := types.Paper{Summary: strings.Repeat("x", 1001), Published: oldDate}
	if got := Score(p, "unrelated"); got != 3 {
		t.Errorf("Score = %v, want 3 depth bonus", got)
	}
}

func TestScoreAllAttachesCopies(t *testing.T) {
	papers := []types.Paper{
		{Title: "Transformer", Published: oldDate},
		{Title: "Unrelated", Published: oldDate},
	}

	scored := ScoreAll(papers, "transformer")

	if papers[0].RelevanceScore != nil {
		t.Error("input papers must not be mutated")
	}
	if scored[0].RelevanceScore == nil || *scored[0].RelevanceScore != 10 {
		t.Errorf("scored[0].RelevanceScore = %v, want 10", scored[0].RelevanceScore)
	}
	if scored[1].RelevanceScore == nil || *scored[1].RelevanceScore != 0 {
		t.Errorf("scored[1].RelevanceScore = %v, want attached 0", scored[1].RelevanceScore)
	}
}
