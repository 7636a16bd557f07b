package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankForScore(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		score     float64
		wantRank  int
		wantTotal int
	}{
		{
			name:      "ties share the highest rank",
			scores:    []float64{5.0, 3.0, 3.0, 1.0},
			score:     3.0,
			wantRank:  2,
			wantTotal: 4,
		},
		{
			name:      "top score ranks first",
			scores:    []float64{5.0, 3.0, 1.0},
			score:     5.0,
			wantRank:  1,
			wantTotal: 3,
		},
		{
			name:      "lowest score ranks last",
			scores:    []float64{5.0, 3.0, 1.0},
			score:     1.0,
			wantRank:  3,
			wantTotal: 3,
		},
		{
			name:      "first ever result ranks first",
			scores:    []float64{2.5},
			score:     2.5,
			wantRank:  1,
			wantTotal: 1,
		},
		{
			name:      "negative scores keep true ordering",
			scores:    []float64{1.0, -0.5, -1.0},
			score:     -0.5,
			wantRank:  2,
			wantTotal: 3,
		},
		{
			name:      "probe score absent from history slots in",
			scores:    []float64{5.0, 3.0, 1.0},
			score:     4.0,
			wantRank:  2,
			wantTotal: 3,
		},
		{
			name:      "probe below every result ranks after all",
			scores:    []float64{5.0, 3.0},
			score:     0.0,
			wantRank:  3,
			wantTotal: 2,
		},
		{
			name:      "empty history",
			scores:    nil,
			score:     1.0,
			wantRank:  1,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rank, total := rankForScore(tt.scores, tt.score)
			assert.Equal(t, tt.wantRank, rank)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestRankForScoreDoesNotMutateInput(t *testing.T) {
	scores := []float64{1.0, 5.0, 3.0}
	rankForScore(scores, 3.0)
	assert.Equal(t, []float64{1.0, 5.0, 3.0}, scores)
}
