package service

import (
	"errors"
	"sort"

	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/repository"
	"gorm.io/gorm"
)

// LeaderboardService ranks a score among every Result ever recorded for a
// test. It recomputes from the full history on each call, which is fine at the
// history sizes this sees; nothing incremental is kept.
type LeaderboardService interface {
	ComputeRank(testID uint, score float64) (*dto.RankDTO, error)
}

type leaderboardService struct {
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
}

func NewLeaderboardService(testRepo repository.TestRepository, resultRepo repository.ResultRepository) LeaderboardService {
	return &leaderboardService{testRepo: testRepo, resultRepo: resultRepo}
}

// rankForScore sorts descending and ranks by first occurrence, so tied scores
// all share the highest rank. A score not present in the history ranks where
// it would slot in, which is the same formula: one plus the count of strictly
// greater scores.
func rankForScore(scores []float64, score float64) (rank, total int) {
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	rank = len(sorted) + 1
	for i, s := range sorted {
		if s <= score {
			rank = i + 1
			break
		}
	}
	return rank, len(sorted)
}

func (s *leaderboardService) ComputeRank(testID uint, score float64) (*dto.RankDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d", testID)
		}
		return nil, err
	}
	scores, err := s.resultRepo.FindScoresByTestID(testID)
	if err != nil {
		return nil, err
	}
	rank, total := rankForScore(scores, score)
	return &dto.RankDTO{Rank: rank, Total: total}, nil
}
