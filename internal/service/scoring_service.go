package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/nkritika/prepforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ScoringService grades a submission against the stored answer key and
// persists exactly one immutable Result row per submission.
type ScoringService interface {
	Submit(testID, userID uint, req dto.SubmissionDTO) (*dto.ScoreReportDTO, error)
	ResultsForUser(testID, userID uint) ([]dto.ResultSummaryDTO, error)
}

type scoringService struct {
	testRepo   repository.TestRepository
	userRepo   repository.UserRepository
	resultRepo repository.ResultRepository
}

func NewScoringService(
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
	resultRepo repository.ResultRepository,
) ScoringService {
	return &scoringService{testRepo: testRepo, userRepo: userRepo, resultRepo: resultRepo}
}

type gradeOutcome struct {
	Score        float64
	CorrectCount int
	WrongCount   int
	Total        int
}

// gradeAnswers applies the marking rules:
//   - an unanswered question contributes 0;
//   - a correct answer adds 1.0;
//   - a wrong answer subtracts the test's negative-marking fraction.
//
// The total is never clamped; a negative score is a real score and the
// leaderboard depends on its true ordering. Any answer keyed by a question
// outside the test, or carrying an option outside A-D, rejects the whole
// submission.
func gradeAnswers(questions []model.Question, answers map[uint]string, negativeMarking float64) (gradeOutcome, error) {
	known := make(map[uint]string, len(questions))
	for _, q := range questions {
		known[q.ID] = q.CorrectOption
	}
	for id := range answers {
		if _, ok := known[id]; !ok {
			return gradeOutcome{}, apperr.Validationf("question %d does not belong to this test", id)
		}
	}

	outcome := gradeOutcome{Total: len(questions)}
	for _, q := range questions {
		raw, attempted := answers[q.ID]
		if !attempted {
			continue
		}
		submitted := strings.ToUpper(strings.TrimSpace(raw))
		switch submitted {
		case "A", "B", "C", "D":
		default:
			return gradeOutcome{}, apperr.Validationf("question %d: invalid option %q", q.ID, raw)
		}
		if submitted == q.CorrectOption {
			outcome.Score += 1.0
			outcome.CorrectCount++
		} else {
			outcome.Score -= negativeMarking
			outcome.WrongCount++
		}
	}
	return outcome, nil
}

func (s *scoringService) Submit(testID, userID uint, req dto.SubmissionDTO) (*dto.ScoreReportDTO, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %d", userID)
		}
		return nil, err
	}
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d", testID)
		}
		return nil, err
	}
	if len(test.Questions) == 0 {
		return nil, &apperr.ConfigurationError{Msg: fmt.Sprintf("test %d has no questions", testID)}
	}

	outcome, err := gradeAnswers(test.Questions, req.Answers, test.NegativeMarking)
	if err != nil {
		return nil, err
	}

	result := model.Result{
		UserID:       userID,
		TestID:       testID,
		Score:        outcome.Score,
		CorrectCount: outcome.CorrectCount,
		WrongCount:   outcome.WrongCount,
		CreatedAt:    time.Now(),
	}
	// Grading happens entirely in memory, so this single insert is the whole
	// write: it either lands or the submission leaves no trace.
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("test_id", testID).Uint("user_id", userID).Msg("Failed to persist result")
		return nil, err
	}

	log.Info().
		Uint("test_id", testID).
		Uint("user_id", userID).
		Float64("score", outcome.Score).
		Int("correct", outcome.CorrectCount).
		Int("wrong", outcome.WrongCount).
		Msg("Submission graded")

	return &dto.ScoreReportDTO{
		ResultID:       result.ID,
		Score:          outcome.Score,
		CorrectCount:   outcome.CorrectCount,
		WrongCount:     outcome.WrongCount,
		TotalQuestions: outcome.Total,
	}, nil
}

func (s *scoringService) ResultsForUser(testID, userID uint) ([]dto.ResultSummaryDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d", testID)
		}
		return nil, err
	}
	results, err := s.resultRepo.FindByTestAndUser(testID, userID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.ResultSummaryDTO, len(results))
	for i, result := range results {
		dtos[i] = dto.ResultSummaryDTO{
			ID:           result.ID,
			TestID:       result.TestID,
			Score:        result.Score,
			CorrectCount: result.CorrectCount,
			WrongCount:   result.WrongCount,
			CreatedAt:    result.CreatedAt,
		}
	}
	return dtos, nil
}
