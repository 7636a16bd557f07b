package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/nkritika/prepforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService owns the question bank. Bulk inserts are all-or-nothing:
// one bad item rejects the whole batch with the offending indices, so a noisy
// source (CSV upload, AI generator) can never half-populate a test.
type QuestionService interface {
	AddQuestion(testID uint, req dto.QuestionCreateDTO) (*dto.QuestionAdminDTO, error)
	BulkAdd(testID uint, items []dto.QuestionCreateDTO) (int, error)
	ListForTest(testID uint) ([]dto.QuestionAdminDTO, error)
}

type questionService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{testRepo: testRepo, questionRepo: questionRepo}
}

// validateQuestion checks one set of question fields. The returned error, if
// any, is suitable as a per-index reason in a batch rejection.
func validateQuestion(q dto.QuestionCreateDTO) error {
	if strings.TrimSpace(q.TextPrimary) == "" {
		return apperr.Validationf("text_primary must not be empty")
	}
	options := []struct {
		name  string
		value string
	}{
		{"option_a", q.OptionA},
		{"option_b", q.OptionB},
		{"option_c", q.OptionC},
		{"option_d", q.OptionD},
	}
	for _, opt := range options {
		if strings.TrimSpace(opt.value) == "" {
			return apperr.Validationf("%s must not be empty", opt.name)
		}
	}
	switch strings.ToUpper(strings.TrimSpace(q.CorrectOption)) {
	case "A", "B", "C", "D":
		return nil
	default:
		return apperr.Validationf("correct_option must be one of A, B, C, D, got %q", q.CorrectOption)
	}
}

func questionFromDTO(testID uint, q dto.QuestionCreateDTO) model.Question {
	return model.Question{
		TestID:        testID,
		TextPrimary:   q.TextPrimary,
		TextSecondary: q.TextSecondary,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectOption: strings.ToUpper(strings.TrimSpace(q.CorrectOption)),
		Explanation:   q.Explanation,
	}
}

func (s *questionService) AddQuestion(testID uint, req dto.QuestionCreateDTO) (*dto.QuestionAdminDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d", testID)
		}
		return nil, err
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	question := questionFromDTO(testID, req)
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("test_id", testID).Msg("Failed to create question")
		return nil, err
	}

	var resp dto.QuestionAdminDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) BulkAdd(testID uint, items []dto.QuestionCreateDTO) (int, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFoundf("test %d", testID)
		}
		return 0, err
	}
	if len(items) == 0 {
		return 0, apperr.Validationf("batch must contain at least one question")
	}

	var bad []apperr.BatchItemError
	questions := make([]model.Question, 0, len(items))
	for i, item := range items {
		if err := validateQuestion(item); err != nil {
			bad = append(bad, apperr.BatchItemError{Index: i, Reason: err.Error()})
			continue
		}
		questions = append(questions, questionFromDTO(testID, item))
	}
	if len(bad) > 0 {
		return 0, &apperr.BatchValidationError{Items: bad}
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Uint("test_id", testID).Int("count", len(questions)).Msg("Failed to insert question batch")
		return 0, err
	}
	log.Info().Uint("test_id", testID).Int("count", len(questions)).Msg("Question batch inserted")
	return len(questions), nil
}

func (s *questionService) ListForTest(testID uint) ([]dto.QuestionAdminDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d", testID)
		}
		return nil, err
	}
	questions, err := s.questionRepo.FindByTestID(testID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.QuestionAdminDTO, 0, len(questions))
	for _, question := range questions {
		var d dto.QuestionAdminDTO
		if err := copier.Copy(&d, &question); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
