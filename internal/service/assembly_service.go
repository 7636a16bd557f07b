package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/nkritika/prepforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssemblyService produces the student-facing view of a test. The payload type
// has no answer-key fields at all; the key stays server-side for grading.
type AssemblyService interface {
	AssembleTest(testID uint) (*dto.AssembledTestDTO, error)
}

type assemblyService struct {
	testRepo repository.TestRepository
}

func NewAssemblyService(testRepo repository.TestRepository) AssemblyService {
	return &assemblyService{testRepo: testRepo}
}

func (s *assemblyService) AssembleTest(testID uint) (*dto.AssembledTestDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("test %d", testID)
		}
		log.Error().Err(err).Uint("test_id", testID).Msg("Failed to load test for assembly")
		return nil, err
	}
	if len(test.Questions) == 0 {
		// An empty test is a setup mistake, not a 0-question quiz.
		return nil, &apperr.ConfigurationError{Msg: fmt.Sprintf("test %d has no questions", testID)}
	}

	return assembleResponse(test)
}

func assembleResponse(test *model.Test) (*dto.AssembledTestDTO, error) {
	var resp dto.AssembledTestDTO
	if err := copier.Copy(&resp.Test, test); err != nil {
		return nil, fmt.Errorf("error preparing assembled test: %w", err)
	}
	resp.Questions = make([]dto.QuestionStudentDTO, len(test.Questions))
	for i, question := range test.Questions {
		if err := copier.Copy(&resp.Questions[i], &question); err != nil {
			return nil, fmt.Errorf("error preparing assembled question: %w", err)
		}
	}
	return &resp, nil
}
