package service

import (
	"testing"

	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestionTest() []model.Question {
	return []model.Question{
		{ID: 1, TestID: 10, CorrectOption: "A"},
		{ID: 2, TestID: 10, CorrectOption: "B"},
		{ID: 3, TestID: 10, CorrectOption: "C"},
	}
}

func TestGradeAnswers(t *testing.T) {
	tests := []struct {
		name        string
		questions   []model.Question
		answers     map[uint]string
		penalty     float64
		wantScore   float64
		wantCorrect int
		wantWrong   int
	}{
		{
			name:        "one correct one wrong one unattempted",
			questions:   threeQuestionTest(),
			answers:     map[uint]string{1: "A", 2: "C"},
			penalty:     0.33,
			wantScore:   1.0 - 0.33,
			wantCorrect: 1,
			wantWrong:   1,
		},
		{
			name: "all wrong goes negative without clamping",
			questions: []model.Question{
				{ID: 1, CorrectOption: "A"},
				{ID: 2, CorrectOption: "B"},
			},
			answers:     map[uint]string{1: "B", 2: "A"},
			penalty:     0.5,
			wantScore:   -1.0,
			wantCorrect: 0,
			wantWrong:   2,
		},
		{
			name:        "empty submission scores zero",
			questions:   threeQuestionTest(),
			answers:     map[uint]string{},
			penalty:     0.33,
			wantScore:   0,
			wantCorrect: 0,
			wantWrong:   0,
		},
		{
			name:        "lowercase and padded options are accepted",
			questions:   threeQuestionTest(),
			answers:     map[uint]string{1: " a ", 2: "b"},
			penalty:     0.33,
			wantScore:   2.0,
			wantCorrect: 2,
			wantWrong:   0,
		},
		{
			name:        "no penalty when negative marking is zero",
			questions:   threeQuestionTest(),
			answers:     map[uint]string{1: "B", 2: "B", 3: "C"},
			penalty:     0,
			wantScore:   2.0,
			wantCorrect: 2,
			wantWrong:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := gradeAnswers(tt.questions, tt.answers, tt.penalty)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantScore, outcome.Score, 1e-9)
			assert.Equal(t, tt.wantCorrect, outcome.CorrectCount)
			assert.Equal(t, tt.wantWrong, outcome.WrongCount)
			assert.Equal(t, len(tt.questions), outcome.Total)
		})
	}
}

func TestGradeAnswersRejectsForeignQuestion(t *testing.T) {
	_, err := gradeAnswers(threeQuestionTest(), map[uint]string{99: "A"}, 0.33)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "99")
}

func TestGradeAnswersRejectsInvalidOption(t *testing.T) {
	_, err := gradeAnswers(threeQuestionTest(), map[uint]string{1: "E"}, 0.33)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

type fakeResultRepo struct {
	stored []model.Result
}

func (f *fakeResultRepo) Create(result *model.Result) error {
	result.ID = uint(len(f.stored) + 1)
	f.stored = append(f.stored, *result)
	return nil
}

func (f *fakeResultRepo) FindScoresByTestID(testID uint) ([]float64, error) {
	var scores []float64
	for _, r := range f.stored {
		if r.TestID == testID {
			scores = append(scores, r.Score)
		}
	}
	return scores, nil
}

func (f *fakeResultRepo) FindByTestAndUser(testID, userID uint) ([]model.Result, error) {
	var out []model.Result
	for _, r := range f.stored {
		if r.TestID == testID && r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newScoringServiceForTest() (ScoringService, *fakeResultRepo, *fakeUserRepo) {
	testRepo := &fakeTestRepo{tests: map[uint]*model.Test{10: {
		ID:              10,
		Title:           "Geo Basics",
		NegativeMarking: 0.33,
		Questions:       threeQuestionTest(),
	}}}
	resultRepo := &fakeResultRepo{}
	userRepo := newFakeUserRepo()
	userRepo.Create(&model.User{Username: "asha", Role: model.RoleStudent})
	return NewScoringService(testRepo, userRepo, resultRepo), resultRepo, userRepo
}

func TestSubmitPersistsOneResult(t *testing.T) {
	svc, resultRepo, _ := newScoringServiceForTest()

	report, err := svc.Submit(10, 1, dto.SubmissionDTO{Answers: map[uint]string{1: "A", 2: "C"}})
	require.NoError(t, err)

	assert.InDelta(t, 0.67, report.Score, 1e-9)
	assert.Equal(t, 1, report.CorrectCount)
	assert.Equal(t, 1, report.WrongCount)
	assert.Equal(t, 3, report.TotalQuestions)
	assert.NotZero(t, report.ResultID)

	require.Len(t, resultRepo.stored, 1)
	assert.InDelta(t, 0.67, resultRepo.stored[0].Score, 1e-9)

	// A resubmission adds a second row; history is never overwritten.
	_, err = svc.Submit(10, 1, dto.SubmissionDTO{Answers: map[uint]string{1: "A", 2: "B", 3: "C"}})
	require.NoError(t, err)
	assert.Len(t, resultRepo.stored, 2)
}

func TestSubmitStrayQuestionPersistsNothing(t *testing.T) {
	svc, resultRepo, _ := newScoringServiceForTest()

	_, err := svc.Submit(10, 1, dto.SubmissionDTO{Answers: map[uint]string{1: "A", 99: "B"}})
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, resultRepo.stored, "a rejected submission must not write a Result")
}

func TestSubmitUnknownTestOrUser(t *testing.T) {
	svc, _, _ := newScoringServiceForTest()

	_, err := svc.Submit(404, 1, dto.SubmissionDTO{Answers: map[uint]string{}})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Submit(10, 404, dto.SubmissionDTO{Answers: map[uint]string{}})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubmitEmptyTestIsConfigurationError(t *testing.T) {
	testRepo := &fakeTestRepo{tests: map[uint]*model.Test{11: {ID: 11, Title: "Empty"}}}
	userRepo := newFakeUserRepo()
	userRepo.Create(&model.User{Username: "asha"})
	svc := NewScoringService(testRepo, userRepo, &fakeResultRepo{})

	_, err := svc.Submit(11, 1, dto.SubmissionDTO{Answers: map[uint]string{}})
	var configErr *apperr.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}
