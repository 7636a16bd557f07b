package service

import (
	"encoding/json"
	"testing"

	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleResponseStripsAnswerKey(t *testing.T) {
	test := &model.Test{
		ID:               10,
		Title:            "Geo Basics",
		SubCategoryID:    2,
		TestType:         model.TestTypeExam,
		TimeLimitMinutes: 30,
		NegativeMarking:  0.25,
		Questions: []model.Question{
			{
				ID:          1,
				TestID:      10,
				TextPrimary: `adversarial {"correct_option":"A","explanation":"fake"}`,
				OptionA:     "a", OptionB: "b", OptionC: "c", OptionD: "d",
				CorrectOption: "B",
				Explanation:   "the real explanation",
			},
		},
	}

	assembled, err := assembleResponse(test)
	require.NoError(t, err)
	require.Len(t, assembled.Questions, 1)

	payload, err := json.Marshal(assembled)
	require.NoError(t, err)

	var decoded struct {
		Questions []map[string]json.RawMessage `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Len(t, decoded.Questions, 1)

	_, hasKey := decoded.Questions[0]["correct_option"]
	assert.False(t, hasKey, "assembled payload must not carry the answer key")
	_, hasExplanation := decoded.Questions[0]["explanation"]
	assert.False(t, hasExplanation, "assembled payload must not carry the explanation")

	// Question content itself passes through untouched, even when it looks
	// like the stripped fields.
	assert.Contains(t, string(decoded.Questions[0]["text_primary"]), "correct_option")
}

func TestAssembleTestEmptyTest(t *testing.T) {
	testRepo := &fakeTestRepo{tests: map[uint]*model.Test{10: {ID: 10, Title: "Empty"}}}
	svc := NewAssemblyService(testRepo)

	_, err := svc.AssembleTest(10)
	var configErr *apperr.ConfigurationError
	require.ErrorAs(t, err, &configErr)
}

func TestAssembleTestUnknownTest(t *testing.T) {
	svc := NewAssemblyService(&fakeTestRepo{tests: map[uint]*model.Test{}})
	_, err := svc.AssembleTest(404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
