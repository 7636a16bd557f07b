package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickModel(t *testing.T) {
	preferred := []string{"gemini-1.5-pro", "gemini-1.5-flash"}

	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{
			name:      "first preference available",
			available: []string{"models/gemini-1.0-pro", "models/gemini-1.5-pro", "models/gemini-1.5-flash"},
			want:      "gemini-1.5-pro",
		},
		{
			name:      "falls through priority order",
			available: []string{"models/gemini-1.0-pro", "models/gemini-1.5-flash"},
			want:      "gemini-1.5-flash",
		},
		{
			name:      "no preference matches, first available wins",
			available: []string{"models/gemini-exp-1", "models/gemini-exp-2"},
			want:      "gemini-exp-1",
		},
		{
			name:      "bare names match too",
			available: []string{"gemini-1.5-flash"},
			want:      "gemini-1.5-flash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickModel(preferred, tt.available)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPickModelNoneAvailable(t *testing.T) {
	_, err := pickModel([]string{"gemini-1.5-pro"}, nil)
	assert.Error(t, err)
}

func TestParseGeneratedQuestions(t *testing.T) {
	raw := "```json\n" + `[
		{
			"question": "2 + 2 = ?",
			"option_a": "3", "option_b": "4", "option_c": "5", "option_d": "22",
			"correct_option": "b",
			"explanation": "Basic addition."
		}
	]` + "\n```"

	items, err := parseGeneratedQuestions(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2 + 2 = ?", items[0].TextPrimary)
	assert.Equal(t, "B", items[0].CorrectOption)
	assert.Equal(t, "4", items[0].OptionB)
}

func TestParseGeneratedQuestionsRejectsGarbage(t *testing.T) {
	_, err := parseGeneratedQuestions("sorry, I cannot help with that")
	assert.Error(t, err)
}
