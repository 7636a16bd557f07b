package dto

import "time"

// AssembledTestDTO is what a student receives when starting a test.
type AssembledTestDTO struct {
	Test      TestResponseDTO      `json:"test"`
	Questions []QuestionStudentDTO `json:"questions"`
}

// SubmissionDTO maps question id -> chosen option. Absent ids count as
// unattempted; ids outside the test reject the whole submission.
type SubmissionDTO struct {
	Answers map[uint]string `json:"answers" binding:"required"`
}

type ScoreReportDTO struct {
	ResultID       uint    `json:"result_id"`
	Score          float64 `json:"score"`
	CorrectCount   int     `json:"correct"`
	WrongCount     int     `json:"wrong"`
	TotalQuestions int     `json:"total_questions"`
}

type RankDTO struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

type ResultSummaryDTO struct {
	ID           uint      `json:"id"`
	TestID       uint      `json:"test_id"`
	Score        float64   `json:"score"`
	CorrectCount int       `json:"correct_count"`
	WrongCount   int       `json:"wrong_count"`
	CreatedAt    time.Time `json:"created_at"`
}
