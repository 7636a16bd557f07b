package dto

import "time"

// QuestionCreateDTO is one MCQ as submitted by an admin, the CSV importer, or
// the AI generator (after parsing). Field-level checks beyond binding live in
// the question service so batch items report per-index reasons.
type QuestionCreateDTO struct {
	TextPrimary   string `json:"text_primary" binding:"required"`
	TextSecondary string `json:"text_secondary"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

type QuestionBulkCreateDTO struct {
	TestID    uint                `json:"test_id" binding:"required"`
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1"`
}

type GenerateQuestionsDTO struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count" binding:"required,min=1,max=25"`
}

// QuestionAdminDTO is the admin view, answer key included.
type QuestionAdminDTO struct {
	ID            uint      `json:"id"`
	TestID        uint      `json:"test_id"`
	TextPrimary   string    `json:"text_primary"`
	TextSecondary string    `json:"text_secondary,omitempty"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption string    `json:"correct_option"`
	Explanation   string    `json:"explanation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionStudentDTO is the assembled, student-facing view. It has no field
// for the correct option or the explanation, so the answer key cannot leak
// through this payload regardless of question content.
type QuestionStudentDTO struct {
	ID            uint   `json:"id"`
	TextPrimary   string `json:"text_primary"`
	TextSecondary string `json:"text_secondary,omitempty"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
}

type BulkInsertResponseDTO struct {
	Inserted int `json:"inserted"`
}
