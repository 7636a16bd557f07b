package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is immutable once created. A resubmission inserts a new row; history
// is what the leaderboard ranks over.
type Result struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	TestID       uint           `json:"test_id" gorm:"not null;index"`
	Score        float64        `json:"score" gorm:"not null"`
	CorrectCount int            `json:"correct_count" gorm:"not null"`
	WrongCount   int            `json:"wrong_count" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
