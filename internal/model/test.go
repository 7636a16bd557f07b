package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	TestTypePractice = "practice"
	TestTypeExam     = "exam"
)

// Test is the unit a student takes. TestType only governs how the client
// presents feedback; the stored shape is identical for both kinds.
type Test struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Title            string         `json:"title" gorm:"not null"`
	SubCategoryID    uint           `json:"subcategory_id" gorm:"not null;index"`
	TestType         string         `json:"test_type" gorm:"not null;default:'practice'"`
	TimeLimitMinutes int            `json:"time_limit_minutes" gorm:"not null;default:60"`
	NegativeMarking  float64        `json:"negative_marking" gorm:"not null;default:0.33"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
