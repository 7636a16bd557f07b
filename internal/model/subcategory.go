package model

import (
	"time"

	"gorm.io/gorm"
)

type SubCategory struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Name       string         `json:"name" gorm:"not null"`
	CategoryID uint           `json:"category_id" gorm:"not null;index"`
	Tests      []Test         `json:"tests,omitempty" gorm:"foreignKey:SubCategoryID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
