package dto

import "time"

type CategoryCreateDTO struct {
	Name string `json:"name" binding:"required"`
}

type SubCategoryCreateDTO struct {
	Name       string `json:"name" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

type TestCreateDTO struct {
	Title            string   `json:"title" binding:"required"`
	SubCategoryID    uint     `json:"subcategory_id" binding:"required"`
	TestType         string   `json:"test_type" binding:"omitempty,oneof=practice exam"`
	TimeLimitMinutes int      `json:"time_limit_minutes" binding:"omitempty,gt=0"`
	NegativeMarking  *float64 `json:"negative_marking" binding:"omitempty,gte=0,lt=1"`
}

type CategoryResponseDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type SubCategoryResponseDTO struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	CategoryID uint      `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type TestResponseDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	SubCategoryID    uint      `json:"subcategory_id"`
	TestType         string    `json:"test_type"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	NegativeMarking  float64   `json:"negative_marking"`
	CreatedAt        time.Time `json:"created_at"`
}
