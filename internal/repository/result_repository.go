package repository

import (
	"github.com/nkritika/prepforge/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindScoresByTestID(testID uint) ([]float64, error)
	FindByTestAndUser(testID, userID uint) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindScoresByTestID(testID uint) ([]float64, error) {
	var scores []float64
	err := r.db.Model(&model.Result{}).
		Where("test_id = ?", testID).
		Pluck("score", &scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *resultRepository) FindByTestAndUser(testID, userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("test_id = ? AND user_id = ?", testID, userID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
