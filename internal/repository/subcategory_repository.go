package repository

import (
	"github.com/nkritika/prepforge/internal/model"
	"gorm.io/gorm"
)

type SubCategoryRepository interface {
	Create(subCategory *model.SubCategory) error
	FindByID(id uint) (*model.SubCategory, error)
	FindByCategoryID(categoryID uint) ([]model.SubCategory, error)
}

type subCategoryRepository struct {
	db *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) SubCategoryRepository {
	return &subCategoryRepository{db: db}
}

func (r *subCategoryRepository) Create(subCategory *model.SubCategory) error {
	return r.db.Create(subCategory).Error
}

func (r *subCategoryRepository) FindByID(id uint) (*model.SubCategory, error) {
	var subCategory model.SubCategory
	if err := r.db.First(&subCategory, id).Error; err != nil {
		return nil, err
	}
	return &subCategory, nil
}

func (r *subCategoryRepository) FindByCategoryID(categoryID uint) ([]model.SubCategory, error) {
	var subCategories []model.SubCategory
	if err := r.db.Where("category_id = ?", categoryID).Order("id ASC").Find(&subCategories).Error; err != nil {
		return nil, err
	}
	return subCategories, nil
}
