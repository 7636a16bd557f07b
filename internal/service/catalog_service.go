package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/nkritika/prepforge/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	DefaultTimeLimitMinutes = 60
	DefaultNegativeMarking  = 0.33
)

// CatalogService manages the Category -> SubCategory -> Test hierarchy.
// Deletes cascade through every descendant, Results included; an admin delete
// is intentional data loss, never a partial one.
type CatalogService interface {
	CreateCategory(req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error)
	CreateSubCategory(req dto.SubCategoryCreateDTO) (*dto.SubCategoryResponseDTO, error)
	CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	DeleteCategory(id uint) error
	DeleteSubCategory(id uint) error
	DeleteTest(id uint) error
	ListCategories() ([]dto.CategoryResponseDTO, error)
	ListSubCategories(categoryID uint) ([]dto.SubCategoryResponseDTO, error)
	ListTests(subCategoryID uint) ([]dto.TestResponseDTO, error)
}

type catalogService struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	testRepo        repository.TestRepository
	db              *gorm.DB // cascade deletes run as one transaction
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	testRepo repository.TestRepository,
	db *gorm.DB,
) CatalogService {
	return &catalogService{
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		testRepo:        testRepo,
		db:              db,
	}
}

func (s *catalogService) CreateCategory(req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error) {
	if _, err := s.categoryRepo.FindByName(req.Name); err == nil {
		return nil, &apperr.DuplicateNameError{Name: req.Name}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking category name %q: %w", req.Name, err)
	}

	category := model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(&category); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create category")
		return nil, err
	}

	var resp dto.CategoryResponseDTO
	if err := copier.Copy(&resp, &category); err != nil {
		return nil, fmt.Errorf("error preparing category response: %w", err)
	}
	return &resp, nil
}

func (s *catalogService) CreateSubCategory(req dto.SubCategoryCreateDTO) (*dto.SubCategoryResponseDTO, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("category %d", req.CategoryID)
		}
		return nil, err
	}

	subCategory := model.SubCategory{Name: req.Name, CategoryID: req.CategoryID}
	if err := s.subCategoryRepo.Create(&subCategory); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create subcategory")
		return nil, err
	}

	var resp dto.SubCategoryResponseDTO
	if err := copier.Copy(&resp, &subCategory); err != nil {
		return nil, fmt.Errorf("error preparing subcategory response: %w", err)
	}
	return &resp, nil
}

func (s *catalogService) CreateTest(req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if _, err := s.subCategoryRepo.FindByID(req.SubCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("subcategory %d", req.SubCategoryID)
		}
		return nil, err
	}

	test := model.Test{
		Title:            req.Title,
		SubCategoryID:    req.SubCategoryID,
		TestType:         req.TestType,
		TimeLimitMinutes: req.TimeLimitMinutes,
		NegativeMarking:  DefaultNegativeMarking,
	}
	if test.TestType == "" {
		test.TestType = model.TestTypePractice
	}
	if test.TimeLimitMinutes == 0 {
		test.TimeLimitMinutes = DefaultTimeLimitMinutes
	}
	if req.NegativeMarking != nil {
		test.NegativeMarking = *req.NegativeMarking
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create test")
		return nil, err
	}

	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, &test); err != nil {
		return nil, fmt.Errorf("error preparing test response: %w", err)
	}
	return &resp, nil
}

// DeleteCategory removes the category and every subcategory, test, question
// and result underneath it in a single transaction. Rows are removed for real
// (Unscoped): a soft-deleted category would keep occupying the unique name
// index and block recreating a category under the same name.
func (s *catalogService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("category %d", id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var subCategoryIDs []uint
		if err := tx.Model(&model.SubCategory{}).Where("category_id = ?", id).Pluck("id", &subCategoryIDs).Error; err != nil {
			return err
		}
		if len(subCategoryIDs) > 0 {
			if err := deleteTestsUnder(tx, subCategoryIDs); err != nil {
				return err
			}
			if err := tx.Unscoped().Where("category_id = ?", id).Delete(&model.SubCategory{}).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&model.Category{}, id).Error
	})
}

func (s *catalogService) DeleteSubCategory(id uint) error {
	if _, err := s.subCategoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("subcategory %d", id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteTestsUnder(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.SubCategory{}, id).Error
	})
}

func (s *catalogService) DeleteTest(id uint) error {
	if _, err := s.testRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("test %d", id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteTestContents(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Test{}, id).Error
	})
}

// deleteTestsUnder removes every test owned by the given subcategories,
// together with the questions and results hanging off those tests.
func deleteTestsUnder(tx *gorm.DB, subCategoryIDs []uint) error {
	var testIDs []uint
	if err := tx.Model(&model.Test{}).Where("sub_category_id IN ?", subCategoryIDs).Pluck("id", &testIDs).Error; err != nil {
		return err
	}
	if len(testIDs) == 0 {
		return nil
	}
	if err := deleteTestContents(tx, testIDs); err != nil {
		return err
	}
	return tx.Unscoped().Where("id IN ?", testIDs).Delete(&model.Test{}).Error
}

func deleteTestContents(tx *gorm.DB, testIDs []uint) error {
	if err := tx.Unscoped().Where("test_id IN ?", testIDs).Delete(&model.Question{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("test_id IN ?", testIDs).Delete(&model.Result{}).Error
}

func (s *catalogService) ListCategories() ([]dto.CategoryResponseDTO, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return nil, err
	}
	dtos := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, category := range categories {
		var d dto.CategoryResponseDTO
		if err := copier.Copy(&d, &category); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *catalogService) ListSubCategories(categoryID uint) ([]dto.SubCategoryResponseDTO, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("category %d", categoryID)
		}
		return nil, err
	}
	subCategories, err := s.subCategoryRepo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.SubCategoryResponseDTO, 0, len(subCategories))
	for _, subCategory := range subCategories {
		var d dto.SubCategoryResponseDTO
		if err := copier.Copy(&d, &subCategory); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *catalogService) ListTests(subCategoryID uint) ([]dto.TestResponseDTO, error) {
	if _, err := s.subCategoryRepo.FindByID(subCategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("subcategory %d", subCategoryID)
		}
		return nil, err
	}
	tests, err := s.testRepo.FindBySubCategoryID(subCategoryID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.TestResponseDTO, 0, len(tests))
	for _, test := range tests {
		var d dto.TestResponseDTO
		if err := copier.Copy(&d, &test); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
