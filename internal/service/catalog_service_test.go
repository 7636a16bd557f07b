package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/model"
	"github.com/nkritika/prepforge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newCatalogServiceWithStore builds the service over an in-memory database so
// the cascade SQL runs for real. The DSN is keyed by test name to keep each
// test's shared-cache store isolated.
func newCatalogServiceWithStore(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Category{},
		&model.SubCategory{},
		&model.Test{},
		&model.Question{},
		&model.Result{},
	))

	svc := NewCatalogService(
		repository.NewCategoryRepository(db),
		repository.NewSubCategoryRepository(db),
		repository.NewTestRepository(db),
		db,
	)
	return svc, db
}

// seedHierarchy creates a category with one subcategory, one test, one
// question and one result, and returns the category and test ids.
func seedHierarchy(t *testing.T, svc CatalogService, db *gorm.DB, name string) (categoryID, testID uint) {
	t.Helper()
	category, err := svc.CreateCategory(dto.CategoryCreateDTO{Name: name})
	require.NoError(t, err)
	subCategory, err := svc.CreateSubCategory(dto.SubCategoryCreateDTO{Name: name + " Basics", CategoryID: category.ID})
	require.NoError(t, err)
	test, err := svc.CreateTest(dto.TestCreateDTO{Title: name + " Mock 1", SubCategoryID: subCategory.ID})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Question{
		TestID:      test.ID,
		TextPrimary: "Sample?",
		OptionA:     "a", OptionB: "b", OptionC: "c", OptionD: "d",
		CorrectOption: "A",
	}).Error)
	require.NoError(t, db.Create(&model.Result{UserID: 1, TestID: test.ID, Score: 1.0, CorrectCount: 1}).Error)
	return category.ID, test.ID
}

func TestDeleteCategoryCascades(t *testing.T) {
	svc, db := newCatalogServiceWithStore(t)
	categoryID, _ := seedHierarchy(t, svc, db, "History")

	require.NoError(t, svc.DeleteCategory(categoryID))

	for _, m := range []interface{}{
		&model.Category{}, &model.SubCategory{}, &model.Test{}, &model.Question{}, &model.Result{},
	} {
		var count int64
		require.NoError(t, db.Unscoped().Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T rows must not survive the cascade", m)
	}
}

func TestDeleteTestLeavesSiblings(t *testing.T) {
	svc, db := newCatalogServiceWithStore(t)
	_, doomedID := seedHierarchy(t, svc, db, "History")
	_, keptID := seedHierarchy(t, svc, db, "Geography")

	require.NoError(t, svc.DeleteTest(doomedID))

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("test_id = ?", doomedID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.Question{}).Where("test_id = ?", keptID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	require.NoError(t, db.Model(&model.Result{}).Where("test_id = ?", keptID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCategoryNameReusableAfterDelete(t *testing.T) {
	svc, db := newCatalogServiceWithStore(t)
	categoryID, _ := seedHierarchy(t, svc, db, "History")

	_, err := svc.CreateCategory(dto.CategoryCreateDTO{Name: "History"})
	var duplicateErr *apperr.DuplicateNameError
	require.ErrorAs(t, err, &duplicateErr)

	require.NoError(t, svc.DeleteCategory(categoryID))

	recreated, err := svc.CreateCategory(dto.CategoryCreateDTO{Name: "History"})
	require.NoError(t, err)
	assert.NotEqual(t, categoryID, recreated.ID)
}
