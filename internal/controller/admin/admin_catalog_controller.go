package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nkritika/prepforge/internal/controller"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/service"
)

type CatalogController struct {
	catalogSvc service.CatalogService
}

func NewCatalogController(catalogSvc service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param category body dto.CategoryCreateDTO true "Category"
// @Success 201 {object} dto.CategoryResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	category, err := ctrl.catalogSvc.CreateCategory(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory godoc
// @Summary Delete a category and everything underneath it
// @Tags admin
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.catalogSvc.DeleteCategory(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateSubCategory godoc
// @Summary Create a subcategory under a category
// @Tags admin
// @Accept json
// @Produce json
// @Param subcategory body dto.SubCategoryCreateDTO true "SubCategory"
// @Success 201 {object} dto.SubCategoryResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subcategories [post]
func (ctrl *CatalogController) CreateSubCategory(c *gin.Context) {
	var req dto.SubCategoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	subCategory, err := ctrl.catalogSvc.CreateSubCategory(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subCategory)
}

// DeleteSubCategory godoc
// @Summary Delete a subcategory and everything underneath it
// @Tags admin
// @Param id path int true "SubCategory ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/subcategories/{id} [delete]
func (ctrl *CatalogController) DeleteSubCategory(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.catalogSvc.DeleteSubCategory(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateTest godoc
// @Summary Create a test under a subcategory
// @Tags admin
// @Accept json
// @Produce json
// @Param test body dto.TestCreateDTO true "Test"
// @Success 201 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests [post]
func (ctrl *CatalogController) CreateTest(c *gin.Context) {
	var req dto.TestCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	test, err := ctrl.catalogSvc.CreateTest(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

// DeleteTest godoc
// @Summary Delete a test, its questions and its results
// @Tags admin
// @Param id path int true "Test ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests/{id} [delete]
func (ctrl *CatalogController) DeleteTest(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.catalogSvc.DeleteTest(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
