package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nkritika/prepforge/internal/controller"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/middleware"
	"github.com/nkritika/prepforge/internal/service"
)

type TestController struct {
	catalogSvc     service.CatalogService
	assemblySvc    service.AssemblyService
	scoringSvc     service.ScoringService
	leaderboardSvc service.LeaderboardService
}

func NewTestController(
	catalogSvc service.CatalogService,
	assemblySvc service.AssemblyService,
	scoringSvc service.ScoringService,
	leaderboardSvc service.LeaderboardService,
) *TestController {
	return &TestController{
		catalogSvc:     catalogSvc,
		assemblySvc:    assemblySvc,
		scoringSvc:     scoringSvc,
		leaderboardSvc: leaderboardSvc,
	}
}

// ListCategories godoc
// @Summary List catalog categories
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CategoryResponseDTO
// @Router /catalog [get]
func (ctrl *TestController) ListCategories(c *gin.Context) {
	categories, err := ctrl.catalogSvc.ListCategories()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ListSubCategories godoc
// @Summary List subcategories of a category
// @Tags catalog
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {array} dto.SubCategoryResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /catalog/{category_id}/subcategories [get]
func (ctrl *TestController) ListSubCategories(c *gin.Context) {
	categoryID, ok := controller.ParseIDParam(c, "category_id")
	if !ok {
		return
	}
	subCategories, err := ctrl.catalogSvc.ListSubCategories(categoryID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subCategories)
}

// ListTests godoc
// @Summary List tests of a subcategory
// @Tags catalog
// @Produce json
// @Param subcat_id path int true "SubCategory ID"
// @Success 200 {array} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /subcategories/{subcat_id}/tests [get]
func (ctrl *TestController) ListTests(c *gin.Context) {
	subCategoryID, ok := controller.ParseIDParam(c, "subcat_id")
	if !ok {
		return
	}
	tests, err := ctrl.catalogSvc.ListTests(subCategoryID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// AssembleTest godoc
// @Summary Fetch a test for taking; the answer key is never included
// @Tags tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.AssembledTestDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /catalog/tests/{test_id} [get]
func (ctrl *TestController) AssembleTest(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "test_id")
	if !ok {
		return
	}
	assembled, err := ctrl.assemblySvc.AssembleTest(testID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assembled)
}

// Submit godoc
// @Summary Submit answers for grading
// @Tags tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param submission body dto.SubmissionDTO true "Answers keyed by question id"
// @Success 201 {object} dto.ScoreReportDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id}/submit [post]
func (ctrl *TestController) Submit(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "test_id")
	if !ok {
		return
	}
	var req dto.SubmissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	report, err := ctrl.scoringSvc.Submit(testID, middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// Rank godoc
// @Summary Rank a score among all results for a test
// @Tags tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Param score query number true "Score to rank"
// @Success 200 {object} dto.RankDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tests/{test_id}/rank [get]
func (ctrl *TestController) Rank(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "test_id")
	if !ok {
		return
	}
	score, err := strconv.ParseFloat(c.Query("score"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or missing score", Code: "validation_error"})
		return
	}
	rank, err := ctrl.leaderboardSvc.ComputeRank(testID, score)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rank)
}

// MyResults godoc
// @Summary List the caller's results for a test, newest first
// @Tags tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {array} dto.ResultSummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id}/results [get]
func (ctrl *TestController) MyResults(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "test_id")
	if !ok {
		return
	}
	results, err := ctrl.scoringSvc.ResultsForUser(testID, middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
