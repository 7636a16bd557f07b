package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nkritika/prepforge/internal/controller"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/nkritika/prepforge/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionSvc  service.QuestionService
	generatorSvc service.GeneratorService
}

func NewQuestionController(questionSvc service.QuestionService, generatorSvc service.GeneratorService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc, generatorSvc: generatorSvc}
}

// AddQuestion godoc
// @Summary Add one question to a test
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param question body dto.QuestionCreateDTO true "Question"
// @Success 201 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests/{id}/questions [post]
func (ctrl *QuestionController) AddQuestion(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	question, err := ctrl.questionSvc.AddQuestion(testID, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary List a test's questions with the answer key
// @Tags admin
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {array} dto.QuestionAdminDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/tests/{id}/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	questions, err := ctrl.questionSvc.ListForTest(testID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// BulkAdd godoc
// @Summary Bulk-insert questions; rejects the whole batch on any invalid item
// @Tags admin
// @Accept json
// @Produce json
// @Param batch body dto.QuestionBulkCreateDTO true "Question batch"
// @Success 201 {object} dto.BulkInsertResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /admin/questions [post]
func (ctrl *QuestionController) BulkAdd(c *gin.Context) {
	var req dto.QuestionBulkCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	inserted, err := ctrl.questionSvc.BulkAdd(req.TestID, req.Questions)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BulkInsertResponseDTO{Inserted: inserted})
}

// ImportCSV godoc
// @Summary Import questions from a CSV upload
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path int true "Test ID"
// @Param file formData file true "CSV file"
// @Success 201 {object} dto.BulkInsertResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /admin/tests/{id}/questions/import [post]
func (ctrl *QuestionController) ImportCSV(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing file upload", Code: "validation_error"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "could not read upload", Code: "validation_error"})
		return
	}
	defer file.Close()

	items, err := service.ParseQuestionCSV(file)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	inserted, err := ctrl.questionSvc.BulkAdd(testID, items)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.BulkInsertResponseDTO{Inserted: inserted})
}

// Generate godoc
// @Summary Generate questions with the configured AI model and insert them
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param request body dto.GenerateQuestionsDTO true "Topic and count"
// @Success 201 {object} dto.BulkInsertResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /admin/tests/{id}/generate [post]
func (ctrl *QuestionController) Generate(c *gin.Context) {
	testID, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.GenerateQuestionsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "validation_error"})
		return
	}
	inserted, err := ctrl.generatorSvc.GenerateQuestions(c.Request.Context(), testID, req)
	if err != nil {
		if handled := respondDomainError(c, err); !handled {
			log.Error().Err(err).Uint("test_id", testID).Msg("Question generation failed")
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "question generation failed", Code: "upstream_error"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.BulkInsertResponseDTO{Inserted: inserted})
}
