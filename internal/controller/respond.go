package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError maps the domain error taxonomy onto HTTP statuses. Everything
// in the taxonomy is a 4xx; anything unrecognized is a 500 with a generic body
// so internals never leak to clients.
func RespondError(c *gin.Context, err error) {
	var (
		validationErr *apperr.ValidationError
		batchErr      *apperr.BatchValidationError
		duplicateErr  *apperr.DuplicateNameError
		configErr     *apperr.ConfigurationError
	)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: "not_found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Error(), Code: "validation_error"})
	case errors.As(err, &batchErr):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: batchErr.Error(),
			Code:  "batch_validation_error",
			Items: batchErr.Items,
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: duplicateErr.Error(), Code: "duplicate_name"})
	case errors.As(err, &configErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: configErr.Error(), Code: "configuration_error"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: "internal"})
	}
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name, Code: "validation_error"})
		return 0, false
	}
	return uint(id), true
}
