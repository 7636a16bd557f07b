package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nkritika/prepforge/internal/apperr"
	"github.com/nkritika/prepforge/internal/controller"
)

// respondDomainError writes a response only when err belongs to the domain
// taxonomy, letting callers treat everything else (e.g. an upstream AI
// failure) on their own. Reports whether it handled the error.
func respondDomainError(c *gin.Context, err error) bool {
	var (
		validationErr *apperr.ValidationError
		batchErr      *apperr.BatchValidationError
		duplicateErr  *apperr.DuplicateNameError
		configErr     *apperr.ConfigurationError
	)
	if errors.Is(err, apperr.ErrNotFound) ||
		errors.As(err, &validationErr) ||
		errors.As(err, &batchErr) ||
		errors.As(err, &duplicateErr) ||
		errors.As(err, &configErr) {
		controller.RespondError(c, err)
		return true
	}
	return false
}
