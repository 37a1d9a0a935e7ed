package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook/internal/scheduling"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errs interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errs,
	})
}

// RespondError maps the scheduling error taxonomy onto HTTP statuses so every
// controller renders the same shapes. Unknown errors become opaque 500s.
func RespondError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var notFoundErr *scheduling.NotFoundError
	var transitionErr *scheduling.TransitionError
	var conflictErr *scheduling.ConflictError

	switch {
	case errors.As(err, &validationErr):
		RespondJSON(c, "error", http.StatusBadRequest, validationErr.Error(), nil, nil)
	case errors.As(err, &notFoundErr):
		RespondJSON(c, "error", http.StatusNotFound, notFoundErr.Error(), nil, nil)
	case errors.As(err, &transitionErr):
		RespondJSON(c, "error", http.StatusUnprocessableEntity, transitionErr.Error(), nil, gin.H{
			"current_status":   transitionErr.Current,
			"attempted_status": transitionErr.Attempted,
		})
	case errors.As(err, &conflictErr):
		RespondJSON(c, "error", http.StatusConflict, conflictErr.Error(), nil, gin.H{
			"conflicts": conflictErr.Conflicts,
		})
	default:
		RespondJSON(c, "error", http.StatusInternalServerError, "internal error", nil, nil)
	}
}
