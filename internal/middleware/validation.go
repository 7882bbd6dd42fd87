package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/pkg/reference"
	"github.com/intered/portal/internal/pkg/validation"
)

// HandleValidationError responds 400 for a request body that failed to bind.
// Validator failures carry one issue per field under error.details.
func HandleValidationError(c *gin.Context, err error) {
	if issues, ok := validation.Issues(err); ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(issues)
		if len(issues) == 1 {
			detail = detail.WithField(issues[0].Field)
		}
		RespondError(c, http.StatusBadRequest, detail)
		return
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
	switch {
	case errors.Is(err, reference.ErrInvalid):
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reference").
			WithDetails(err.Error())
	case errors.As(err, &typeErr):
		detail = detail.WithField(typeErr.Field).
			WithDetails(typeErr.Field + " must be of type " + typeErr.Type.String())
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		detail = detail.WithDetails("Request body must be valid JSON")
	default:
		detail = detail.WithDetails(err.Error())
	}
	RespondError(c, http.StatusBadRequest, detail)
}
