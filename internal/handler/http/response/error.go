package response

import (
	"errors"
	"net/http"

	"github.com/horecalabs/productivity-backend-go/internal/domain/productivity"
	"github.com/horecalabs/productivity-backend-go/internal/domain/team"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Productivity domain errors
	case errors.Is(err, productivity.ErrRunNotFound):
		NotFound(w, "No productivity run exists for this location and date")
	case errors.Is(err, productivity.ErrFutureDate):
		BadRequest(w, "Productivity cannot be computed for future dates", nil)

	// Team mapping configuration errors
	case errors.Is(err, team.ErrInvalidSplitRatio):
		BadRequest(w, "Team split ratio parts must sum to 1.0", nil)
	case errors.Is(err, team.ErrUnknownCategory):
		BadRequest(w, "Unknown team category in mapping table", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
