package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/validator"
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
	// Pay rule domain errors
	case errors.Is(err, payrule.ErrPayRuleNotFound):
		NotFound(w, "Pay rule not found")
	case errors.Is(err, payrule.ErrPayRuleNameExists):
		Conflict(w, "Pay rule name already exists")
	case errors.Is(err, payrule.ErrPayRuleInUse):
		Conflict(w, "Pay rule is referenced by persisted calculations; deactivate it instead")

	// Calculation domain errors
	case errors.Is(err, paycalc.ErrCalculationNotFound):
		NotFound(w, "Pay calculation not found")
	case errors.Is(err, paycalc.ErrCalculationSaveFault):
		InternalServerError(w, "Failed to persist pay calculations; the run must be retried in full")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
