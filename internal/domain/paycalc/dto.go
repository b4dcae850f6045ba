package paycalc

import (
	"github.com/shiftwise/wfm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CALCULATION DTOs ==========

type CalculateRequest struct {
	PeriodStart  string   `json:"period_start"` // "2006-01-02", inclusive
	PeriodEnd    string   `json:"period_end"`   // "2006-01-02", inclusive
	EmployeeIDs  []string `json:"employee_ids,omitempty"` // Empty = all employees with eligible entries
	CalculatedBy string   `json:"-"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not precede period_start"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateResponse struct {
	EmployeeResults   []PayCalculationResult `json:"employee_results"`
	Summary           PaySummary             `json:"summary"`
	EmployeeCount     int                    `json:"employee_count"`
	SavedCalculations int                    `json:"saved_calculations"`
	SkippedEntries    int                    `json:"skipped_entries"`
}

// ========== HISTORY DTOs ==========

type CalculationFilter struct {
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`
	UserID      *string `json:"user_id,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type PayCalculationResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	PayPeriodStart  string          `json:"pay_period_start"`
	PayPeriodEnd    string          `json:"pay_period_end"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	DoubleTimeHours decimal.Decimal `json:"double_time_hours"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	PayComponents   []PayComponent  `json:"pay_components"`
	RulesApplied    []string        `json:"rules_applied"`
	TimeEntryID     string          `json:"time_entry_id"`
	CalculatedByID  string          `json:"calculated_by_id"`
	CalculatedAt    string          `json:"calculated_at"`
}

type ListCalculationResponse struct {
	Data       []PayCalculationResponse `json:"data"`
	TotalCount int64                    `json:"total_count"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
}
