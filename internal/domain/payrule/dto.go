package payrule

import (
	"github.com/shiftwise/wfm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RULE DTOs ==========

type CreatePayRuleRequest struct {
	Name        string     `json:"name"`
	Priority    int        `json:"priority"`
	Description *string    `json:"description,omitempty"`
	Conditions  Conditions `json:"conditions"`
	Actions     Actions    `json:"actions"`
}

func (r *CreatePayRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be non-negative"})
	}
	if r.Conditions.IsEmpty() {
		errs = append(errs, validator.ValidationError{Field: "conditions", Message: "at least one condition is required"})
	}
	if r.Actions.IsEmpty() {
		errs = append(errs, validator.ValidationError{Field: "actions", Message: "at least one action is required"})
	}

	errs = append(errs, validateConditions(r.Conditions)...)
	errs = append(errs, validateActions(r.Actions)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayRuleRequest struct {
	ID          string
	Name        *string     `json:"name,omitempty"`
	Priority    *int        `json:"priority,omitempty"`
	Description *string     `json:"description,omitempty"`
	IsActive    *bool       `json:"is_active,omitempty"`
	Conditions  *Conditions `json:"conditions,omitempty"`
	Actions     *Actions    `json:"actions,omitempty"`
}

func (r *UpdatePayRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Priority != nil && *r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be non-negative"})
	}
	if r.Conditions != nil {
		if r.Conditions.IsEmpty() {
			errs = append(errs, validator.ValidationError{Field: "conditions", Message: "at least one condition is required"})
		}
		errs = append(errs, validateConditions(*r.Conditions)...)
	}
	if r.Actions != nil {
		if r.Actions.IsEmpty() {
			errs = append(errs, validator.ValidationError{Field: "actions", Message: "at least one action is required"})
		}
		errs = append(errs, validateActions(*r.Actions)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateConditions(c Conditions) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for _, d := range c.DaysOfWeek {
		if !validator.IsValidWeekday(d) {
			errs = append(errs, validator.ValidationError{Field: "conditions.day_of_week", Message: "weekdays must be between 0 (Sunday) and 6 (Saturday)"})
			break
		}
	}
	if c.TimeRange != nil {
		if !validator.IsValidHourOfDay(c.TimeRange.StartHour) || !validator.IsValidHourOfDay(c.TimeRange.EndHour) {
			errs = append(errs, validator.ValidationError{Field: "conditions.time_range", Message: "hours must be between 0 and 23"})
		}
	}
	if c.OvertimeThreshold != nil && c.OvertimeThreshold.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "conditions.overtime_threshold", Message: "must be non-negative"})
	}

	return errs
}

func validateActions(a Actions) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if a.PayMultiplier != nil {
		if !a.PayMultiplier.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "actions.pay_multiplier", Message: "must be positive"})
		}
		if a.ComponentName == nil || validator.IsEmpty(*a.ComponentName) {
			errs = append(errs, validator.ValidationError{Field: "actions.component_name", Message: "is required with pay_multiplier"})
		}
	}
	if a.FlatAllowance != nil {
		if a.FlatAllowance.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "actions.flat_allowance", Message: "must be non-negative"})
		}
		if a.AllowanceName == nil || validator.IsEmpty(*a.AllowanceName) {
			errs = append(errs, validator.ValidationError{Field: "actions.allowance_name", Message: "is required with flat_allowance"})
		}
	}
	if a.ShiftDifferential != nil {
		if a.ShiftDifferential.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "actions.shift_differential", Message: "must be non-negative"})
		}
		if a.DifferentialName == nil || validator.IsEmpty(*a.DifferentialName) {
			errs = append(errs, validator.ValidationError{Field: "actions.differential_name", Message: "is required with shift_differential"})
		}
	}
	if a.MaxAmount != nil && a.MaxAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "actions.max_amount", Message: "must be non-negative"})
	}

	return errs
}

type PayRuleResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Priority    int        `json:"priority"`
	Description *string    `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	Conditions  Conditions `json:"conditions"`
	Actions     Actions    `json:"actions"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

type ListPayRuleResponse struct {
	Data       []PayRuleResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
}

// ========== PREVIEW DTOs ==========

type TestPayRuleRequest struct {
	HoursWorked decimal.Decimal `json:"hours_worked"`
	BaseRate    decimal.Decimal `json:"base_rate"`
}

func (r *TestPayRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.BaseRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TestPayRuleResponse struct {
	RuleID           string          `json:"rule_id"`
	RuleName         string          `json:"rule_name"`
	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
}
