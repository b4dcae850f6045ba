package payrule

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is an hour-of-day window the shift must start in. When
// EndHour < StartHour the window wraps past midnight, e.g. 18 -> 6
// covers 18:00-23:59 and 00:00-05:59.
type TimeRange struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Conditions is the predicate set of a rule. Omitted categories are
// wildcards; declared categories are AND-combined. Weekday integers
// follow time.Weekday numbering (0 = Sunday).
type Conditions struct {
	DaysOfWeek        []int            `json:"day_of_week,omitempty"`
	TimeRange         *TimeRange       `json:"time_range,omitempty"`
	OvertimeThreshold *decimal.Decimal `json:"overtime_threshold,omitempty"`
	EmployeeIDs       []string         `json:"employee_ids,omitempty"`
	Roles             []string         `json:"roles,omitempty"`
}

// IsEmpty reports whether no condition category is declared.
func (c Conditions) IsEmpty() bool {
	return len(c.DaysOfWeek) == 0 &&
		c.TimeRange == nil &&
		c.OvertimeThreshold == nil &&
		len(c.EmployeeIDs) == 0 &&
		len(c.Roles) == 0
}

// Actions is the effect set of a rule. A rule declares at least one of
// the three kinds; MaxAmount optionally caps the preview result.
type Actions struct {
	PayMultiplier     *decimal.Decimal `json:"pay_multiplier,omitempty"`
	ComponentName     *string          `json:"component_name,omitempty"`
	FlatAllowance     *decimal.Decimal `json:"flat_allowance,omitempty"`
	AllowanceName     *string          `json:"allowance_name,omitempty"`
	ShiftDifferential *decimal.Decimal `json:"shift_differential,omitempty"`
	DifferentialName  *string          `json:"differential_name,omitempty"`
	MaxAmount         *decimal.Decimal `json:"max_amount,omitempty"`
}

// IsEmpty reports whether no action kind is declared.
func (a Actions) IsEmpty() bool {
	return a.PayMultiplier == nil && a.FlatAllowance == nil && a.ShiftDifferential == nil
}

// PayRule - a named, prioritized condition/action policy applied during
// payroll calculation. Lower priority values are evaluated earlier;
// ties are broken by rule id so evaluation order stays deterministic.
type PayRule struct {
	ID          string
	Name        string
	Priority    int
	Description *string
	IsActive    bool
	Conditions  Conditions
	Actions     Actions
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsWellFormed reports whether the rule carries at least one condition
// and one action. Malformed rules are rejected at authoring time; the
// calculation engine skips and logs any that slip through.
func (r PayRule) IsWellFormed() bool {
	return !r.Conditions.IsEmpty() && !r.Actions.IsEmpty()
}
