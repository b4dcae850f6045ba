package paycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentType enum
type ComponentType string

const (
	ComponentTypeRegular      ComponentType = "regular"
	ComponentTypeOvertime     ComponentType = "overtime"
	ComponentTypeDoubleTime   ComponentType = "double_time"
	ComponentTypeAllowance    ComponentType = "allowance"
	ComponentTypeDifferential ComponentType = "differential"
)

// HourBuckets are the classified hours of a single time entry.
type HourBuckets struct {
	Regular    decimal.Decimal `json:"regular"`
	Overtime   decimal.Decimal `json:"overtime"`
	DoubleTime decimal.Decimal `json:"double_time"`
}

// Total returns the worked hours of the entry. Equals raw worked
// duration for every threshold configuration.
func (b HourBuckets) Total() decimal.Decimal {
	return b.Regular.Add(b.Overtime).Add(b.DoubleTime)
}

// PayComponent is one computed contribution, attributable to a specific
// rule and time entry. Hours-based components carry Hours and
// Multiplier; flat and per-hour components carry Amount.
type PayComponent struct {
	Name         string           `json:"name"`
	Type         ComponentType    `json:"type"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	Multiplier   *decimal.Decimal `json:"multiplier,omitempty"`
	Differential *decimal.Decimal `json:"differential,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	RuleName     string           `json:"rule_name"`
}

// ComponentTotal aggregates same-named components across an employee's
// entries. RulesApplied lists every rule that contributed.
type ComponentTotal struct {
	Type         ComponentType    `json:"type"`
	Hours        decimal.Decimal  `json:"hours"`
	Amount       decimal.Decimal  `json:"amount"`
	Multiplier   *decimal.Decimal `json:"multiplier,omitempty"`
	RulesApplied []string         `json:"rules_applied"`
}

// PaySummary sums component hours and amounts by type.
type PaySummary struct {
	RegularHours       decimal.Decimal `json:"regular_hours"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	DoubleTimeHours    decimal.Decimal `json:"double_time_hours"`
	TotalAllowances    decimal.Decimal `json:"total_allowances"`
	ShiftDifferentials decimal.Decimal `json:"shift_differentials"`
}

// Merge returns the element-wise sum of two summaries.
func (s PaySummary) Merge(o PaySummary) PaySummary {
	return PaySummary{
		RegularHours:       s.RegularHours.Add(o.RegularHours),
		OvertimeHours:      s.OvertimeHours.Add(o.OvertimeHours),
		DoubleTimeHours:    s.DoubleTimeHours.Add(o.DoubleTimeHours),
		TotalAllowances:    s.TotalAllowances.Add(o.TotalAllowances),
		ShiftDifferentials: s.ShiftDifferentials.Add(o.ShiftDifferentials),
	}
}

// PayCalculationResult aggregates one employee's components over the
// pay period.
type PayCalculationResult struct {
	UserID     string                    `json:"user_id"`
	Username   string                    `json:"username"`
	TotalHours decimal.Decimal           `json:"total_hours"`
	Components map[string]ComponentTotal `json:"pay_components"`
	Summary    PaySummary                `json:"summary"`
}

// PayCalculation is the persisted audit row, one per source time entry.
// Immutable once written; a re-run creates new rows rather than
// mutating history.
type PayCalculation struct {
	ID              string
	UserID          string
	PayPeriodStart  time.Time
	PayPeriodEnd    time.Time
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	DoubleTimeHours decimal.Decimal
	TotalAllowances decimal.Decimal
	PayComponents   []PayComponent
	RulesApplied    []string
	TimeEntryID     string
	CalculatedByID  string
	CalculatedAt    time.Time
}
