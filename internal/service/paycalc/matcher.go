package paycalc

import (
	"time"

	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/validator"
)

// MatchContext is the evaluation context one time entry presents to the
// matcher. EntryDate and ShiftStartHour come from the entry's clock-in,
// never its clock-out, so a rule cannot retroactively apply based on
// when a shift finished.
type MatchContext struct {
	EntryDate      time.Time
	ShiftStartHour int
	UserID         string
	Roles          []string
}

type ConditionMatcher struct {
}

func NewConditionMatcher() *ConditionMatcher {
	return &ConditionMatcher{}
}

// Matches reports whether every condition the rule declares holds for
// the context. Declared categories are AND-combined; omitted categories
// are wildcards. overtime_threshold never gates applicability here; it
// scopes the hours the rule's actions apply to.
func (m *ConditionMatcher) Matches(rule payrule.PayRule, mc MatchContext) bool {
	c := rule.Conditions

	if len(c.DaysOfWeek) > 0 {
		day := int(mc.EntryDate.Weekday())
		if !containsInt(c.DaysOfWeek, day) {
			return false
		}
	}

	if c.TimeRange != nil && !inHourWindow(mc.ShiftStartHour, c.TimeRange.StartHour, c.TimeRange.EndHour) {
		return false
	}

	if len(c.EmployeeIDs) > 0 && !validator.IsInSlice(mc.UserID, c.EmployeeIDs) {
		return false
	}

	if len(c.Roles) > 0 {
		matched := false
		for _, role := range mc.Roles {
			if validator.IsInSlice(role, c.Roles) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// inHourWindow checks an end-exclusive hour-of-day window. A window
// whose end precedes its start wraps past midnight: 18 -> 6 covers
// 18:00-23:59 and 00:00-05:59.
func inHourWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func containsInt(values []int, v int) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
