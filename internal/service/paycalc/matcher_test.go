package paycalc

import (
	"testing"
	"time"

	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// 2024-03-09 is a Saturday, 2024-03-04 a Monday.
var (
	saturday = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
)

func ruleWithConditions(c payrule.Conditions) payrule.PayRule {
	return payrule.PayRule{
		ID:         "rule-1",
		Name:       "test rule",
		IsActive:   true,
		Conditions: c,
		Actions:    payrule.Actions{PayMultiplier: decPtr(decimal.NewFromFloat(1.5))},
	}
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestConditionMatcher_DayOfWeek(t *testing.T) {
	m := NewConditionMatcher()
	weekend := ruleWithConditions(payrule.Conditions{DaysOfWeek: []int{0, 6}})

	assert.True(t, m.Matches(weekend, MatchContext{EntryDate: saturday, ShiftStartHour: 9}))
	assert.False(t, m.Matches(weekend, MatchContext{EntryDate: monday, ShiftStartHour: 9}))
}

func TestConditionMatcher_HourWindow(t *testing.T) {
	m := NewConditionMatcher()
	day := ruleWithConditions(payrule.Conditions{
		TimeRange: &payrule.TimeRange{StartHour: 8, EndHour: 16},
	})

	assert.True(t, m.Matches(day, MatchContext{EntryDate: monday, ShiftStartHour: 8}))
	assert.True(t, m.Matches(day, MatchContext{EntryDate: monday, ShiftStartHour: 15}))
	assert.False(t, m.Matches(day, MatchContext{EntryDate: monday, ShiftStartHour: 16}),
		"window end is exclusive")
	assert.False(t, m.Matches(day, MatchContext{EntryDate: monday, ShiftStartHour: 7}))
}

func TestConditionMatcher_HourWindowWrapsMidnight(t *testing.T) {
	m := NewConditionMatcher()
	night := ruleWithConditions(payrule.Conditions{
		TimeRange: &payrule.TimeRange{StartHour: 18, EndHour: 6},
	})

	assert.True(t, m.Matches(night, MatchContext{EntryDate: monday, ShiftStartHour: 23}))
	assert.True(t, m.Matches(night, MatchContext{EntryDate: monday, ShiftStartHour: 2}))
	assert.True(t, m.Matches(night, MatchContext{EntryDate: monday, ShiftStartHour: 18}))
	assert.False(t, m.Matches(night, MatchContext{EntryDate: monday, ShiftStartHour: 6}))
	assert.False(t, m.Matches(night, MatchContext{EntryDate: monday, ShiftStartHour: 12}))
}

func TestConditionMatcher_EmployeeScope(t *testing.T) {
	m := NewConditionMatcher()
	scoped := ruleWithConditions(payrule.Conditions{EmployeeIDs: []string{"user-1", "user-2"}})

	assert.True(t, m.Matches(scoped, MatchContext{EntryDate: monday, UserID: "user-2"}))
	assert.False(t, m.Matches(scoped, MatchContext{EntryDate: monday, UserID: "user-3"}))
}

func TestConditionMatcher_RoleScope(t *testing.T) {
	m := NewConditionMatcher()
	scoped := ruleWithConditions(payrule.Conditions{Roles: []string{"nurse", "charge_nurse"}})

	assert.True(t, m.Matches(scoped, MatchContext{EntryDate: monday, Roles: []string{"nurse"}}))
	assert.True(t, m.Matches(scoped, MatchContext{EntryDate: monday, Roles: []string{"janitor", "charge_nurse"}}))
	assert.False(t, m.Matches(scoped, MatchContext{EntryDate: monday, Roles: []string{"janitor"}}))
	assert.False(t, m.Matches(scoped, MatchContext{EntryDate: monday}))
}

func TestConditionMatcher_CategoriesAndCombined(t *testing.T) {
	m := NewConditionMatcher()
	combined := ruleWithConditions(payrule.Conditions{
		DaysOfWeek: []int{6},
		Roles:      []string{"nurse"},
	})

	assert.True(t, m.Matches(combined, MatchContext{EntryDate: saturday, Roles: []string{"nurse"}}))
	assert.False(t, m.Matches(combined, MatchContext{EntryDate: saturday, Roles: []string{"janitor"}}))
	assert.False(t, m.Matches(combined, MatchContext{EntryDate: monday, Roles: []string{"nurse"}}))
}

func TestConditionMatcher_OvertimeThresholdDoesNotGate(t *testing.T) {
	m := NewConditionMatcher()
	th := decimal.NewFromInt(8)
	overtimeOnly := ruleWithConditions(payrule.Conditions{OvertimeThreshold: &th})

	assert.True(t, m.Matches(overtimeOnly, MatchContext{EntryDate: monday, ShiftStartHour: 9, UserID: "anyone"}))
}
