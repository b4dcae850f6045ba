package paycalc

import (
	"sort"
	"testing"

	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func bucketsFor(t *testing.T, regular, overtime, doubleTime string) paycalc.HourBuckets {
	t.Helper()
	return paycalc.HourBuckets{
		Regular:    dec(t, regular),
		Overtime:   dec(t, overtime),
		DoubleTime: dec(t, doubleTime),
	}
}

func TestActionApplier_WeekendDifferential(t *testing.T) {
	a := NewActionApplier()
	diff := dec(t, "2.0")
	rule := payrule.PayRule{
		ID:       "rule-1",
		Name:     "weekend differential",
		IsActive: true,
		Conditions: payrule.Conditions{
			DaysOfWeek: []int{0, 6},
		},
		Actions: payrule.Actions{
			ShiftDifferential: &diff,
			DifferentialName:  strPtr("weekend_differential"),
		},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "6", "0", "0"), DefaultThresholds())

	require.Len(t, components, 1)
	c := components[0]
	assert.Equal(t, "weekend_differential", c.Name)
	assert.Equal(t, paycalc.ComponentTypeDifferential, c.Type)
	require.NotNil(t, c.Hours)
	assert.True(t, c.Hours.Equal(dec(t, "6")))
	require.NotNil(t, c.Amount)
	assert.True(t, c.Amount.Equal(dec(t, "12")), "amount = %s", c.Amount)
}

func TestActionApplier_UnscopedMultiplierCoversFullHours(t *testing.T) {
	a := NewActionApplier()
	mult := dec(t, "1.5")
	rule := payrule.PayRule{
		ID:         "rule-1",
		Name:       "holiday pay",
		Conditions: payrule.Conditions{DaysOfWeek: []int{1}},
		Actions:    payrule.Actions{PayMultiplier: &mult, ComponentName: strPtr("holiday_pay")},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "8", "2", "0"), DefaultThresholds())

	require.Len(t, components, 1)
	assert.Equal(t, paycalc.ComponentTypeRegular, components[0].Type)
	assert.True(t, components[0].Hours.Equal(dec(t, "10")))
	assert.True(t, components[0].Multiplier.Equal(mult))
}

func TestActionApplier_ThresholdScopesToOvertimeHours(t *testing.T) {
	a := NewActionApplier()
	mult := dec(t, "1.5")
	th := dec(t, "8")
	rule := payrule.PayRule{
		ID:         "rule-1",
		Name:       "overtime premium",
		Conditions: payrule.Conditions{OvertimeThreshold: &th},
		Actions:    payrule.Actions{PayMultiplier: &mult, ComponentName: strPtr("overtime")},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "8", "2", "0"), DefaultThresholds())

	require.Len(t, components, 1)
	assert.Equal(t, paycalc.ComponentTypeOvertime, components[0].Type)
	assert.True(t, components[0].Hours.Equal(dec(t, "2")))
}

func TestActionApplier_ThresholdAtDoubleTimeBoundary(t *testing.T) {
	a := NewActionApplier()
	mult := dec(t, "2.0")
	th := dec(t, "12")
	rule := payrule.PayRule{
		ID:         "rule-1",
		Name:       "double time premium",
		Conditions: payrule.Conditions{OvertimeThreshold: &th},
		Actions:    payrule.Actions{PayMultiplier: &mult, ComponentName: strPtr("double_time")},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "8", "4", "2"), DefaultThresholds())

	require.Len(t, components, 1)
	assert.Equal(t, paycalc.ComponentTypeDoubleTime, components[0].Type)
	assert.True(t, components[0].Hours.Equal(dec(t, "2")))
}

func TestActionApplier_ThresholdAboveWorkedHoursEmitsNothing(t *testing.T) {
	a := NewActionApplier()
	mult := dec(t, "1.5")
	th := dec(t, "8")
	rule := payrule.PayRule{
		ID:         "rule-1",
		Name:       "overtime premium",
		Conditions: payrule.Conditions{OvertimeThreshold: &th},
		Actions:    payrule.Actions{PayMultiplier: &mult, ComponentName: strPtr("overtime")},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "6", "0", "0"), DefaultThresholds())

	assert.Empty(t, components)
}

func TestActionApplier_FlatAllowancePerEntry(t *testing.T) {
	a := NewActionApplier()
	allowance := dec(t, "25")
	rule := payrule.PayRule{
		ID:         "rule-1",
		Name:       "meal allowance",
		Conditions: payrule.Conditions{DaysOfWeek: []int{1, 2, 3, 4, 5}},
		Actions:    payrule.Actions{FlatAllowance: &allowance, AllowanceName: strPtr("meal_allowance")},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "4", "0", "0"), DefaultThresholds())

	require.Len(t, components, 1)
	assert.Equal(t, paycalc.ComponentTypeAllowance, components[0].Type)
	assert.Nil(t, components[0].Hours, "allowance is hours independent")
	assert.True(t, components[0].Amount.Equal(allowance))
}

func TestActionApplier_ComponentNameFallsBackToRuleName(t *testing.T) {
	a := NewActionApplier()
	mult := dec(t, "1.25")
	rule := payrule.PayRule{
		ID:         "rule-1",
		Name:       "evening bump",
		Conditions: payrule.Conditions{DaysOfWeek: []int{3}},
		Actions:    payrule.Actions{PayMultiplier: &mult},
	}

	components := a.Apply([]payrule.PayRule{rule}, bucketsFor(t, "8", "0", "0"), DefaultThresholds())

	require.Len(t, components, 1)
	assert.Equal(t, "evening bump", components[0].Name)
}

func TestActionApplier_RuleOrderOnlyAffectsListing(t *testing.T) {
	a := NewActionApplier()
	mult := dec(t, "1.5")
	diff := dec(t, "3")
	ruleA := payrule.PayRule{
		ID:         "rule-a",
		Name:       "premium a",
		Conditions: payrule.Conditions{DaysOfWeek: []int{6}},
		Actions:    payrule.Actions{PayMultiplier: &mult, ComponentName: strPtr("premium_a")},
	}
	ruleB := payrule.PayRule{
		ID:         "rule-b",
		Name:       "premium b",
		Conditions: payrule.Conditions{DaysOfWeek: []int{6}},
		Actions:    payrule.Actions{ShiftDifferential: &diff, DifferentialName: strPtr("premium_b")},
	}
	buckets := bucketsFor(t, "8", "1", "0")

	forward := a.Apply([]payrule.PayRule{ruleA, ruleB}, buckets, DefaultThresholds())
	reversed := a.Apply([]payrule.PayRule{ruleB, ruleA}, buckets, DefaultThresholds())

	names := func(cs []paycalc.PayComponent) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.Name)
		}
		sort.Strings(out)
		return out
	}
	require.Equal(t, names(forward), names(reversed))

	// Same amounts either way, both rules contribute.
	assert.Equal(t, []string{"premium_a", "premium_b"}, names(forward))
}
