package paycalc

import (
	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shopspring/decimal"
)

type ActionApplier struct {
}

func NewActionApplier() *ActionApplier {
	return &ActionApplier{}
}

// Apply prices one entry's classified hours against its matching rules.
// The rules arrive ordered by priority ascending (ties broken by id)
// and every matching rule contributes additively; priority only
// determines the order components are listed, never a first-match-wins
// short circuit, because simultaneous premiums (weekend + night
// differential) are a normal payroll requirement.
//
// A rule with an overtime_threshold condition is scoped to the hours
// exceeding that threshold; the emitted component is typed overtime or
// double_time depending on which boundary the threshold reaches.
// Unscoped rules apply to the entry's full worked hours.
func (a *ActionApplier) Apply(matched []payrule.PayRule, buckets paycalc.HourBuckets, t Thresholds) []paycalc.PayComponent {
	total := buckets.Total()

	var components []paycalc.PayComponent
	for _, rule := range matched {
		scopedHours := total
		bucketType := paycalc.ComponentTypeRegular
		if th := rule.Conditions.OvertimeThreshold; th != nil {
			scopedHours = decimal.Max(total.Sub(*th), decimal.Zero)
			if th.GreaterThanOrEqual(t.DoubleTime) {
				bucketType = paycalc.ComponentTypeDoubleTime
			} else {
				bucketType = paycalc.ComponentTypeOvertime
			}
		}

		act := rule.Actions

		if act.PayMultiplier != nil && scopedHours.IsPositive() {
			hours := scopedHours
			components = append(components, paycalc.PayComponent{
				Name:       componentName(act.ComponentName, rule.Name),
				Type:       bucketType,
				Hours:      &hours,
				Multiplier: act.PayMultiplier,
				RuleName:   rule.Name,
			})
		}

		if act.FlatAllowance != nil {
			// One occurrence per qualifying entry, independent of hours.
			amount := *act.FlatAllowance
			components = append(components, paycalc.PayComponent{
				Name:     componentName(act.AllowanceName, rule.Name),
				Type:     paycalc.ComponentTypeAllowance,
				Amount:   &amount,
				RuleName: rule.Name,
			})
		}

		if act.ShiftDifferential != nil && scopedHours.IsPositive() {
			hours := scopedHours
			amount := act.ShiftDifferential.Mul(scopedHours)
			components = append(components, paycalc.PayComponent{
				Name:         componentName(act.DifferentialName, rule.Name),
				Type:         paycalc.ComponentTypeDifferential,
				Hours:        &hours,
				Differential: act.ShiftDifferential,
				Amount:       &amount,
				RuleName:     rule.Name,
			})
		}
	}

	return components
}

func componentName(name *string, fallback string) string {
	if name != nil && *name != "" {
		return *name
	}
	return fallback
}
