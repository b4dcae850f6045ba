package paycalc

import (
	"time"

	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
)

// Thresholds are the daily-hours boundaries the classifier partitions
// worked time by.
type Thresholds struct {
	Regular    decimal.Decimal // regular -> overtime boundary
	DoubleTime decimal.Decimal // overtime -> double-time boundary
}

// DefaultThresholds returns the 8h/12h daily boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Regular:    decimal.NewFromInt(8),
		DoubleTime: decimal.NewFromInt(12),
	}
}

type HoursClassifier struct {
}

func NewHoursClassifier() *HoursClassifier {
	return &HoursClassifier{}
}

// Classify computes the worked duration of one time entry and splits it
// into regular / overtime / double-time buckets. Worked duration is
// clock-out minus clock-in minus break minutes, floored at zero, at
// minute precision. The buckets always sum to the worked duration.
//
// An open entry (no clock-out) yields all-zero buckets; it is not
// eligible for payroll. A clock-out before clock-in is a
// data-integrity fault and is reported, never silently clamped.
func (c *HoursClassifier) Classify(entry timeentry.TimeEntry, t Thresholds) (paycalc.HourBuckets, error) {
	if entry.ClockOutTime == nil {
		return paycalc.HourBuckets{}, nil
	}
	if entry.ClockOutTime.Before(entry.ClockInTime) {
		return paycalc.HourBuckets{}, paycalc.ErrNegativeDuration
	}

	workedMinutes := int64(entry.ClockOutTime.Sub(entry.ClockInTime) / time.Minute)
	workedMinutes -= int64(entry.BreakMinutes)
	if workedMinutes < 0 {
		workedMinutes = 0
	}

	raw := decimal.NewFromInt(workedMinutes).Div(decimal.NewFromInt(60))

	regular := decimal.Min(raw, t.Regular)
	overtime := decimal.Min(
		decimal.Max(raw.Sub(t.Regular), decimal.Zero),
		t.DoubleTime.Sub(t.Regular),
	)
	doubleTime := decimal.Max(raw.Sub(t.DoubleTime), decimal.Zero)

	return paycalc.HourBuckets{
		Regular:    regular,
		Overtime:   overtime,
		DoubleTime: doubleTime,
	}, nil
}
