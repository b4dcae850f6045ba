package paycalc

import (
	"testing"
	"time"

	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func closedEntry(clockIn time.Time, worked time.Duration, breakMinutes int) timeentry.TimeEntry {
	clockOut := clockIn.Add(worked)
	return timeentry.TimeEntry{
		ID:           "entry-1",
		UserID:       "user-1",
		ClockInTime:  clockIn,
		ClockOutTime: &clockOut,
		BreakMinutes: breakMinutes,
		Status:       timeentry.StatusApproved,
	}
}

var testClockIn = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func TestHoursClassifier_TenHourShift(t *testing.T) {
	c := NewHoursClassifier()

	buckets, err := c.Classify(closedEntry(testClockIn, 10*time.Hour, 0), DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Regular.Equal(dec(t, "8")), "regular = %s", buckets.Regular)
	assert.True(t, buckets.Overtime.Equal(dec(t, "2")), "overtime = %s", buckets.Overtime)
	assert.True(t, buckets.DoubleTime.IsZero(), "double_time = %s", buckets.DoubleTime)
}

func TestHoursClassifier_FourteenHourShift(t *testing.T) {
	c := NewHoursClassifier()

	buckets, err := c.Classify(closedEntry(testClockIn, 14*time.Hour, 0), DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Regular.Equal(dec(t, "8")))
	assert.True(t, buckets.Overtime.Equal(dec(t, "4")))
	assert.True(t, buckets.DoubleTime.Equal(dec(t, "2")))
}

func TestHoursClassifier_WithinRegularThreshold(t *testing.T) {
	c := NewHoursClassifier()

	buckets, err := c.Classify(closedEntry(testClockIn, 6*time.Hour+30*time.Minute, 0), DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Regular.Equal(dec(t, "6.5")))
	assert.True(t, buckets.Overtime.IsZero())
	assert.True(t, buckets.DoubleTime.IsZero())
}

func TestHoursClassifier_BreakMinutesDeducted(t *testing.T) {
	c := NewHoursClassifier()

	// 9h span with a 60 minute break works out to exactly the regular
	// threshold.
	buckets, err := c.Classify(closedEntry(testClockIn, 9*time.Hour, 60), DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Regular.Equal(dec(t, "8")))
	assert.True(t, buckets.Overtime.IsZero())
	assert.True(t, buckets.DoubleTime.IsZero())
}

func TestHoursClassifier_BreakLongerThanShiftFloorsAtZero(t *testing.T) {
	c := NewHoursClassifier()

	buckets, err := c.Classify(closedEntry(testClockIn, 30*time.Minute, 120), DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Regular.IsZero())
	assert.True(t, buckets.Overtime.IsZero())
	assert.True(t, buckets.DoubleTime.IsZero())
}

func TestHoursClassifier_OpenEntryYieldsZeroBuckets(t *testing.T) {
	c := NewHoursClassifier()

	open := timeentry.TimeEntry{
		ID:          "entry-open",
		UserID:      "user-1",
		ClockInTime: testClockIn,
		Status:      timeentry.StatusApproved,
	}

	buckets, err := c.Classify(open, DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Total().IsZero())
}

func TestHoursClassifier_NegativeDurationReported(t *testing.T) {
	c := NewHoursClassifier()

	clockOut := testClockIn.Add(-2 * time.Hour)
	bad := timeentry.TimeEntry{
		ID:           "entry-bad",
		UserID:       "user-1",
		ClockInTime:  testClockIn,
		ClockOutTime: &clockOut,
		Status:       timeentry.StatusApproved,
	}

	_, err := c.Classify(bad, DefaultThresholds())

	assert.ErrorIs(t, err, paycalc.ErrNegativeDuration)
}

func TestHoursClassifier_ZeroDurationIsNotAnError(t *testing.T) {
	c := NewHoursClassifier()

	buckets, err := c.Classify(closedEntry(testClockIn, 0, 0), DefaultThresholds())

	require.NoError(t, err)
	assert.True(t, buckets.Total().IsZero())
}

func TestHoursClassifier_CustomThresholds(t *testing.T) {
	c := NewHoursClassifier()
	thresholds := Thresholds{Regular: dec(t, "6"), DoubleTime: dec(t, "10")}

	buckets, err := c.Classify(closedEntry(testClockIn, 11*time.Hour, 0), thresholds)

	require.NoError(t, err)
	assert.True(t, buckets.Regular.Equal(dec(t, "6")))
	assert.True(t, buckets.Overtime.Equal(dec(t, "4")))
	assert.True(t, buckets.DoubleTime.Equal(dec(t, "1")))
}

func TestHoursClassifier_BucketsAlwaysSumToWorkedHours(t *testing.T) {
	c := NewHoursClassifier()

	cases := []struct {
		name       string
		worked     time.Duration
		breakMin   int
		thresholds Thresholds
	}{
		{"short shift", 3*time.Hour + 17*time.Minute, 0, DefaultThresholds()},
		{"overtime shift", 10*time.Hour + 45*time.Minute, 30, DefaultThresholds()},
		{"double time shift", 15 * time.Hour, 15, DefaultThresholds()},
		{"low thresholds", 9 * time.Hour, 0, Thresholds{Regular: decimal.NewFromInt(4), DoubleTime: decimal.NewFromInt(6)}},
		{"high thresholds", 9 * time.Hour, 0, Thresholds{Regular: decimal.NewFromInt(10), DoubleTime: decimal.NewFromInt(16)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := closedEntry(testClockIn, tc.worked, tc.breakMin)
			buckets, err := c.Classify(entry, tc.thresholds)
			require.NoError(t, err)

			workedMinutes := int64(tc.worked/time.Minute) - int64(tc.breakMin)
			raw := decimal.NewFromInt(workedMinutes).Div(decimal.NewFromInt(60))
			assert.True(t, buckets.Total().Equal(raw),
				"sum %s != raw %s", buckets.Total(), raw)
		})
	}
}
