package payrule

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionsIsEmpty(t *testing.T) {
	assert.True(t, Conditions{}.IsEmpty())
	assert.False(t, Conditions{DaysOfWeek: []int{6}}.IsEmpty())

	th := decimal.NewFromInt(8)
	assert.False(t, Conditions{OvertimeThreshold: &th}.IsEmpty())
	assert.False(t, Conditions{TimeRange: &TimeRange{StartHour: 18, EndHour: 6}}.IsEmpty())
	assert.False(t, Conditions{Roles: []string{"nurse"}}.IsEmpty())
}

func TestActionsIsEmpty(t *testing.T) {
	assert.True(t, Actions{}.IsEmpty())

	mult := decimal.NewFromFloat(1.5)
	assert.False(t, Actions{PayMultiplier: &mult}.IsEmpty())

	// A cap alone is not an action.
	maxAmount := decimal.NewFromInt(100)
	assert.True(t, Actions{MaxAmount: &maxAmount}.IsEmpty())
}

func TestPayRuleIsWellFormed(t *testing.T) {
	mult := decimal.NewFromFloat(1.5)
	rule := PayRule{
		Name:       "weekend premium",
		Conditions: Conditions{DaysOfWeek: []int{0, 6}},
		Actions:    Actions{PayMultiplier: &mult},
	}
	assert.True(t, rule.IsWellFormed())

	assert.False(t, PayRule{Name: "no actions", Conditions: Conditions{DaysOfWeek: []int{1}}}.IsWellFormed())
	assert.False(t, PayRule{Name: "no conditions", Actions: Actions{PayMultiplier: &mult}}.IsWellFormed())
}

func TestConditionsJSONShape(t *testing.T) {
	raw := `{
		"day_of_week": [0, 6],
		"time_range": {"start_hour": 18, "end_hour": 6},
		"overtime_threshold": "8",
		"roles": ["nurse"]
	}`

	var c Conditions
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, []int{0, 6}, c.DaysOfWeek)
	require.NotNil(t, c.TimeRange)
	assert.Equal(t, 18, c.TimeRange.StartHour)
	require.NotNil(t, c.OvertimeThreshold)
	assert.True(t, c.OvertimeThreshold.Equal(decimal.NewFromInt(8)))

	out, err := json.Marshal(Conditions{DaysOfWeek: []int{6}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"day_of_week":[6]}`, string(out), "omitted categories stay out of stored JSON")
}
