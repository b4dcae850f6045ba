package paycalc

import "errors"

var (
	ErrNegativeDuration     = errors.New("time entry clock-out precedes clock-in")
	ErrCalculationNotFound  = errors.New("pay calculation not found")
	ErrCalculationSaveFault = errors.New("failed to persist pay calculations")
)
