package payrule

import "errors"

var (
	ErrPayRuleNotFound   = errors.New("pay rule not found")
	ErrPayRuleNameExists = errors.New("pay rule name already exists")
	ErrPayRuleInUse      = errors.New("pay rule is referenced by persisted calculations and cannot be deleted")
)
