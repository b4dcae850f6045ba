package paycalc

import "context"

// PayCalculationRepository is the append-only persistence sink for
// calculation results.
type PayCalculationRepository interface {
	// SaveAll inserts every row in a single transaction. Either all
	// rows commit or none do, so a retried run never double-counts.
	SaveAll(ctx context.Context, calculations []PayCalculation) error

	List(ctx context.Context, filter CalculationFilter) ([]PayCalculation, int64, error)

	// IsRuleReferenced reports whether any persisted calculation was
	// produced by the named rule. Referenced rules must not be hard
	// deleted.
	IsRuleReferenced(ctx context.Context, ruleName string) (bool, error)
}
