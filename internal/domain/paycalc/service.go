package paycalc

import "context"

// PayCalcService runs pay-rule calculations over a pay period.
type PayCalcService interface {
	// Calculate loads the active rule snapshot and eligible time
	// entries for the period, classifies and prices every entry, and
	// persists one audit row per entry. Re-running with identical
	// inputs produces identical employee results; superseding prior
	// rows for the period is the caller's contract.
	Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error)

	ListCalculations(ctx context.Context, filter CalculationFilter) (ListCalculationResponse, error)
}
