package payrule

import "context"

// PayRuleRepository defines data access methods for pay rules.
type PayRuleRepository interface {
	Create(ctx context.Context, rule PayRule) (PayRule, error)
	GetByID(ctx context.Context, id string) (PayRule, error)

	// ListActiveByPriority returns active rules ordered by priority
	// ascending, then by id for ties. This is the read contract the
	// calculation engine depends on.
	ListActiveByPriority(ctx context.Context) ([]PayRule, error)

	List(ctx context.Context) ([]PayRule, int64, error)
	Update(ctx context.Context, req UpdatePayRuleRequest) error
	Delete(ctx context.Context, id string) error
}
