package payrule

import "context"

// PayRuleService defines the authoring surface for pay rules plus the
// isolated preview operation used for authoring feedback.
type PayRuleService interface {
	Create(ctx context.Context, req CreatePayRuleRequest) (PayRuleResponse, error)
	Get(ctx context.Context, id string) (PayRuleResponse, error)
	List(ctx context.Context) (ListPayRuleResponse, error)
	Update(ctx context.Context, req UpdatePayRuleRequest) (PayRuleResponse, error)
	Delete(ctx context.Context, id string) error

	// Test applies one rule's action in isolation to a hypothetical
	// (hours, base_rate) pair. It never touches persisted time entries
	// or writes any state.
	Test(ctx context.Context, id string, req TestPayRuleRequest) (TestPayRuleResponse, error)
}
