package payrule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shopspring/decimal"
)

type PayRuleServiceImpl struct {
	ruleRepo payrule.PayRuleRepository
	calcRepo paycalc.PayCalculationRepository
}

func NewPayRuleService(
	ruleRepo payrule.PayRuleRepository,
	calcRepo paycalc.PayCalculationRepository,
) payrule.PayRuleService {
	return &PayRuleServiceImpl{
		ruleRepo: ruleRepo,
		calcRepo: calcRepo,
	}
}

// Helper to get the acting user from JWT context
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *PayRuleServiceImpl) Create(ctx context.Context, req payrule.CreatePayRuleRequest) (payrule.PayRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payrule.PayRuleResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payrule.PayRuleResponse{}, err
	}

	rule := payrule.PayRule{
		Name:        req.Name,
		Priority:    req.Priority,
		Description: req.Description,
		IsActive:    true,
		Conditions:  req.Conditions,
		Actions:     req.Actions,
		CreatedBy:   userID,
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		return payrule.PayRuleResponse{}, err
	}

	return mapToRuleResponse(created), nil
}

func (s *PayRuleServiceImpl) Get(ctx context.Context, id string) (payrule.PayRuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return payrule.PayRuleResponse{}, err
	}

	return mapToRuleResponse(rule), nil
}

func (s *PayRuleServiceImpl) List(ctx context.Context) (payrule.ListPayRuleResponse, error) {
	rules, totalCount, err := s.ruleRepo.List(ctx)
	if err != nil {
		return payrule.ListPayRuleResponse{}, err
	}

	data := make([]payrule.PayRuleResponse, 0, len(rules))
	for _, rule := range rules {
		data = append(data, mapToRuleResponse(rule))
	}

	return payrule.ListPayRuleResponse{
		Data:       data,
		TotalCount: totalCount,
	}, nil
}

func (s *PayRuleServiceImpl) Update(ctx context.Context, req payrule.UpdatePayRuleRequest) (payrule.PayRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payrule.PayRuleResponse{}, err
	}

	if err := s.ruleRepo.Update(ctx, req); err != nil {
		return payrule.PayRuleResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete hard-deletes a rule, unless a persisted calculation still
// references it; audited rules can only be soft-disabled via is_active.
func (s *PayRuleServiceImpl) Delete(ctx context.Context, id string) error {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := s.calcRepo.IsRuleReferenced(ctx, rule.Name)
	if err != nil {
		return fmt.Errorf("failed to check rule references: %w", err)
	}
	if referenced {
		return payrule.ErrPayRuleInUse
	}

	return s.ruleRepo.Delete(ctx, id)
}

// Test applies one rule's action in isolation to a hypothetical
// (hours_worked, base_rate) pair. Exists purely for authoring feedback
// and never writes persisted state.
func (s *PayRuleServiceImpl) Test(ctx context.Context, id string, req payrule.TestPayRuleRequest) (payrule.TestPayRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payrule.TestPayRuleResponse{}, err
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return payrule.TestPayRuleResponse{}, err
	}

	amount := previewAmount(rule.Actions, req.HoursWorked, req.BaseRate)

	return payrule.TestPayRuleResponse{
		RuleID:           rule.ID,
		RuleName:         rule.Name,
		CalculatedAmount: amount,
	}, nil
}

func previewAmount(act payrule.Actions, hoursWorked, baseRate decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch {
	case act.PayMultiplier != nil:
		amount = hoursWorked.Mul(baseRate).Mul(*act.PayMultiplier)
	case act.FlatAllowance != nil:
		amount = *act.FlatAllowance
	case act.ShiftDifferential != nil:
		amount = hoursWorked.Mul(*act.ShiftDifferential)
	default:
		amount = hoursWorked.Mul(baseRate)
	}

	if act.MaxAmount != nil && amount.GreaterThan(*act.MaxAmount) {
		amount = *act.MaxAmount
	}

	return amount
}

func mapToRuleResponse(r payrule.PayRule) payrule.PayRuleResponse {
	return payrule.PayRuleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Priority:    r.Priority,
		Description: r.Description,
		IsActive:    r.IsActive,
		Conditions:  r.Conditions,
		Actions:     r.Actions,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
