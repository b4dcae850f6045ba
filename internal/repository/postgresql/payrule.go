package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/database"
)

type payRuleRepository struct {
	db *database.DB
}

func NewPayRuleRepository(db *database.DB) payrule.PayRuleRepository {
	return &payRuleRepository{db: db}
}

func (r *payRuleRepository) Create(ctx context.Context, rule payrule.PayRule) (payrule.PayRule, error) {
	q := GetQuerier(ctx, r.db)

	conditionsJSON, _ := json.Marshal(rule.Conditions)
	actionsJSON, _ := json.Marshal(rule.Actions)

	query := `
		INSERT INTO pay_rules (name, priority, description, is_active, conditions, actions, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, priority, description, is_active, conditions, actions, created_by, created_at, updated_at
	`

	created, err := scanPayRule(q.QueryRow(ctx, query,
		rule.Name, rule.Priority, rule.Description, rule.IsActive, conditionsJSON, actionsJSON, rule.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_pay_rule_name") {
			return payrule.PayRule{}, payrule.ErrPayRuleNameExists
		}
		return payrule.PayRule{}, fmt.Errorf("failed to create pay rule: %w", err)
	}

	return created, nil
}

func (r *payRuleRepository) GetByID(ctx context.Context, id string) (payrule.PayRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, priority, description, is_active, conditions, actions, created_by, created_at, updated_at
		FROM pay_rules
		WHERE id = $1
	`

	rule, err := scanPayRule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrule.PayRule{}, payrule.ErrPayRuleNotFound
		}
		return payrule.PayRule{}, fmt.Errorf("failed to get pay rule: %w", err)
	}

	return rule, nil
}

func (r *payRuleRepository) ListActiveByPriority(ctx context.Context) ([]payrule.PayRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, priority, description, is_active, conditions, actions, created_by, created_at, updated_at
		FROM pay_rules
		WHERE is_active = true
		ORDER BY priority ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active pay rules: %w", err)
	}
	defer rows.Close()

	var rules []payrule.PayRule
	for rows.Next() {
		rule, err := scanPayRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (r *payRuleRepository) List(ctx context.Context) ([]payrule.PayRule, int64, error) {
	q := GetQuerier(ctx, r.db)

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM pay_rules`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count pay rules: %w", err)
	}

	query := `
		SELECT id, name, priority, description, is_active, conditions, actions, created_by, created_at, updated_at
		FROM pay_rules
		ORDER BY priority ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pay rules: %w", err)
	}
	defer rows.Close()

	var rules []payrule.PayRule
	for rows.Next() {
		rule, err := scanPayRule(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan pay rule: %w", err)
		}
		rules = append(rules, rule)
	}

	return rules, totalCount, rows.Err()
}

func (r *payRuleRepository) Update(ctx context.Context, req payrule.UpdatePayRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Priority != nil {
		setParts = append(setParts, fmt.Sprintf("priority = $%d", argIdx))
		args = append(args, *req.Priority)
		argIdx++
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if req.Conditions != nil {
		conditionsJSON, _ := json.Marshal(req.Conditions)
		setParts = append(setParts, fmt.Sprintf("conditions = $%d", argIdx))
		args = append(args, conditionsJSON)
		argIdx++
	}
	if req.Actions != nil {
		actionsJSON, _ := json.Marshal(req.Actions)
		setParts = append(setParts, fmt.Sprintf("actions = $%d", argIdx))
		args = append(args, actionsJSON)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE pay_rules SET %s WHERE id = $1 RETURNING id`, strings.Join(setParts, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payrule.ErrPayRuleNotFound
		}
		if strings.Contains(err.Error(), "uk_pay_rule_name") {
			return payrule.ErrPayRuleNameExists
		}
		return fmt.Errorf("failed to update pay rule: %w", err)
	}

	return nil
}

func (r *payRuleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM pay_rules WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrule.ErrPayRuleNotFound
		}
		return fmt.Errorf("failed to delete pay rule: %w", err)
	}

	return nil
}

func scanPayRule(row pgx.Row) (payrule.PayRule, error) {
	var rule payrule.PayRule
	var conditionsBytes, actionsBytes []byte

	err := row.Scan(
		&rule.ID, &rule.Name, &rule.Priority, &rule.Description, &rule.IsActive,
		&conditionsBytes, &actionsBytes, &rule.CreatedBy, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return payrule.PayRule{}, err
	}

	_ = json.Unmarshal(conditionsBytes, &rule.Conditions)
	_ = json.Unmarshal(actionsBytes, &rule.Actions)

	return rule, nil
}
