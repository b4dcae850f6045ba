package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/database"
)

type payCalculationRepository struct {
	db *database.DB
}

func NewPayCalculationRepository(db *database.DB) paycalc.PayCalculationRepository {
	return &payCalculationRepository{db: db}
}

// SaveAll writes every calculation row of a run in one transaction via
// a single batch round trip. Either all rows commit or none do.
func (r *payCalculationRepository) SaveAll(ctx context.Context, calculations []paycalc.PayCalculation) error {
	if len(calculations) == 0 {
		return nil
	}

	query := `
		INSERT INTO pay_calculations (
			id, user_id, pay_period_start, pay_period_end,
			regular_hours, overtime_hours, double_time_hours, total_allowances,
			pay_components, rules_applied, time_entry_id, calculated_by_id, calculated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, c := range calculations {
			componentsJSON, err := json.Marshal(c.PayComponents)
			if err != nil {
				return fmt.Errorf("failed to encode pay components: %w", err)
			}
			batch.Queue(query,
				c.ID, c.UserID, c.PayPeriodStart, c.PayPeriodEnd,
				c.RegularHours, c.OvertimeHours, c.DoubleTimeHours, c.TotalAllowances,
				componentsJSON, c.RulesApplied, c.TimeEntryID, c.CalculatedByID, c.CalculatedAt,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()
		for range calculations {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to insert pay calculation: %w", err)
			}
		}
		return results.Close()
	})
}

func (r *payCalculationRepository) List(ctx context.Context, filter paycalc.CalculationFilter) ([]paycalc.PayCalculation, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `FROM pay_calculations WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.PeriodStart != nil {
		baseQuery += fmt.Sprintf(" AND pay_period_start >= $%d", argIdx)
		args = append(args, *filter.PeriodStart)
		argIdx++
	}
	if filter.PeriodEnd != nil {
		baseQuery += fmt.Sprintf(" AND pay_period_end <= $%d", argIdx)
		args = append(args, *filter.PeriodEnd)
		argIdx++
	}
	if filter.UserID != nil {
		baseQuery += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count pay calculations: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT id, user_id, pay_period_start, pay_period_end,
			   regular_hours, overtime_hours, double_time_hours, total_allowances,
			   pay_components, rules_applied, time_entry_id, calculated_by_id, calculated_at
		%s
		ORDER BY calculated_at DESC, id ASC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pay calculations: %w", err)
	}
	defer rows.Close()

	var calculations []paycalc.PayCalculation
	for rows.Next() {
		var c paycalc.PayCalculation
		var componentsBytes []byte
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.PayPeriodStart, &c.PayPeriodEnd,
			&c.RegularHours, &c.OvertimeHours, &c.DoubleTimeHours, &c.TotalAllowances,
			&componentsBytes, &c.RulesApplied, &c.TimeEntryID, &c.CalculatedByID, &c.CalculatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan pay calculation: %w", err)
		}
		_ = json.Unmarshal(componentsBytes, &c.PayComponents)
		calculations = append(calculations, c)
	}

	return calculations, totalCount, rows.Err()
}

func (r *payCalculationRepository) IsRuleReferenced(ctx context.Context, ruleName string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var referenced bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pay_calculations WHERE $1 = ANY(rules_applied))`,
		ruleName,
	).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("failed to check rule references: %w", err)
	}

	return referenced, nil
}
