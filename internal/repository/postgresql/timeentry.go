package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftwise/wfm-backend-go/internal/domain/timeentry"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) ListApprovedInPeriod(ctx context.Context, periodStart, periodEnd time.Time, userIDs []string) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, clock_in_time, clock_out_time, break_minutes, status, created_at, updated_at
		FROM time_entries
		WHERE status = $1
		  AND clock_out_time IS NOT NULL
		  AND clock_in_time::date BETWEEN $2 AND $3
	`
	args := []interface{}{timeentry.StatusApproved, periodStart, periodEnd}

	if len(userIDs) > 0 {
		query += ` AND user_id = ANY($4)`
		args = append(args, userIDs)
	}

	query += ` ORDER BY user_id ASC, clock_in_time ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var e timeentry.TimeEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ClockInTime, &e.ClockOutTime, &e.BreakMinutes, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
