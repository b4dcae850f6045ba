package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository is the read-only view of the time-entry store the
// calculation engine consumes.
type TimeEntryRepository interface {
	// ListApprovedInPeriod returns eligible entries (approved, clocked
	// out) whose clock-in date falls within [periodStart, periodEnd],
	// optionally filtered to userIDs. Results are ordered by user id
	// then clock-in time.
	ListApprovedInPeriod(ctx context.Context, periodStart, periodEnd time.Time, userIDs []string) ([]TimeEntry, error)
}
