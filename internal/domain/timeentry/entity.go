package timeentry

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// TimeEntry is the time-capture collaborator's record, consumed
// read-only by the calculation engine. ClockOutTime is nil while the
// entry is still open; open entries are never eligible for payroll.
type TimeEntry struct {
	ID           string
	UserID       string
	ClockInTime  time.Time
	ClockOutTime *time.Time
	BreakMinutes int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEligible reports whether the entry can enter a payroll run: closed
// and approved.
func (e TimeEntry) IsEligible() bool {
	return e.Status == StatusApproved && e.ClockOutTime != nil
}
