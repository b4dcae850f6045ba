package employee

import "time"

// Employee is the directory collaborator's record: identity plus the
// current role-name set the condition matcher evaluates against.
type Employee struct {
	ID        string
	Username  string
	Roles     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
