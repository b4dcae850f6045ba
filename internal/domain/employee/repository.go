package employee

import "context"

// EmployeeRepository is the read-only employee/role directory.
type EmployeeRepository interface {
	// GetByIDs returns the employees for the given ids, keyed by id.
	// Unknown ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]Employee, error)
}
