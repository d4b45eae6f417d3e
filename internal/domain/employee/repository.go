package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// EnsureExists inserts an employee with a placeholder name unless the id
	// is already present. Used by ingestion auto-provisioning.
	EnsureExists(ctx context.Context, id, name string) error

	// GetByID retrieves one employee. Returns ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees ordered by id.
	List(ctx context.Context) ([]Employee, error)

	// Update rewrites the display name and default in-time.
	Update(ctx context.Context, emp Employee) error
}
