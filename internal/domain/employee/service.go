package employee

import "context"

// EmployeeService manages the provisioned employee roster. Employees are
// created implicitly by ingestion; the service only reads and renames them.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
