package driven

import (
	"context"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
)

// Repository owns the employee, experience and education tables plus
// their join tables. It is the only component that allocates surrogate
// keys or mutates table state.
type Repository interface {
	// Commit persists one person record as a single logical
	// transaction:
	//
	//   1. Look up the name in the employee table; if absent, allocate
	//      max(id)+1 (1 for an empty table) and insert.
	//   2. Insert each experience entry with a fresh monotonic id plus
	//      a join row to the employee.
	//   3. Same for education entries.
	//
	// Rows are append-only: re-committing a record appends new
	// experience/education rows rather than updating prior ones.
	// Either all writes succeed or none do; a join row never
	// references a missing row.
	Commit(ctx context.Context, rec *domain.PersonRecord) (*domain.CommitResult, error)

	// FindEmployeeByName returns the employee row for an exact name
	// match, or domain.ErrNotFound.
	FindEmployeeByName(ctx context.Context, name string) (*domain.Employee, error)

	// ListExperiences returns the experience rows joined to an
	// employee, in insertion order.
	ListExperiences(ctx context.Context, employeeID int64) ([]domain.Experience, error)

	// ListEducations returns the education rows joined to an employee,
	// in insertion order.
	ListEducations(ctx context.Context, employeeID int64) ([]domain.Education, error)

	// Counts returns row counts for all five tables.
	Counts(ctx context.Context) (*domain.TableCounts, error)

	// Close releases the underlying storage.
	Close() error
}
