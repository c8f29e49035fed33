// Package memory provides an in-memory career repository. It mirrors
// the SQLite adapter's allocation and de-duplication semantics and is
// used by tests and dry runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
)

var _ driven.Repository = (*Repository)(nil)

// Repository is a thread-safe in-memory implementation of the career
// repository.
type Repository struct {
	mu sync.RWMutex

	employees   []domain.Employee
	experiences []domain.Experience
	educations  []domain.Education

	// join tables: employee id -> row ids, insertion order
	employeeExperiences map[int64][]int64
	employeeEducations  map[int64][]int64
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		employeeExperiences: make(map[int64][]int64),
		employeeEducations:  make(map[int64][]int64),
	}
}

// Commit persists one person record under the same semantics as the
// SQLite store: employee reused by exact name, entry rows appended with
// max(id)+1 allocation.
func (r *Repository) Commit(_ context.Context, rec *domain.PersonRecord) (*domain.CommitResult, error) {
	if rec == nil || rec.Name == "" {
		return nil, fmt.Errorf("%w: person record must carry a name", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	employeeID := r.ensureEmployee(rec.Name)
	result := &domain.CommitResult{EmployeeID: employeeID}

	for _, entry := range rec.Experience {
		id := int64(len(r.experiences)) + 1
		r.experiences = append(r.experiences, domain.Experience{
			ID:           id,
			Organization: entry.Organization,
			Role:         entry.Role,
			Start:        entry.Start,
			End:          entry.End,
			Current:      entry.Current,
			Location:     entry.Location,
		})
		r.employeeExperiences[employeeID] = append(r.employeeExperiences[employeeID], id)
		result.ExperienceIDs = append(result.ExperienceIDs, id)
	}

	for _, entry := range rec.Education {
		id := int64(len(r.educations)) + 1
		r.educations = append(r.educations, domain.Education{
			ID:     id,
			School: entry.School,
			Degree: entry.Degree,
			Start:  entry.Start,
			End:    entry.End,
		})
		r.employeeEducations[employeeID] = append(r.employeeEducations[employeeID], id)
		result.EducationIDs = append(result.EducationIDs, id)
	}

	return result, nil
}

func (r *Repository) ensureEmployee(name string) int64 {
	for _, emp := range r.employees {
		if emp.Name == name {
			return emp.ID
		}
	}
	id := int64(len(r.employees)) + 1
	r.employees = append(r.employees, domain.Employee{ID: id, Name: name})
	return id
}

// FindEmployeeByName returns the employee row for an exact name match.
func (r *Repository) FindEmployeeByName(_ context.Context, name string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.Name == name {
			found := emp
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListExperiences returns the experience rows joined to an employee.
func (r *Repository) ListExperiences(_ context.Context, employeeID int64) ([]domain.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Experience
	for _, id := range r.employeeExperiences[employeeID] {
		out = append(out, r.experiences[id-1])
	}
	return out, nil
}

// ListEducations returns the education rows joined to an employee.
func (r *Repository) ListEducations(_ context.Context, employeeID int64) ([]domain.Education, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Education
	for _, id := range r.employeeEducations[employeeID] {
		out = append(out, r.educations[id-1])
	}
	return out, nil
}

// Counts returns row counts for all five tables.
func (r *Repository) Counts(_ context.Context) (*domain.TableCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := &domain.TableCounts{
		Employees:   int64(len(r.employees)),
		Experiences: int64(len(r.experiences)),
		Educations:  int64(len(r.educations)),
	}
	for _, ids := range r.employeeExperiences {
		counts.EmployeeExperiences += int64(len(ids))
	}
	for _, ids := range r.employeeEducations {
		counts.EmployeeEducations += int64(len(ids))
	}
	return counts, nil
}

// Close is a no-op for the in-memory repository.
func (r *Repository) Close() error {
	return nil
}
