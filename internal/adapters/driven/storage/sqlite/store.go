package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tenure-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/tenure-cli/internal/core/domain"
	"github.com/custodia-labs/tenure-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Repository = (*Store)(nil)

// Store is the SQLite-backed career repository.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tenure/data/tenure.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tenure", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "tenure.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_career_tables.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Commit persists one person record as a single transaction. The
// employee row is reused when the name is already known; experience and
// education rows are append-only.
func (s *Store) Commit(ctx context.Context, rec *domain.PersonRecord) (*domain.CommitResult, error) {
	if rec == nil || rec.Name == "" {
		return nil, fmt.Errorf("%w: person record must carry a name", domain.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning commit: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after successful commit

	employeeID, err := s.ensureEmployee(ctx, tx, rec.Name)
	if err != nil {
		return nil, err
	}

	result := &domain.CommitResult{EmployeeID: employeeID}

	nextExpID, err := nextID(ctx, tx, "experiences")
	if err != nil {
		return nil, err
	}
	for _, entry := range rec.Experience {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO experiences (id, organization, role, start_date, end_date, is_current, location)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, nextExpID, entry.Organization, entry.Role, nullTime(entry.Start), nullTime(entry.End),
			entry.Current, entry.Location)
		if err != nil {
			return nil, fmt.Errorf("inserting experience row: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO employee_experiences (employee_id, experience_id) VALUES (?, ?)
		`, employeeID, nextExpID)
		if err != nil {
			return nil, fmt.Errorf("inserting experience join row: %w", err)
		}

		result.ExperienceIDs = append(result.ExperienceIDs, nextExpID)
		nextExpID++
	}

	nextEduID, err := nextID(ctx, tx, "educations")
	if err != nil {
		return nil, err
	}
	for _, entry := range rec.Education {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO educations (id, school, degree, start_date, end_date)
			VALUES (?, ?, ?, ?, ?)
		`, nextEduID, entry.School, entry.Degree, nullTime(entry.Start), nullTime(entry.End))
		if err != nil {
			return nil, fmt.Errorf("inserting education row: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO employee_educations (employee_id, education_id) VALUES (?, ?)
		`, employeeID, nextEduID)
		if err != nil {
			return nil, fmt.Errorf("inserting education join row: %w", err)
		}

		result.EducationIDs = append(result.EducationIDs, nextEduID)
		nextEduID++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing person record: %w", err)
	}
	return result, nil
}

// ensureEmployee returns the id for the name, inserting a new row with
// id max+1 when the name is unseen.
func (s *Store) ensureEmployee(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM employees WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("looking up employee: %w", err)
	}

	id, err = nextID(ctx, tx, "employees")
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO employees (id, name) VALUES (?, ?)", id, name); err != nil {
		return 0, fmt.Errorf("inserting employee: %w", err)
	}
	return id, nil
}

// nextID allocates the next surrogate key for a table: max(id)+1,
// starting at 1 for an empty table.
func nextID(ctx context.Context, tx *sql.Tx, table string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM "+table).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("allocating %s id: %w", table, err)
	}
	return id, nil
}

// FindEmployeeByName returns the employee row for an exact name match.
func (s *Store) FindEmployeeByName(ctx context.Context, name string) (*domain.Employee, error) {
	var emp domain.Employee
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM employees WHERE name = ?", name).Scan(&emp.ID, &emp.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding employee: %w", err)
	}
	return &emp, nil
}

// ListExperiences returns the experience rows joined to an employee in
// insertion order.
func (s *Store) ListExperiences(ctx context.Context, employeeID int64) ([]domain.Experience, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.organization, e.role, e.start_date, e.end_date, e.is_current, e.location
		FROM experiences e
		JOIN employee_experiences je ON je.experience_id = e.id
		WHERE je.employee_id = ?
		ORDER BY e.id
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("listing experiences: %w", err)
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		var exp domain.Experience
		var start, end sql.NullTime
		if err := rows.Scan(&exp.ID, &exp.Organization, &exp.Role, &start, &end,
			&exp.Current, &exp.Location); err != nil {
			return nil, fmt.Errorf("scanning experience: %w", err)
		}
		exp.Start = timePtr(start)
		exp.End = timePtr(end)
		out = append(out, exp)
	}
	return out, rows.Err()
}

// ListEducations returns the education rows joined to an employee in
// insertion order.
func (s *Store) ListEducations(ctx context.Context, employeeID int64) ([]domain.Education, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.school, e.degree, e.start_date, e.end_date
		FROM educations e
		JOIN employee_educations je ON je.education_id = e.id
		WHERE je.employee_id = ?
		ORDER BY e.id
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("listing educations: %w", err)
	}
	defer rows.Close()

	var out []domain.Education
	for rows.Next() {
		var edu domain.Education
		var start, end sql.NullTime
		if err := rows.Scan(&edu.ID, &edu.School, &edu.Degree, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning education: %w", err)
		}
		edu.Start = timePtr(start)
		edu.End = timePtr(end)
		out = append(out, edu)
	}
	return out, rows.Err()
}

// Counts returns row counts for all five tables.
func (s *Store) Counts(ctx context.Context) (*domain.TableCounts, error) {
	counts := &domain.TableCounts{}
	for _, q := range []struct {
		table string
		dst   *int64
	}{
		{"employees", &counts.Employees},
		{"experiences", &counts.Experiences},
		{"educations", &counts.Educations},
		{"employee_experiences", &counts.EmployeeExperiences},
		{"employee_educations", &counts.EmployeeEducations},
	} {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.table).Scan(q.dst); err != nil {
			return nil, fmt.Errorf("counting %s: %w", q.table, err)
		}
	}
	return counts, nil
}

// nullTime converts an optional time for storage.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// timePtr converts a scanned nullable time.
func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
