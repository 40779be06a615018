// Package students contains the durable store for Student records.
package students

import (
	"context"

	"github.com/dmitrijs2005/studentdesk/internal/models"
)

// DepartmentCount is one row of the per-department aggregation, ordered by
// department name.
type DepartmentCount struct {
	Department string
	Count      int
}

// Repository is the keyed store for Student records. Implementations enforce
// roll and email uniqueness at write time; the duplicate checks and the
// insert run in a single unit of work, with durable UNIQUE constraints as
// backstop. The design assumes no concurrent external writer to the same
// storage target.
type Repository interface {
	// Add inserts a validated student and returns the assigned id. Fails
	// with a DuplicateKeyError when another student has the same roll
	// (checked first) or email.
	Add(ctx context.Context, s *models.Student) (int64, error)

	// Get looks a student up by primary key. Returns common.ErrNotFound
	// when the id does not exist.
	Get(ctx context.Context, id int64) (*models.Student, error)

	// GetAll lists every student sorted by name ascending, ties broken by
	// insertion order.
	GetAll(ctx context.Context) ([]models.Student, error)

	// Update rewrites all mutable fields of an existing student and
	// refreshes its last-modified timestamp. The uniqueness re-checks
	// exclude the record being updated. Returns whether a row changed;
	// common.ErrNotFound when s.ID does not exist.
	Update(ctx context.Context, s *models.Student) (bool, error)

	// Delete removes a student if present and reports whether a row was
	// removed. Absence is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// Search returns students whose name, roll, department, or email
	// contains query as a case-insensitive substring, sorted by name.
	Search(ctx context.Context, query string) ([]models.Student, error)

	// ByDepartment lists the students of one department, sorted by name.
	ByDepartment(ctx context.Context, department string) ([]models.Student, error)

	// Departments returns the sorted distinct department names present
	// among persisted students.
	Departments(ctx context.Context) ([]string, error)

	// CountByDepartment returns per-department student counts, covering
	// only departments with at least one student, sorted by department.
	CountByDepartment(ctx context.Context) ([]DepartmentCount, error)
}
