package students

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/studentdesk/internal/common"
	"github.com/dmitrijs2005/studentdesk/internal/dbx"
	"github.com/dmitrijs2005/studentdesk/internal/models"
)

const studentColumns = `id, name, roll, department, email, phone`

// SQLiteRepository implements Repository on a process-lifetime *sql.DB.
// Every operation is self-contained; multi-row writes run inside a
// transaction via dbx.WithTx.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, s *models.Student) (int64, error) {
	var id int64
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		// roll is checked before email so the first collision reported is
		// always the roll one
		dup, err := exists(ctx, tx, `SELECT id FROM students WHERE roll = ?`, s.Roll)
		if err != nil {
			return err
		}
		if dup {
			return &common.DuplicateKeyError{Field: "roll number", Value: s.Roll}
		}
		dup, err = exists(ctx, tx, `SELECT id FROM students WHERE email = ?`, s.Email)
		if err != nil {
			return err
		}
		if dup {
			return &common.DuplicateKeyError{Field: "email", Value: s.Email}
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO students (name, roll, department, email, phone) VALUES (?, ?, ?, ?, ?)`,
			s.Name, s.Roll, s.Department, s.Email, s.Phone)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, r.mapWriteErr("add student", s, err)
	}
	return id, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	s, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, &common.StorageError{Op: "get student", Err: err}
	}
	return s, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	return r.queryStudents(ctx, "get all students",
		`SELECT `+studentColumns+` FROM students ORDER BY name, id`)
}

func (r *SQLiteRepository) Update(ctx context.Context, s *models.Student) (bool, error) {
	var changed bool
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ok, err := exists(ctx, tx, `SELECT id FROM students WHERE id = ?`, s.ID)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrNotFound
		}

		// re-check uniqueness, excluding the record being updated
		dup, err := exists(ctx, tx, `SELECT id FROM students WHERE roll = ? AND id != ?`, s.Roll, s.ID)
		if err != nil {
			return err
		}
		if dup {
			return &common.DuplicateKeyError{Field: "roll number", Value: s.Roll}
		}
		dup, err = exists(ctx, tx, `SELECT id FROM students WHERE email = ? AND id != ?`, s.Email, s.ID)
		if err != nil {
			return err
		}
		if dup {
			return &common.DuplicateKeyError{Field: "email", Value: s.Email}
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE students
			 SET name = ?, roll = ?, department = ?, email = ?, phone = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			s.Name, s.Roll, s.Department, s.Email, s.Phone, s.ID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		changed = n > 0
		return err
	})
	if err != nil {
		return false, r.mapWriteErr("update student", s, err)
	}
	return changed, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return false, &common.StorageError{Op: "delete student", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &common.StorageError{Op: "delete student", Err: err}
	}
	return n > 0, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, query string) ([]models.Student, error) {
	// SQLite LIKE is case-insensitive for ASCII
	pattern := "%" + query + "%"
	return r.queryStudents(ctx, "search students",
		`SELECT `+studentColumns+` FROM students
		 WHERE name LIKE ? OR roll LIKE ? OR department LIKE ? OR email LIKE ?
		 ORDER BY name, id`,
		pattern, pattern, pattern, pattern)
}

func (r *SQLiteRepository) ByDepartment(ctx context.Context, department string) ([]models.Student, error) {
	return r.queryStudents(ctx, "get students by department",
		`SELECT `+studentColumns+` FROM students WHERE department = ? ORDER BY name, id`,
		department)
}

func (r *SQLiteRepository) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT department FROM students ORDER BY department`)
	if err != nil {
		return nil, &common.StorageError{Op: "get departments", Err: err}
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, &common.StorageError{Op: "get departments", Err: err}
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StorageError{Op: "get departments", Err: err}
	}
	return result, nil
}

func (r *SQLiteRepository) CountByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT department, COUNT(*) FROM students GROUP BY department ORDER BY department`)
	if err != nil {
		return nil, &common.StorageError{Op: "get student count by department", Err: err}
	}
	defer rows.Close()

	var result []DepartmentCount
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, &common.StorageError{Op: "get student count by department", Err: err}
		}
		result = append(result, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StorageError{Op: "get student count by department", Err: err}
	}
	return result, nil
}

func (r *SQLiteRepository) queryStudents(ctx context.Context, op, query string, args ...any) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &common.StorageError{Op: op, Err: err}
	}
	defer rows.Close()

	var result []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, &common.StorageError{Op: op, Err: err}
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, &common.StorageError{Op: op, Err: err}
	}
	return result, nil
}

// mapWriteErr classifies a write failure: domain errors pass through, a
// UNIQUE backstop violation becomes a DuplicateKeyError, everything else is
// wrapped with the operation name.
func (r *SQLiteRepository) mapWriteErr(op string, s *models.Student, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateKey) || errors.Is(err, common.ErrNotFound):
		return err
	case dbx.UniqueViolation(err, "students.roll"):
		return &common.DuplicateKeyError{Field: "roll number", Value: s.Roll}
	case dbx.UniqueViolation(err, "students.email"):
		return &common.DuplicateKeyError{Field: "email", Value: s.Email}
	default:
		return &common.StorageError{Op: op, Err: err}
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent rebuilds a validated Student from a stored row. Rows are
// normalized at write time, so re-validation only fails on hand-edited data.
func scanStudent(rs rowScanner) (*models.Student, error) {
	var (
		id                                   int64
		name, roll, department, email, phone string
	)
	if err := rs.Scan(&id, &name, &roll, &department, &email, &phone); err != nil {
		return nil, err
	}
	s, err := models.NewStudent(name, roll, department, email, phone)
	if err != nil {
		return nil, fmt.Errorf("stored row %d: %w", id, err)
	}
	s.ID = id
	return s, nil
}

func exists(ctx context.Context, q dbx.DBTX, query string, args ...any) (bool, error) {
	var id int64
	err := q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
