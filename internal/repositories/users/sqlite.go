package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/studentdesk/internal/common"
	"github.com/dmitrijs2005/studentdesk/internal/dbx"
	"github.com/dmitrijs2005/studentdesk/internal/models"
)

// SQLiteRepository implements Repository on a process-lifetime *sql.DB.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, u *models.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`, u.Username, u.Password)
	if err != nil {
		if dbx.UniqueViolation(err, "users.username") {
			return 0, &common.DuplicateKeyError{Field: "username", Value: u.Username}
		}
		return 0, &common.StorageError{Op: "add user", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &common.StorageError{Op: "add user", Err: err}
	}
	return id, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, &common.StorageError{Op: "get user", Err: err}
	}
	return &u, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, &common.StorageError{Op: "get user count", Err: err}
	}
	return n, nil
}
