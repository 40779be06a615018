// Package storage owns the SQLite database lifecycle: opening the handle,
// applying migrations, seeding the default credential, and wiring the
// repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/studentdesk/internal/migrations"
	"github.com/dmitrijs2005/studentdesk/internal/models"
	"github.com/dmitrijs2005/studentdesk/internal/repositories/students"
	"github.com/dmitrijs2005/studentdesk/internal/repositories/users"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Repositories bundles the stores backed by one database handle.
type Repositories struct {
	Students students.Repository
	Users    users.Repository
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the database at dsn, applies migrations, seeds the
// default admin user when the user table is empty, and returns the
// repositories together with the handle the caller must close. Safe to call
// on every process start.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	// the design is single-user; one connection avoids SQLITE_BUSY churn
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := &Repositories{
		Students: students.NewSQLiteRepository(db),
		Users:    users.NewSQLiteRepository(db),
	}

	if err := seedDefaultUser(ctx, repos.Users); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to seed default user: %w", err)
	}

	return repos, db, nil
}

// seedDefaultUser inserts the admin credential exactly once: only when no
// users exist yet.
func seedDefaultUser(ctx context.Context, repo users.Repository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	admin, err := models.NewUser(defaultAdminUsername, defaultAdminPassword)
	if err != nil {
		return err
	}
	_, err = repo.Add(ctx, admin)
	return err
}
