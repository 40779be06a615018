// Package cli implements the terminal shell around the student store: the
// login gate, the command loop, and the import/export and report flows. The
// shell only renders; every rule lives in the layers below.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/studentdesk/internal/config"
	"github.com/dmitrijs2005/studentdesk/internal/logging"
	"github.com/dmitrijs2005/studentdesk/internal/services"
	"github.com/dmitrijs2005/studentdesk/internal/storage"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	repos    *storage.Repositories
	db       *sql.DB
	auth     *services.AuthService
	importer *services.ImportService
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	repos, db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		repos:    repos,
		db:       db,
		auth:     services.NewAuthService(repos.Users, nil),
		importer: services.NewImportService(repos.Students, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run drives the application: login gate first, then the command loop.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if !a.login(ctx) {
		return nil
	}
	a.menu(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
