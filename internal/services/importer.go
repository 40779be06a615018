package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/studentdesk/internal/logging"
	"github.com/dmitrijs2005/studentdesk/internal/models"
	"github.com/dmitrijs2005/studentdesk/internal/repositories/students"
)

// ImportService reconciles a raw batch of candidate student rows: it surfaces
// every problem before any persistence attempt, then performs best-effort
// insertion.
type ImportService struct {
	students students.Repository
	log      logging.Logger
}

func NewImportService(repo students.Repository, log logging.Logger) *ImportService {
	return &ImportService{students: repo, log: log}
}

// ValidateBatch checks every row independently and returns all problems in
// row order (rows are 1-indexed): the row's first validation error, or a
// collision of its roll or email against an earlier row of the same batch.
// The store is not consulted; persisted duplicates surface in ApplyBatch.
func (s *ImportService) ValidateBatch(rows []models.RawStudent) []string {
	var errs []string
	seenRolls := make(map[string]struct{}, len(rows))
	seenEmails := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		n := i + 1
		st, err := row.Validate()
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %s", n, err.Error()))
			continue
		}

		if _, ok := seenRolls[st.Roll]; ok {
			errs = append(errs, fmt.Sprintf("Row %d: Duplicate roll number '%s' in import data", n, st.Roll))
		} else {
			seenRolls[st.Roll] = struct{}{}
		}
		if _, ok := seenEmails[st.Email]; ok {
			errs = append(errs, fmt.Sprintf("Row %d: Duplicate email '%s' in import data", n, st.Email))
		} else {
			seenEmails[st.Email] = struct{}{}
		}
	}

	return errs
}

// ApplyBatch attempts to insert every row and never aborts: a failure
// (validation or a duplicate against already-persisted data) is counted and
// logged with the row's name, and processing moves on to the next row.
func (s *ImportService) ApplyBatch(ctx context.Context, rows []models.RawStudent) (inserted, failed int) {
	log := s.log.With("batch", uuid.NewString())

	for _, row := range rows {
		st, err := row.Validate()
		if err == nil {
			_, err = s.students.Add(ctx, st)
		}
		if err != nil {
			failed++
			log.Warn(ctx, "failed to import student", "name", row.Name, "error", err)
			continue
		}
		inserted++
	}

	log.Info(ctx, "import finished", "inserted", inserted, "failed", failed)
	return inserted, failed
}
