package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/studentdesk/internal/csvx"
)

// importCSV reads a CSV file, reports every problem, and only applies the
// batch when it is clean and the user confirms. Duplicates against persisted
// data surface during the apply as per-row failures.
func (a *App) importCSV(ctx context.Context, args []string) {
	path, ok := a.promptPath("Import file", args)
	if !ok {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	defer f.Close()

	rows, rowErrs, err := csvx.ImportStudents(f)
	if err != nil {
		fmt.Fprintf(a.out, "Import failed: %v\n", err)
		return
	}

	errs := append(rowErrs, a.importer.ValidateBatch(rows)...)
	if len(errs) > 0 {
		fmt.Fprintln(a.out, "Import blocked, fix these problems first:")
		for _, e := range errs {
			fmt.Fprintf(a.out, "  %s\n", e)
		}
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "Nothing to import.")
		return
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Import %d student(s)? (y/n)", len(rows)), a.out)
	if err != nil || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(a.out, "Import cancelled.")
		return
	}

	inserted, failed := a.importer.ApplyBatch(ctx, rows)
	fmt.Fprintf(a.out, "Imported %d student(s) successfully.\n", inserted)
	if failed > 0 {
		fmt.Fprintf(a.out, "Failed to import %d student(s).\n", failed)
	}
}

func (a *App) exportCSV(ctx context.Context, args []string) {
	path, ok := a.promptPath("Export file", args)
	if !ok {
		return
	}

	sts, err := a.repos.Students.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	defer f.Close()

	if err := csvx.ExportStudents(f, sts); err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Exported %d student(s) to %s.\n", len(sts), path)
}

func (a *App) promptPath(label string, args []string) (string, bool) {
	if len(args) > 0 {
		return args[0], true
	}
	path, err := GetSimpleText(a.reader, label, a.out)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
