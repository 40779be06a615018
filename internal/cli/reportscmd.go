package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studentdesk/internal/reports"
)

func (a *App) departmentReport(ctx context.Context) {
	sts, err := a.repos.Students.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, reports.DepartmentReport(sts, time.Now()))
}

func (a *App) summaryReport(ctx context.Context) {
	sts, err := a.repos.Students.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, reports.SummaryReport(sts, time.Now()))
}
