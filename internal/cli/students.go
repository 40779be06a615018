package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studentdesk/internal/common"
	"github.com/dmitrijs2005/studentdesk/internal/models"
)

func (a *App) listStudents(ctx context.Context) {
	sts, err := a.repos.Students.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.printStudents(sts)
}

func (a *App) printStudents(sts []models.Student) {
	if len(sts) == 0 {
		fmt.Fprintln(a.out, "No students found.")
		return
	}
	for _, s := range sts {
		phone := s.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Fprintf(a.out, "%4d  %-20s %-10s %-25s %-25s %s\n",
			s.ID, s.Name, s.Roll, s.Department, s.Email, phone)
	}
	fmt.Fprintf(a.out, "%d student(s)\n", len(sts))
}

// promptStudent collects the raw field values for a student. Existing values
// are offered as defaults when updating.
func (a *App) promptStudent(current *models.Student) (*models.Student, error) {
	prompt := func(label, def string) (string, error) {
		if current == nil {
			return GetSimpleText(a.reader, label, a.out)
		}
		return GetTextWithDefault(a.reader, label, def, a.out)
	}

	var cur models.Student
	if current != nil {
		cur = *current
	}
	name, err := prompt("Name", cur.Name)
	if err != nil {
		return nil, err
	}
	roll, err := prompt("Roll", cur.Roll)
	if err != nil {
		return nil, err
	}
	department, err := prompt("Department", cur.Department)
	if err != nil {
		return nil, err
	}
	email, err := prompt("Email", cur.Email)
	if err != nil {
		return nil, err
	}
	phone, err := prompt("Phone (optional)", cur.Phone)
	if err != nil {
		return nil, err
	}

	return models.NewStudent(name, roll, department, email, phone)
}

func (a *App) addStudent(ctx context.Context) {
	s, err := a.promptStudent(nil)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	id, err := a.repos.Students.Add(ctx, s)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Added student #%d (%s).\n", id, s.Roll)
}

func (a *App) updateStudent(ctx context.Context) {
	id, ok := a.promptID()
	if !ok {
		return
	}
	current, err := a.repos.Students.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Student not found.")
		} else {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
		return
	}

	s, err := a.promptStudent(current)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	s.ID = id

	changed, err := a.repos.Students.Update(ctx, s)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if changed {
		fmt.Fprintln(a.out, "Student updated.")
	} else {
		fmt.Fprintln(a.out, "Nothing changed.")
	}
}

func (a *App) deleteStudent(ctx context.Context) {
	id, ok := a.promptID()
	if !ok {
		return
	}
	removed, err := a.repos.Students.Delete(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if removed {
		fmt.Fprintln(a.out, "Student deleted.")
	} else {
		fmt.Fprintln(a.out, "Student not found.")
	}
}

func (a *App) searchStudents(ctx context.Context, args []string) {
	query := strings.Join(args, " ")
	if query == "" {
		var err error
		query, err = GetSimpleText(a.reader, "Search", a.out)
		if err != nil {
			return
		}
	}
	sts, err := a.repos.Students.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.printStudents(sts)
}

func (a *App) studentsByDepartment(ctx context.Context, args []string) {
	department := strings.Join(args, " ")
	if department == "" {
		var err error
		department, err = GetSimpleText(a.reader, "Department", a.out)
		if err != nil {
			return
		}
	}
	sts, err := a.repos.Students.ByDepartment(ctx, department)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.printStudents(sts)
}

func (a *App) listDepartments(ctx context.Context) {
	counts, err := a.repos.Students.CountByDepartment(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "No students found.")
		return
	}
	for _, dc := range counts {
		fmt.Fprintf(a.out, "%-25s %d\n", dc.Department, dc.Count)
	}
}

func (a *App) promptID() (int64, bool) {
	v, err := GetSimpleText(a.reader, "Student ID", a.out)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid ID.")
		return 0, false
	}
	return id, true
}
