package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// menu is the command loop. Handlers report their own errors to the user;
// the loop itself never exits on a failure.
func (a *App) menu(ctx context.Context) {
	fmt.Fprintln(a.out, "Student records desk (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "sd (%s)> ", a.userName)
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return
			}
			a.log.Error(ctx, "failed to read command", "error", err)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: list, add, update, delete, search, departments, department, report, summary, import, export, adduser, exit")
		case "list", "l":
			a.listStudents(ctx)
		case "add":
			a.addStudent(ctx)
		case "update":
			a.updateStudent(ctx)
		case "delete":
			a.deleteStudent(ctx)
		case "search":
			a.searchStudents(ctx, parts[1:])
		case "departments":
			a.listDepartments(ctx)
		case "department":
			a.studentsByDepartment(ctx, parts[1:])
		case "report":
			a.departmentReport(ctx)
		case "summary":
			a.summaryReport(ctx)
		case "import":
			a.importCSV(ctx, parts[1:])
		case "export":
			a.exportCSV(ctx, parts[1:])
		case "adduser":
			a.addUser(ctx)
		case "exit", "quit":
			return
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}
	}
}
