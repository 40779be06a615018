// Package reports renders read-only text summaries over an in-memory
// collection of students. Both reports are pure: the same input (including
// the generation time) always yields the same output.
package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentdesk/internal/models"
)

const emptyMessage = "No students found."

const timeLayout = "2006-01-02 15:04:05"

// DepartmentReport lists every student grouped by department. Departments
// are sorted alphabetically and students by name within each department.
func DepartmentReport(sts []models.Student, generatedAt time.Time) string {
	if len(sts) == 0 {
		return emptyMessage
	}

	byDept := groupByDepartment(sts)
	depts := sortedKeys(byDept)

	divider := strings.Repeat("=", 60)
	lines := []string{
		divider,
		"STUDENT MANAGEMENT SYSTEM - DEPARTMENT REPORT",
		divider,
		fmt.Sprintf("Generated on: %s", generatedAt.Format(timeLayout)),
		fmt.Sprintf("Total Students: %d", len(sts)),
		fmt.Sprintf("Total Departments: %d", len(byDept)),
		"",
	}

	for _, dept := range depts {
		group := byDept[dept]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Name < group[j].Name })

		lines = append(lines,
			fmt.Sprintf("DEPARTMENT: %s", dept),
			strings.Repeat("-", 40),
			fmt.Sprintf("Number of Students: %d", len(group)),
			"",
		)
		for _, s := range group {
			lines = append(lines,
				fmt.Sprintf("  • %s (%s)", s.Name, s.Roll),
				fmt.Sprintf("    Email: %s", s.Email),
			)
			if s.Phone != "" {
				lines = append(lines, fmt.Sprintf("    Phone: %s", s.Phone))
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// SummaryReport shows the total and per-department counts with each
// department's share of the total, one decimal place.
func SummaryReport(sts []models.Student, generatedAt time.Time) string {
	if len(sts) == 0 {
		return emptyMessage
	}

	counts := make(map[string]int)
	for _, s := range sts {
		counts[s.Department]++
	}

	divider := strings.Repeat("=", 50)
	lines := []string{
		divider,
		"STUDENT MANAGEMENT SYSTEM - SUMMARY REPORT",
		divider,
		fmt.Sprintf("Generated on: %s", generatedAt.Format(timeLayout)),
		"",
		"OVERVIEW:",
		fmt.Sprintf("  Total Students: %d", len(sts)),
		fmt.Sprintf("  Total Departments: %d", len(counts)),
		"",
		"STUDENTS BY DEPARTMENT:",
		strings.Repeat("-", 30),
	}

	for _, dept := range sortedCountKeys(counts) {
		count := counts[dept]
		percentage := float64(count) / float64(len(sts)) * 100
		lines = append(lines, fmt.Sprintf("  %s: %d students (%.1f%%)", dept, count, percentage))
	}

	return strings.Join(lines, "\n")
}

func groupByDepartment(sts []models.Student) map[string][]models.Student {
	byDept := make(map[string][]models.Student)
	for _, s := range sts {
		byDept[s.Department] = append(byDept[s.Department], s)
	}
	return byDept
}

func sortedKeys(m map[string][]models.Student) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
