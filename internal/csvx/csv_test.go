package csvx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/studentdesk/internal/models"
)

func TestExportStudents(t *testing.T) {
	var buf bytes.Buffer
	err := ExportStudents(&buf, []models.Student{
		{ID: 1, Name: "Alice Smith", Roll: "CS001", Department: "Computer Science", Email: "alice@uni.edu", Phone: "555-1234"},
		{ID: 2, Name: "Bob, Jr.", Roll: "CS002", Department: "Computer Science", Email: "bob@uni.edu"},
	})
	require.NoError(t, err)

	want := "ID,Name,Roll,Department,Email,Phone\n" +
		"1,Alice Smith,CS001,Computer Science,alice@uni.edu,555-1234\n" +
		"2,\"Bob, Jr.\",CS002,Computer Science,bob@uni.edu,\n"
	assert.Equal(t, want, buf.String())
}

func TestExportStudents_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportStudents(&buf, nil))
	assert.Equal(t, "ID,Name,Roll,Department,Email,Phone\n", buf.String())
}

func TestImportStudents_Comma(t *testing.T) {
	in := "Name,Roll,Department,Email,Phone\n" +
		"Alice,CS001,Computer Science,alice@uni.edu,555-1234\n" +
		"Bob,CS002,Computer Science,bob@uni.edu,\n"
	rows, rowErrs, err := ImportStudents(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)
	assert.Equal(t, models.RawStudent{
		Name: "Alice", Roll: "CS001", Department: "Computer Science",
		Email: "alice@uni.edu", Phone: "555-1234",
	}, rows[0])
	assert.Empty(t, rows[1].Phone)
}

func TestImportStudents_SniffsSemicolon(t *testing.T) {
	in := "Name;Roll;Department;Email\n" +
		"Alice;CS001;Computer Science;alice@uni.edu\n"
	rows, rowErrs, err := ImportStudents(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, "Computer Science", rows[0].Department)
}

func TestImportStudents_SniffsTab(t *testing.T) {
	in := "Name\tRoll\tDepartment\tEmail\n" +
		"Alice\tCS001\tComputer Science\talice@uni.edu\n"
	rows, _, err := ImportStudents(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS001", rows[0].Roll)
}

func TestImportStudents_MissingColumns(t *testing.T) {
	in := "Name,Department\nAlice,CS\n"
	_, _, err := ImportStudents(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns: Roll, Email")
}

// Column names are case-sensitive: "name" does not satisfy "Name".
func TestImportStudents_ColumnCaseSensitive(t *testing.T) {
	in := "name,roll,department,email\nAlice,CS001,CS,a@x.io\n"
	_, _, err := ImportStudents(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestImportStudents_MissingValuesPerRow(t *testing.T) {
	in := "Name,Roll,Department,Email\n" +
		"Alice,CS001,Computer Science,alice@uni.edu\n" +
		",CS002,Computer Science,bob@uni.edu\n" +
		"Carol,CS003,Computer Science,\n"
	rows, rowErrs, err := ImportStudents(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)

	// the header is row 1
	require.Len(t, rowErrs, 2)
	assert.Equal(t, "Row 2: Name is required", rowErrs[0])
	assert.Equal(t, "Row 3: Email is required", rowErrs[1])
}

func TestImportStudents_ValuesTrimmed(t *testing.T) {
	in := "Name,Roll,Department,Email\n" +
		" Alice , CS001 , Computer Science , alice@uni.edu \n"
	rows, _, err := ImportStudents(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "CS001", rows[0].Roll)
}

func TestImportStudents_QuotedFields(t *testing.T) {
	in := "Name,Roll,Department,Email\n" +
		"\"Smith, Alice\",CS001,Computer Science,alice@uni.edu\n"
	rows, _, err := ImportStudents(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Smith, Alice", rows[0].Name)
}

func TestImportStudents_EmptyFile(t *testing.T) {
	_, _, err := ImportStudents(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read header")
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', sniffDelimiter([]byte("a,b,c\n1,2,3\n")))
	assert.Equal(t, ';', sniffDelimiter([]byte("a;b;c\n")))
	assert.Equal(t, '\t', sniffDelimiter([]byte("a\tb\tc\n")))
	assert.Equal(t, '|', sniffDelimiter([]byte("a|b|c\n")))
	// comma on a tie / empty sample
	assert.Equal(t, ',', sniffDelimiter(nil))
}
