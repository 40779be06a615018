// Package csvx implements the CSV exchange boundary: exporting students and
// reading raw import rows back in, with delimiter auto-detection.
package csvx

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/studentdesk/internal/models"
)

var exportHeader = []string{"ID", "Name", "Roll", "Department", "Email", "Phone"}

// requiredColumns must all be present in an import header, by exact name.
var requiredColumns = []string{"Name", "Roll", "Department", "Email"}

// sniffSampleSize bounds how much of the file the delimiter sniffer reads.
const sniffSampleSize = 1024

// ExportStudents writes the students as UTF-8 CSV with the standard header
// row and comma quoting.
func ExportStudents(w io.Writer, sts []models.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range sts {
		rec := []string{
			strconv.FormatInt(s.ID, 10),
			s.Name, s.Roll, s.Department, s.Email, s.Phone,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write student %s: %w", s.Roll, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportStudents reads raw candidate rows from r. The delimiter is sniffed
// from a leading sample. Missing required columns are a hard error naming
// them; a present-but-empty required value is a per-row error ("Row N: ...",
// counting the header as row 1) and the row is excluded from the result.
// Surviving rows come back with whitespace-trimmed values, unvalidated.
func ImportStudents(r io.Reader) ([]models.RawStudent, []string, error) {
	br := bufio.NewReaderSize(r, sniffSampleSize)
	sample, err := br.Peek(sniffSampleSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("failed to read sample: %w", err)
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(sample)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var (
		rows    []models.RawStudent
		rowErrs []string
	)
	for n := 2; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", n, err)
		}

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		row := models.RawStudent{
			Name:       field("Name"),
			Roll:       field("Roll"),
			Department: field("Department"),
			Email:      field("Email"),
			Phone:      field("Phone"),
		}
		if msg := missingValue(row); msg != "" {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: %s", n, msg))
			continue
		}
		rows = append(rows, row)
	}

	return rows, rowErrs, nil
}

// missingValue names the first required field the row leaves empty.
func missingValue(r models.RawStudent) string {
	switch {
	case r.Name == "":
		return "Name is required"
	case r.Roll == "":
		return "Roll is required"
	case r.Department == "":
		return "Department is required"
	case r.Email == "":
		return "Email is required"
	}
	return ""
}

// sniffDelimiter picks the most frequent candidate delimiter in the sample.
// Comma wins ties, so plain CSV stays the default.
func sniffDelimiter(sample []byte) rune {
	best, bestCount := ',', 0
	for _, c := range []rune{',', ';', '\t', '|'} {
		if n := bytes.Count(sample, []byte(string(c))); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}
