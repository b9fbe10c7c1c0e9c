package spend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// this file contains functions to handle the CSV import/export format.
// It should remain human readable and easy to edit in a spreadsheet.
//
// The format is a header line followed by one expense per line:
//
//	id,date,amount,category,description
//	1,01-03-2025,10.00,Food,groceries
//
// Fields are never quoted nor escaped: a comma inside a category or a
// description corrupts the line.

// CSVHeader is the first line written by [ExportCSV].
const CSVHeader = "id,date,amount,category,description"

// DefaultCategory is given to imported expenses without a category.
const DefaultCategory = "Misc"

// ErrMissingHeader is returned when importing an empty CSV stream.
var ErrMissingHeader = errors.New("missing CSV header line")

// ExportCSV writes every expense of s to w in the CSV format.
func ExportCSV(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, CSVHeader)
	for _, e := range s.expenses {
		fmt.Fprintf(bw, "%d,%s,%.2f,%s,%s\n", e.ID, e.Date, e.Amount, e.Category, e.Description)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write CSV format: %w", err)
	}
	return nil
}

// ImportReport tells which lines of a CSV import made it into the store.
// Line numbers start at 1 with the header line.
type ImportReport struct {
	Imported []int // line numbers of the added expenses
	Skipped  []int // line numbers with fewer than four fields
}

// ImportCSV appends the expenses read from r in the CSV format to s.
//
// The first line is always skipped as the header. The import is tolerant:
//   - lines with fewer than four fields are skipped, the import goes on;
//   - the id field is ignored, expenses get new identifiers;
//   - dates written YYYY-MM-DD are turned into DD-MM-YYYY, other dates are
//     kept as is without validation;
//   - an amount without a numeric prefix counts as 0;
//   - an empty category becomes [DefaultCategory], and unknown categories
//     are registered;
//   - the description is the rest of the line, commas included.
func ImportCSV(r io.Reader, s *Store) (ImportReport, error) {
	var report ImportReport
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && header == "":
		return report, ErrMissingHeader
	case errors.Is(err, io.EOF):
		return report, nil
	case err != nil:
		return report, fmt.Errorf("cannot read CSV header: %w", err)
	}

	// Lines are read whole, whatever their length: long fields are
	// truncated by the store, not rejected by the reader.
	for line := 2; ; line++ {
		txt, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return report, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		if txt == "" && err != nil {
			return report, nil
		}
		e, ok := parseCSVLine(txt)
		if !ok {
			slog.Debug("skipping malformed CSV line", "line", line)
			report.Skipped = append(report.Skipped, line)
		} else {
			if !IsValidDate(e.Date) {
				slog.Warn("imported expense has an invalid date", "line", line, "date", e.Date)
			}
			s.Add(e)
			report.Imported = append(report.Imported, line)
		}
		if err != nil {
			return report, nil
		}
	}
}

// parseCSVLine decodes a single expense line.
func parseCSVLine(txt string) (Expense, bool) {
	txt = strings.TrimRight(txt, "\r\n")
	fields := strings.SplitN(txt, ",", 5)
	if len(fields) < 4 {
		return Expense{}, false
	}
	// fields[0] is the exported id, a new one is always assigned.
	e := Expense{
		Date:     NormalizeDate(fields[1]),
		Category: strings.TrimSpace(fields[3]),
	}
	e.Amount, _ = parseNumberPrefix(strings.TrimSpace(fields[2]))
	if len(fields) == 5 {
		e.Description = strings.TrimSpace(fields[4])
	}
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	return e.bounded(), true
}

// SaveCSV exports s into filename, creating its directory if needed.
func SaveCSV(filename string, s *Store) (err error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("cannot create export directory: %w", err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create CSV file %q: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close CSV file %q: %w", filename, cerr)
		}
	}()
	if err := ExportCSV(f, s); err != nil {
		return fmt.Errorf("cannot export to %q: %w", filename, err)
	}
	return nil
}

// LoadCSV imports the CSV file filename into s.
func LoadCSV(filename string, s *Store) (ImportReport, error) {
	f, err := os.Open(filename)
	if err != nil {
		return ImportReport{}, fmt.Errorf("cannot open CSV file: %w", err)
	}
	defer f.Close()

	report, err := ImportCSV(f, s)
	if err != nil {
		return report, fmt.Errorf("cannot import %q: %w", filename, err)
	}
	return report, nil
}
