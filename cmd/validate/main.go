// Command validate checks a weather CSV file before it is fed to the report
// generator. It verifies the header and row shape, every date and
// temperature, and that both reports render, and lists every problem found
// rather than stopping at the first.
//
// Usage:
//
//	go run ./cmd/validate -csv data/forecast_5days_a.csv
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-report/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-report/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
	notes  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// rawRow is one non-empty CSV line with its position in the file.
type rawRow struct {
	line   int
	fields []string
}

func main() {
	csvPath := flag.String("csv", "", "path to the weather CSV file")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*csvPath, os.Stdout))
}

func run(path string, out io.Writer) int {
	fmt.Fprintln(out, "=== Weather CSV Validation ===")
	fmt.Fprintln(out)

	header, rows, err := readRows(path)
	if err != nil {
		fmt.Fprintf(out, "FATAL: read %s: %v\n", path, err)
		return 1
	}

	phases := []*phase{
		validateStructure(header, rows),
		validateDates(rows),
		validateTemperatures(rows),
		validateReports(path),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-32s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d data rows\n", len(rows))

	for _, p := range phases {
		if len(p.errors) == 0 && len(p.notes) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
		for _, n := range p.notes {
			fmt.Fprintf(out, "  note: %s\n", n)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func readRows(path string) ([]string, []rawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("file is empty")
		}
		return nil, nil, err
	}

	var rows []rawRow
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			return header, rows, nil
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, rawRow{line: line, fields: fields})
	}
}

// ── Phase 1: Structure ──

func validateStructure(header []string, rows []rawRow) *phase {
	p := &phase{name: "Phase 1: Structure"}
	if len(header) < 3 {
		p.errorf("header has %d columns, want at least 3 (date, min, max)", len(header))
	}
	if len(rows) == 0 {
		p.errorf("no data rows")
	}
	for _, row := range rows {
		if len(row.fields) < 3 {
			p.errorf("line %d: %d columns, want at least 3", row.line, len(row.fields))
		}
	}
	return p
}

// ── Phase 2: Dates ──

func validateDates(rows []rawRow) *phase {
	p := &phase{name: "Phase 2: Dates"}
	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		if len(row.fields) == 0 {
			continue
		}
		date := row.fields[0]
		display, err := domain.ConvertDate(date)
		if err != nil {
			p.errorf("line %d: %v", row.line, err)
			continue
		}
		if prev, ok := seen[display]; ok {
			p.notef("line %d: %s already appears on line %d", row.line, display, prev)
			continue
		}
		seen[display] = row.line
	}
	return p
}

// ── Phase 3: Temperatures ──

func validateTemperatures(rows []rawRow) *phase {
	p := &phase{name: "Phase 3: Temperatures"}
	for _, row := range rows {
		for col, name := range []string{1: "min", 2: "max"} {
			if col == 0 || col >= len(row.fields) {
				continue
			}
			if _, err := strconv.Atoi(strings.TrimSpace(row.fields[col])); err != nil {
				p.errorf("line %d: %s %q is not an integer", row.line, name, row.fields[col])
			}
		}
	}
	return p
}

// ── Phase 4: Reports ──
// Loads the file the same way the generator does and renders both reports twice.

func validateReports(path string) *phase {
	p := &phase{name: "Phase 4: Report Rendering"}

	loader := csvfile.NewLoader(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ds, err := loader.Extract(context.Background())
	if err != nil {
		p.errorf("load: %v", err)
		return p
	}

	for _, kind := range domain.AllKinds {
		first, err := domain.BuildReport(ds, kind)
		if err != nil {
			p.errorf("%s: %v", kind, err)
			continue
		}
		second, err := domain.BuildReport(ds, kind)
		if err != nil {
			p.errorf("%s: second render: %v", kind, err)
			continue
		}
		if first.Body != second.Body {
			p.errorf("%s: renders differ between calls", kind)
		}
		if first.Summary != nil {
			noteRepeatedExtreme(p, "lowest", first.Summary.Lowest)
			noteRepeatedExtreme(p, "highest", first.Summary.Highest)
		}
	}
	return p
}

// noteRepeatedExtreme flags extremes whose reported date is not the last
// row holding the value.
func noteRepeatedExtreme(p *phase, label string, e domain.DatedExtreme) {
	if e.Index != e.DateIndex {
		p.notef("%s %s repeats: reported on row %d (%s), last seen on row %d",
			label, domain.FormatTemperature(e.Celsius), e.DateIndex+1, e.Date, e.Index+1)
	}
}
