// Package csvfile loads weather readings from a CSV file with a header row
// and columns date, min, max.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	errMissingHeader = errors.New("missing header row")
	errShortRow      = errors.New("expected at least 3 columns")
	errMissingValue  = errors.New("missing value")
	errNotInteger    = errors.New("not an integer")
	errNotISODate    = errors.New("not an ISO-8601 date")
)

// row is one CSV line before type conversion. The validate tags are the only
// acceptance check; conversion after a successful Struct call cannot fail.
type row struct {
	Date    string `csv:"date" validate:"required,isodate"`
	MinTemp string `csv:"min" validate:"required,integer"`
	MaxTemp string `csv:"max" validate:"required,integer"`
}

// tagErrors maps a failed validation tag to the error reported for it.
var tagErrors = map[string]error{
	"required": errMissingValue,
	"integer":  errNotInteger,
	"isodate":  errNotISODate,
}

// Loader reads a Dataset from a file on disk.
// It implements pipeline.Extractor.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a Loader for the CSV file at path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string { return l.path }

// Extract opens the file and parses every row. Any malformed row fails the
// whole load; no partial dataset is returned.
func (l *Loader) Extract(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open weather csv: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.path, err)
	}
	l.logger.Debug("weather csv loaded", "path", l.path, "records", len(ds))
	return ds, nil
}

// Read parses CSV content. The first row is a header and is skipped; empty
// lines are ignored; columns after the third are ignored.
func Read(r io.Reader) (domain.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.ParseError{Line: 1, Field: "header", Err: errMissingHeader}
		}
		return nil, csvError(err)
	}

	var ds domain.Dataset
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRow(fields, line)
		if err != nil {
			return nil, err
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

func parseRow(fields []string, line int) (domain.WeatherRecord, error) {
	if len(fields) < 3 {
		return domain.WeatherRecord{}, &domain.ParseError{
			Line: line, Field: "row", Value: strings.Join(fields, ","), Err: errShortRow,
		}
	}

	raw := row{
		Date:    fields[0],
		MinTemp: strings.TrimSpace(fields[1]),
		MaxTemp: strings.TrimSpace(fields[2]),
	}
	if err := validate.Struct(raw); err != nil {
		return domain.WeatherRecord{}, validationError(err, line)
	}

	minF, _ := strconv.Atoi(raw.MinTemp)
	maxF, _ := strconv.Atoi(raw.MaxTemp)
	return domain.WeatherRecord{Date: raw.Date, MinTempF: minF, MaxTempF: maxF}, nil
}

// validationError reports the first failing column of a row.
func validationError(err error, line int) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.ParseError{Line: line, Field: "row", Err: err}
	}
	fe := verrs[0]
	value, _ := fe.Value().(string)
	cause, ok := tagErrors[fe.Tag()]
	if !ok {
		cause = fmt.Errorf("failed %q check", fe.Tag())
	}
	return &domain.ParseError{
		Line:  line,
		Field: fe.Field(),
		Value: value,
		Err:   cause,
	}
}

// csvError converts encoding/csv syntax errors to ParseError.
func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &domain.ParseError{Line: perr.Line, Field: "row", Err: perr.Err}
	}
	return fmt.Errorf("read weather csv: %w", err)
}

var validate = newValidator()

// newValidator reports field names by their csv tag so errors name columns,
// and registers the isodate and integer row checks.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("csv")
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseISODate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}
