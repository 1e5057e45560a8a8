package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// DisplayDateLayout renders dates as "Tuesday 06 July 2021". Go's
	// weekday and month names are always English, independent of locale.
	DisplayDateLayout = "Monday 02 January 2006"

	// TemperaturePrecision is the number of decimal places kept after
	// converting to Celsius. Rounding is half-to-even on the exact binary
	// value of the float.
	TemperaturePrecision = 1

	// DegreeCelsius is appended to every rendered temperature.
	DegreeCelsius = "°C"
)

// isoLayouts are the accepted spellings of an ISO-8601 date column.
// RFC 3339 also matches fractional seconds.
var isoLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"20060102",
}

var errInvalidISODate = errors.New("not an ISO-8601 date")

// ParseISODate parses a date-only or datetime ISO-8601 string. A UTC offset,
// when present, is kept so the calendar date matches what was written.
func ParseISODate(iso string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Field: "date", Value: iso, Err: errInvalidISODate}
}

// ConvertDate formats an ISO-8601 date for display, e.g.
// "2021-07-06" -> "Tuesday 06 July 2021".
func ConvertDate(iso string) (string, error) {
	t, err := ParseISODate(iso)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayDateLayout), nil
}

// ConvertFToC converts Fahrenheit to Celsius rounded to TemperaturePrecision.
func ConvertFToC(fahrenheit float64) float64 {
	return roundTo((fahrenheit-32)*5/9, TemperaturePrecision)
}

// FormatTemperature renders a Celsius value with its unit suffix. Whole
// numbers keep one decimal ("20.0°C").
func FormatTemperature(celsius float64) string {
	s := strconv.FormatFloat(celsius, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s + DegreeCelsius
}

// roundTo rounds x to the given number of decimals. strconv formats the exact
// binary value correctly rounded with ties to even, so the result agrees with
// a decimal round of the same float.
func roundTo(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
