package domain

import (
	"fmt"
	"strings"
)

// DatedExtreme is the lowest low or highest high of a dataset with the day it
// is reported against.
//
// Index follows the last-occurrence tie-break of FindMin/FindMax, while
// DateIndex (and therefore Date) is the first row holding the same value.
// The two differ when the extreme repeats; reports print Date.
type DatedExtreme struct {
	Celsius   float64 `json:"celsius"`
	Index     int     `json:"index"`
	DateIndex int     `json:"date_index"`
	Date      string  `json:"date"`
}

// Summary holds the aggregate figures of a dataset, all in Celsius.
type Summary struct {
	Days        int          `json:"days"`
	Lowest      DatedExtreme `json:"lowest"`
	Highest     DatedExtreme `json:"highest"`
	AverageLow  float64      `json:"average_low"`
	AverageHigh float64      `json:"average_high"`
}

// converted is a dataset projected to display dates and Celsius values.
type converted struct {
	days  []string
	lows  []float64
	highs []float64
}

func convertDataset(ds Dataset) (converted, error) {
	c := converted{
		days:  make([]string, len(ds)),
		lows:  make([]float64, len(ds)),
		highs: make([]float64, len(ds)),
	}
	for i, rec := range ds {
		day, err := ConvertDate(rec.Date)
		if err != nil {
			return converted{}, err
		}
		c.days[i] = day
		c.lows[i], c.highs[i] = rec.Celsius()
	}
	return c, nil
}

// Summarize computes the overview figures for ds. It returns ErrEmptyInput
// when ds has no records.
func Summarize(ds Dataset) (Summary, error) {
	if len(ds) == 0 {
		return Summary{}, ErrEmptyInput
	}
	c, err := convertDataset(ds)
	if err != nil {
		return Summary{}, err
	}

	lowest, _ := FindMin(c.lows)
	highest, _ := FindMax(c.highs)

	avgLow, err := Mean(c.lows)
	if err != nil {
		return Summary{}, err
	}
	avgHigh, err := Mean(c.highs)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Days:        len(ds),
		Lowest:      dated(lowest, c.lows, c.days),
		Highest:     dated(highest, c.highs, c.days),
		AverageLow:  roundTo(avgLow, TemperaturePrecision),
		AverageHigh: roundTo(avgHigh, TemperaturePrecision),
	}, nil
}

func dated(ext Extreme, values []float64, days []string) DatedExtreme {
	// Date comes from the first matching row, not ext.Index.
	first := indexOf(values, ext.Value)
	return DatedExtreme{
		Celsius:   ext.Value,
		Index:     ext.Index,
		DateIndex: first,
		Date:      days[first],
	}
}

// Render writes the summary using the overview template.
func (s Summary) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d Day Overview\n", s.Days)
	fmt.Fprintf(&b, "  The lowest temperature will be %s, and will occur on %s.\n",
		FormatTemperature(s.Lowest.Celsius), s.Lowest.Date)
	fmt.Fprintf(&b, "  The highest temperature will be %s, and will occur on %s.\n",
		FormatTemperature(s.Highest.Celsius), s.Highest.Date)
	fmt.Fprintf(&b, "  The average low this week is %s.\n", FormatTemperature(s.AverageLow))
	fmt.Fprintf(&b, "  The average high this week is %s.\n", FormatTemperature(s.AverageHigh))
	return b.String()
}

// GenerateSummary returns the overview report for ds.
func GenerateSummary(ds Dataset) (string, error) {
	s, err := Summarize(ds)
	if err != nil {
		return "", err
	}
	return s.Render(), nil
}

// GenerateDailySummary returns one block per record in input order. Blocks
// are separated by a blank line and the report ends with one.
func GenerateDailySummary(ds Dataset) (string, error) {
	if len(ds) == 0 {
		return "", ErrEmptyInput
	}
	c, err := convertDataset(ds)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := range ds {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "---- %s ----\n", c.days[i])
		fmt.Fprintf(&b, "  Minimum Temperature: %s\n", FormatTemperature(c.lows[i]))
		fmt.Fprintf(&b, "  Maximum Temperature: %s\n", FormatTemperature(c.highs[i]))
	}
	b.WriteString("\n")
	return b.String(), nil
}
