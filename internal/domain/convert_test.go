package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFToC(t *testing.T) {
	tests := []struct {
		name       string
		fahrenheit float64
		expected   float64
	}{
		{"freezing", 32, 0.0},
		{"fifty", 50, 10.0},
		{"rounds down", 49, 9.4},
		{"rounds up", 57, 13.9},
		{"high", 67, 19.4},
		{"whole", 68, 20.0},
		{"crossover", -40, -40.0},
		{"zero fahrenheit", 0, -17.8},
		{"just below freezing", 31, -0.6},
		{"boiling", 212, 100.0},
		{"near absolute zero", -459, -272.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertFToC(tt.fahrenheit))
		})
	}
}

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name     string
		iso      string
		expected string
	}{
		{"date only", "2021-07-02", "Friday 02 July 2021"},
		{"tuesday", "2021-07-06", "Tuesday 06 July 2021"},
		{"with offset", "2021-07-02T07:00:00+08:00", "Friday 02 July 2021"},
		{"offset keeps written date", "2021-07-02T23:30:00-10:00", "Friday 02 July 2021"},
		{"utc designator", "2020-06-19T00:00:00Z", "Friday 19 June 2020"},
		{"naive datetime", "2020-06-21T12:00:00", "Sunday 21 June 2020"},
		{"space separator", "2020-06-21 12:00:00", "Sunday 21 June 2020"},
		{"minutes only", "2021-07-02T07:00", "Friday 02 July 2021"},
		{"hour only", "2021-07-02T07", "Friday 02 July 2021"},
		{"basic format", "20210702", "Friday 02 July 2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertDate(tt.iso)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertDate_Invalid(t *testing.T) {
	for _, iso := range []string{"", "July 2nd", "2021-13-01", "2021-02-30", "02/07/2021"} {
		t.Run(iso, func(t *testing.T) {
			_, err := ConvertDate(iso)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "date", perr.Field)
			assert.Equal(t, iso, perr.Value)
		})
	}
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "9.4°C", FormatTemperature(9.4))
	assert.Equal(t, "20.0°C", FormatTemperature(20))
	assert.Equal(t, "0.0°C", FormatTemperature(0))
	assert.Equal(t, "-17.8°C", FormatTemperature(-17.8))
	assert.Equal(t, "9.444°C", FormatTemperature(9.444))
}

func TestRoundTo(t *testing.T) {
	// 11.65 is stored slightly above the midpoint, 0.25 and 0.35 are exact
	// or below, so results follow the binary value.
	assert.Equal(t, 11.7, roundTo((9.4+13.9)/2, 1))
	assert.Equal(t, 0.2, roundTo(0.25, 1))
	assert.Equal(t, 0.3, roundTo(0.35, 1))
	assert.Equal(t, -4.5, roundTo((-6.7+-2.2)/2, 1))
}

func TestNewWeatherRecord(t *testing.T) {
	rec, err := NewWeatherRecord("2021-07-02", 49, 67)
	require.NoError(t, err)
	assert.Equal(t, WeatherRecord{Date: "2021-07-02", MinTempF: 49, MaxTempF: 67}, rec)

	low, high := rec.Celsius()
	assert.Equal(t, 9.4, low)
	assert.Equal(t, 19.4, high)

	_, err = NewWeatherRecord("not-a-date", 49, 67)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Line: 3, Field: "min", Value: "abc", Err: errors.New("not an integer")}
	assert.Equal(t, `parse min "abc" on line 3: not an integer`, err.Error())

	err = &ParseError{Field: "date", Value: "x", Err: errors.New("bad")}
	assert.Equal(t, `parse date "x": bad`, err.Error())
}
