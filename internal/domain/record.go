package domain

// WeatherRecord is one day's observation as read from the input file.
// Records are passed by value and never modified after loading.
type WeatherRecord struct {
	Date     string `json:"date"`       // ISO-8601 date or datetime, as written in the source
	MinTempF int    `json:"min_temp_f"` // degrees Fahrenheit
	MaxTempF int    `json:"max_temp_f"` // degrees Fahrenheit
}

// Dataset is an ordered sequence of records in input file order. Order
// decides both report ordering and which row wins a tie.
type Dataset []WeatherRecord

// NewWeatherRecord builds a record after checking that date is a valid
// ISO-8601 date or datetime.
func NewWeatherRecord(date string, minTempF, maxTempF int) (WeatherRecord, error) {
	if _, err := ParseISODate(date); err != nil {
		return WeatherRecord{}, err
	}
	return WeatherRecord{Date: date, MinTempF: minTempF, MaxTempF: maxTempF}, nil
}

// Celsius returns the record's low and high converted to rounded Celsius.
func (r WeatherRecord) Celsius() (low, high float64) {
	return ConvertFToC(float64(r.MinTempF)), ConvertFToC(float64(r.MaxTempF))
}
