package entity

import "time"

// NoValueText is the placeholder for missing numeric slot values (pops,
// temperatures, reliabilities).
const NoValueText = "--"

// RecordKind tags a classified area record. Records are converted to exactly
// one kind on ingestion; downstream code switches on the tag and never
// re-inspects raw optional fields.
type RecordKind int

const (
	KindUnknown RecordKind = iota
	KindWeather
	KindTemperature
	KindPrecipitation
)

// String returns the string representation of the record kind
func (k RecordKind) String() string {
	switch k {
	case KindWeather:
		return "weather"
	case KindTemperature:
		return "temperature"
	case KindPrecipitation:
		return "precipitation"
	default:
		return "unknown"
	}
}

// ClassifiedRecord is one area's record inside a time series, tagged by
// capability. All value slices are index-aligned with the owning series'
// timeDefines; an empty string at an index means no data for that timestamp.
type ClassifiedRecord struct {
	Kind     RecordKind
	AreaName string
	AreaCode string

	Weathers     []string
	WeatherCodes []string
	Winds        []string
	Waves        []string

	Pops []string

	Temps         []string
	TempsMin      []string
	TempsMinUpper []string
	TempsMinLower []string
	TempsMax      []string
	TempsMaxUpper []string
	TempsMaxLower []string

	Reliabilities []string
}

// WeatherSlot is one timestamp of the short-term weather/wind/wave series.
type WeatherSlot struct {
	Time    time.Time
	Weather string
	Wind    string
	Wave    string
}

// PopWindow is one six-hour probability-of-precipitation window.
type PopWindow struct {
	Time  time.Time
	Label string // e.g. "9-15時"
	Pop   string
}

// PopDay groups the pop windows of one calendar day.
type PopDay struct {
	Date    time.Time
	Windows []PopWindow
}

// TempReading is one low/high temperature value of a day.
type TempReading struct {
	Time  time.Time
	Label string // 最低 or 最高
	Value string
}

// TempDay groups the temperature readings of one calendar day.
type TempDay struct {
	Date     time.Time
	Readings []TempReading
}

// WeeklyDaySlot is one day of the weekly weather series.
type WeeklyDaySlot struct {
	Time        time.Time
	Weather     string // translated weather-code text
	Pop         string
	Reliability string
}

// WeeklyTempSlot is one day of the weekly min/max temperature series with
// optional confidence ranges.
type WeeklyTempSlot struct {
	Time     time.Time
	Min      string
	MinRange string // "lower〜upper", empty when the range is absent
	Max      string
	MaxRange string
}

// ReferenceRow is one verbatim row of the tempAverage/precipAverage blocks.
type ReferenceRow struct {
	AreaName string
	Min      string
	Max      string
}

// Overview is the normalized overview document.
type Overview struct {
	PublishingOffice string
	ReportDatetime   time.Time
	TargetArea       string
	HeadlineText     string
	Text             string
}

// ShortTermForecast holds the flattened short-term payload for one area.
type ShortTermForecast struct {
	PublishingOffice string
	ReportDatetime   time.Time
	AreaName         string
	Slots            []WeatherSlot
	PopDays          []PopDay
	TempDays         []TempDay
	TempAreaName     string
}

// WeeklyForecast holds the flattened weekly payload.
type WeeklyForecast struct {
	PublishingOffice string
	ReportDatetime   time.Time
	AreaName         string
	Days             []WeeklyDaySlot
	TempAreaName     string
	Temps            []WeeklyTempSlot
	TempNormals      []ReferenceRow
	PrecipNormals    []ReferenceRow
}
