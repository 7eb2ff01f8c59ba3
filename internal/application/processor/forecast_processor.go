package processor

import (
	"fmt"
	"time"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	"github.com/mayoblitz/mcp-weather/internal/domain/model/external"
)

// Short-term payload series layout.
const (
	seriesWeather = 0 // weather / wind / wave
	seriesPop     = 1 // probability of precipitation, 6-hour windows
	seriesTemp    = 2 // point temperatures, two per day
)

// Weekly payload series layout.
const (
	weeklySeriesWeather = 0 // weather code + pop + reliability
	weeklySeriesTemp    = 1 // seven-day min/max with confidence ranges
)

// Classify converts a raw area record into exactly one tagged variant.
// Precedence is Weather > Temperature > Precipitation: a weather record may
// also carry pops and must not be misclassified as precipitation.
func Classify(raw external.AreaRecord) entity.ClassifiedRecord {
	record := entity.ClassifiedRecord{
		Kind:          entity.KindUnknown,
		AreaName:      raw.Area.Name,
		AreaCode:      raw.Area.Code,
		Weathers:      raw.Weathers,
		WeatherCodes:  raw.WeatherCodes,
		Winds:         raw.Winds,
		Waves:         raw.Waves,
		Pops:          raw.Pops,
		Temps:         raw.Temps,
		TempsMin:      raw.TempsMin,
		TempsMinUpper: raw.TempsMinUpper,
		TempsMinLower: raw.TempsMinLower,
		TempsMax:      raw.TempsMax,
		TempsMaxUpper: raw.TempsMaxUpper,
		TempsMaxLower: raw.TempsMaxLower,
		Reliabilities: raw.Reliabilities,
	}

	switch {
	case len(raw.Weathers) > 0 || len(raw.WeatherCodes) > 0 || len(raw.Winds) > 0 || len(raw.Waves) > 0:
		record.Kind = entity.KindWeather
	case len(raw.Temps) > 0 || len(raw.TempsMin) > 0 || len(raw.TempsMax) > 0:
		record.Kind = entity.KindTemperature
	case len(raw.Pops) > 0:
		record.Kind = entity.KindPrecipitation
	}

	return record
}

// classifySeries classifies a series' records, filtered for the resolved
// location. Municipality-scoped queries narrow each series to the record
// whose area code equals the resolved area code; when no record carries that
// code (weekly series are pre-aggregated at coarser granularity) the full
// list is kept. Prefecture-scoped queries are never filtered.
func classifySeries(ts external.TimeSeries, loc *entity.ResolvedLocation) []entity.ClassifiedRecord {
	areas := ts.Areas
	if loc != nil && loc.IsCitySearch && loc.AreaCode != "" {
		for _, raw := range ts.Areas {
			if raw.Area.Code == loc.AreaCode {
				areas = []external.AreaRecord{raw}
				break
			}
		}
	}

	records := make([]entity.ClassifiedRecord, 0, len(areas))
	for _, raw := range areas {
		records = append(records, Classify(raw))
	}
	return records
}

// firstOfKind returns the first record with the wanted tag.
func firstOfKind(records []entity.ClassifiedRecord, kind entity.RecordKind) (entity.ClassifiedRecord, bool) {
	for _, r := range records {
		if r.Kind == kind {
			return r, true
		}
	}
	return entity.ClassifiedRecord{}, false
}

// NormalizeShortTerm flattens the short-term forecast document (payload
// element 0) for the resolved location. Missing slot values become explicit
// placeholders; every timestamp position yields an output row.
func NormalizeShortTerm(doc external.ForecastDocument, loc *entity.ResolvedLocation) *entity.ShortTermForecast {
	forecast := &entity.ShortTermForecast{
		PublishingOffice: doc.PublishingOffice,
		ReportDatetime:   parseTime(doc.ReportDatetime),
	}

	if ts, ok := seriesAt(doc, seriesWeather); ok {
		if record, found := firstOfKind(classifySeries(ts, loc), entity.KindWeather); found {
			forecast.AreaName = record.AreaName
			forecast.Slots = weatherSlots(ts.TimeDefines, record)
		}
	}

	if ts, ok := seriesAt(doc, seriesPop); ok {
		if record, found := firstOfKind(classifySeries(ts, loc), entity.KindPrecipitation); found {
			forecast.PopDays = popDays(ts.TimeDefines, record)
		}
	}

	if ts, ok := seriesAt(doc, seriesTemp); ok {
		if record, found := firstOfKind(classifySeries(ts, loc), entity.KindTemperature); found {
			forecast.TempAreaName = record.AreaName
			forecast.TempDays = tempDays(ts.TimeDefines, record)
		}
	}

	return forecast
}

// NormalizeWeekly flattens the weekly forecast document (payload element 1).
// Weekly series are pre-aggregated per region, so only the first area record
// is used even when several are present.
func NormalizeWeekly(doc external.ForecastDocument, loc *entity.ResolvedLocation) *entity.WeeklyForecast {
	forecast := &entity.WeeklyForecast{
		PublishingOffice: doc.PublishingOffice,
		ReportDatetime:   parseTime(doc.ReportDatetime),
	}

	if ts, ok := seriesAt(doc, weeklySeriesWeather); ok {
		if record, found := firstOfKind(classifySeries(ts, loc), entity.KindWeather); found {
			forecast.AreaName = record.AreaName
			forecast.Days = weeklyDays(ts.TimeDefines, record)
		}
	}

	if ts, ok := seriesAt(doc, weeklySeriesTemp); ok {
		if record, found := firstOfKind(classifySeries(ts, loc), entity.KindTemperature); found {
			forecast.TempAreaName = record.AreaName
			forecast.Temps = weeklyTemps(ts.TimeDefines, record)
		}
	}

	forecast.TempNormals = referenceRows(doc.TempAverage)
	forecast.PrecipNormals = referenceRows(doc.PrecipAverage)

	return forecast
}

// NormalizeOverview converts the raw overview document.
func NormalizeOverview(raw external.OverviewResponse) *entity.Overview {
	return &entity.Overview{
		PublishingOffice: raw.PublishingOffice,
		ReportDatetime:   parseTime(raw.ReportDatetime),
		TargetArea:       raw.TargetArea,
		HeadlineText:     raw.HeadlineText,
		Text:             raw.Text,
	}
}

// weatherSlots builds one weather/wind/wave row per timestamp.
func weatherSlots(timeDefines []string, record entity.ClassifiedRecord) []entity.WeatherSlot {
	slots := make([]entity.WeatherSlot, 0, len(timeDefines))
	for i, td := range timeDefines {
		weather := valueAt(record.Weathers, i)
		if weather == "" {
			if code := valueAt(record.WeatherCodes, i); code != "" {
				weather = entity.TranslateWeatherCode(code)
			} else {
				weather = entity.NoDataText
			}
		}

		slots = append(slots, entity.WeatherSlot{
			Time:    parseTime(td),
			Weather: weather,
			Wind:    orPlaceholder(valueAt(record.Winds, i), entity.NoDataText),
			Wave:    orPlaceholder(valueAt(record.Waves, i), entity.NoDataText),
		})
	}
	return slots
}

// popDays buckets pop values into per-day six-hour windows. The window label
// is computed from each timestamp's local hour and wraps past midnight
// (21 -> "21-3時").
func popDays(timeDefines []string, record entity.ClassifiedRecord) []entity.PopDay {
	var days []entity.PopDay
	for i, td := range timeDefines {
		t := parseTime(td)
		window := entity.PopWindow{
			Time:  t,
			Label: fmt.Sprintf("%d-%d時", t.Hour(), (t.Hour()+6)%24),
			Pop:   orPlaceholder(valueAt(record.Pops, i), entity.NoValueText),
		}

		date := truncateToDay(t)
		if len(days) == 0 || !days[len(days)-1].Date.Equal(date) {
			days = append(days, entity.PopDay{Date: date})
		}
		days[len(days)-1].Windows = append(days[len(days)-1].Windows, window)
	}
	return days
}

// tempDays buckets point temperatures per day. Hour 0 carries the daily low,
// any other hour the daily high.
func tempDays(timeDefines []string, record entity.ClassifiedRecord) []entity.TempDay {
	var days []entity.TempDay
	for i, td := range timeDefines {
		t := parseTime(td)
		label := "最高"
		if t.Hour() == 0 {
			label = "最低"
		}
		reading := entity.TempReading{
			Time:  t,
			Label: label,
			Value: orPlaceholder(valueAt(record.Temps, i), entity.NoValueText),
		}

		date := truncateToDay(t)
		if len(days) == 0 || !days[len(days)-1].Date.Equal(date) {
			days = append(days, entity.TempDay{Date: date})
		}
		days[len(days)-1].Readings = append(days[len(days)-1].Readings, reading)
	}
	return days
}

// weeklyDays builds one weather/pop/reliability row per day.
func weeklyDays(timeDefines []string, record entity.ClassifiedRecord) []entity.WeeklyDaySlot {
	slots := make([]entity.WeeklyDaySlot, 0, len(timeDefines))
	for i, td := range timeDefines {
		weather := entity.NoDataText
		if code := valueAt(record.WeatherCodes, i); code != "" {
			weather = entity.TranslateWeatherCode(code)
		}

		slots = append(slots, entity.WeeklyDaySlot{
			Time:        parseTime(td),
			Weather:     weather,
			Pop:         orPlaceholder(valueAt(record.Pops, i), entity.NoValueText),
			Reliability: orPlaceholder(valueAt(record.Reliabilities, i), entity.NoValueText),
		})
	}
	return slots
}

// weeklyTemps builds one min/max row per day with optional confidence ranges.
func weeklyTemps(timeDefines []string, record entity.ClassifiedRecord) []entity.WeeklyTempSlot {
	slots := make([]entity.WeeklyTempSlot, 0, len(timeDefines))
	for i, td := range timeDefines {
		slots = append(slots, entity.WeeklyTempSlot{
			Time:     parseTime(td),
			Min:      orPlaceholder(valueAt(record.TempsMin, i), entity.NoValueText),
			MinRange: rangeLabel(valueAt(record.TempsMinLower, i), valueAt(record.TempsMinUpper, i)),
			Max:      orPlaceholder(valueAt(record.TempsMax, i), entity.NoValueText),
			MaxRange: rangeLabel(valueAt(record.TempsMaxLower, i), valueAt(record.TempsMaxUpper, i)),
		})
	}
	return slots
}

// referenceRows copies an average block verbatim, one row per named area.
func referenceRows(block *external.AverageBlock) []entity.ReferenceRow {
	if block == nil {
		return nil
	}
	rows := make([]entity.ReferenceRow, 0, len(block.Areas))
	for _, a := range block.Areas {
		rows = append(rows, entity.ReferenceRow{
			AreaName: a.Area.Name,
			Min:      a.Min,
			Max:      a.Max,
		})
	}
	return rows
}

// valueAt returns the i-th value, or "" when the record omits that index.
func valueAt(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// rangeLabel renders a confidence range; empty when either bound is absent.
func rangeLabel(lower, upper string) string {
	if lower == "" || upper == "" {
		return ""
	}
	return lower + "〜" + upper
}

func seriesAt(doc external.ForecastDocument, i int) (external.TimeSeries, bool) {
	if i >= len(doc.TimeSeries) {
		return external.TimeSeries{}, false
	}
	return doc.TimeSeries[i], true
}

// parseTime parses an ISO timestamp keeping its offset; JMA publishes JST
// offsets, so Hour() is already the local hour. Unparsable input yields the
// zero time.
func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
