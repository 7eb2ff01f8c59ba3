package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
	"github.com/mayoblitz/mcp-weather/internal/domain/model/external"
)

func TestClassify(t *testing.T) {
	t.Run("WeatherBeatsPrecipitation", func(t *testing.T) {
		// JMA weather records can also carry pops; the weather fields win.
		record := Classify(external.AreaRecord{
			Area:         external.AreaRef{Name: "東京地方", Code: "130010"},
			WeatherCodes: []string{"100", "201"},
			Pops:         []string{"10", "20"},
		})
		assert.Equal(t, entity.KindWeather, record.Kind)
	})

	t.Run("TemperatureBeatsPrecipitation", func(t *testing.T) {
		record := Classify(external.AreaRecord{
			Area:  external.AreaRef{Name: "東京", Code: "44132"},
			Temps: []string{"25", "33"},
			Pops:  []string{"10"},
		})
		assert.Equal(t, entity.KindTemperature, record.Kind)
	})

	t.Run("PrecipitationOnly", func(t *testing.T) {
		record := Classify(external.AreaRecord{
			Area: external.AreaRef{Name: "東京地方", Code: "130010"},
			Pops: []string{"10", "20"},
		})
		assert.Equal(t, entity.KindPrecipitation, record.Kind)
	})

	t.Run("EmptyRecordIsUnknown", func(t *testing.T) {
		record := Classify(external.AreaRecord{
			Area: external.AreaRef{Name: "東京地方", Code: "130010"},
		})
		assert.Equal(t, entity.KindUnknown, record.Kind)
	})
}

func shortTermDocument() external.ForecastDocument {
	return external.ForecastDocument{
		PublishingOffice: "気象庁",
		ReportDatetime:   "2026-08-31T17:00:00+09:00",
		TimeSeries: []external.TimeSeries{
			{
				TimeDefines: []string{
					"2026-08-31T17:00:00+09:00",
					"2026-09-01T00:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area:         external.AreaRef{Name: "東京地方", Code: "130010"},
						Weathers:     []string{"晴れ", ""},
						WeatherCodes: []string{"100", "201"},
						Winds:        []string{"北の風", "北の風"},
					},
					{
						Area:         external.AreaRef{Name: "伊豆諸島北部", Code: "130020"},
						Weathers:     []string{"くもり", "くもり"},
						WeatherCodes: []string{"200", "200"},
						Winds:        []string{"南の風", "南の風"},
						Waves:        []string{"1.5メートル", "2メートル"},
					},
				},
			},
			{
				TimeDefines: []string{
					"2026-08-31T21:00:00+09:00",
					"2026-09-01T03:00:00+09:00",
					"2026-09-01T09:00:00+09:00",
					"2026-09-01T15:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area: external.AreaRef{Name: "東京地方", Code: "130010"},
						Pops: []string{"10", "20", "30", "40"},
					},
				},
			},
			{
				TimeDefines: []string{
					"2026-09-01T00:00:00+09:00",
					"2026-09-01T09:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area:  external.AreaRef{Name: "東京", Code: "44132"},
						Temps: []string{"24", "33"},
					},
				},
			},
		},
	}
}

func TestNormalizeShortTerm(t *testing.T) {
	loc := &entity.ResolvedLocation{
		RegionCode:   "130000",
		AreaCode:     "130010",
		CityCode:     "1310100",
		Name:         "千代田区",
		IsCitySearch: true,
	}

	forecast := NormalizeShortTerm(shortTermDocument(), loc)

	t.Run("Header", func(t *testing.T) {
		assert.Equal(t, "気象庁", forecast.PublishingOffice)
		assert.Equal(t, 2026, forecast.ReportDatetime.Year())
	})

	t.Run("MunicipalityFilterPicksMatchingArea", func(t *testing.T) {
		assert.Equal(t, "東京地方", forecast.AreaName)
		require.Len(t, forecast.Slots, 2)
	})

	t.Run("MissingWeatherTextFallsBackToCode", func(t *testing.T) {
		assert.Equal(t, "晴れ", forecast.Slots[0].Weather)
		// Second slot has an empty weather string; code 201 takes over.
		assert.Equal(t, "くもり時々晴れ", forecast.Slots[1].Weather)
	})

	t.Run("MissingWaveGetsPlaceholder", func(t *testing.T) {
		assert.Equal(t, "北の風", forecast.Slots[0].Wind)
		assert.Equal(t, entity.NoDataText, forecast.Slots[0].Wave)
	})

	t.Run("PopWindowsSpanTwoDays", func(t *testing.T) {
		require.Len(t, forecast.PopDays, 2)
		require.Len(t, forecast.PopDays[0].Windows, 1)
		require.Len(t, forecast.PopDays[1].Windows, 3)
		assert.Equal(t, "21-3時", forecast.PopDays[0].Windows[0].Label)
		assert.Equal(t, "10", forecast.PopDays[0].Windows[0].Pop)
		assert.Equal(t, "3-9時", forecast.PopDays[1].Windows[0].Label)
		assert.Equal(t, "9-15時", forecast.PopDays[1].Windows[1].Label)
		assert.Equal(t, "15-21時", forecast.PopDays[1].Windows[2].Label)
	})

	t.Run("TempLabels", func(t *testing.T) {
		require.Len(t, forecast.TempDays, 1)
		readings := forecast.TempDays[0].Readings
		require.Len(t, readings, 2)
		assert.Equal(t, "最低", readings[0].Label)
		assert.Equal(t, "24", readings[0].Value)
		assert.Equal(t, "最高", readings[1].Label)
		assert.Equal(t, "33", readings[1].Value)
	})
}

func TestNormalizeShortTerm_FilterFallsBackWhenNoAreaMatches(t *testing.T) {
	loc := &entity.ResolvedLocation{
		RegionCode:   "130000",
		AreaCode:     "130030",
		IsCitySearch: true,
	}

	forecast := NormalizeShortTerm(shortTermDocument(), loc)

	// No record carries area code 130030, so the full list is kept and the
	// first weather record wins.
	assert.Equal(t, "東京地方", forecast.AreaName)
}

func TestNormalizeShortTerm_PrefectureScopeIsUnfiltered(t *testing.T) {
	loc := &entity.ResolvedLocation{RegionCode: "130000", IsCitySearch: false}

	forecast := NormalizeShortTerm(shortTermDocument(), loc)

	assert.Equal(t, "東京地方", forecast.AreaName)
	require.Len(t, forecast.PopDays, 2)
}

func TestNormalizeShortTerm_MissingPopValuesBecomePlaceholders(t *testing.T) {
	doc := external.ForecastDocument{
		ReportDatetime: "2026-08-31T17:00:00+09:00",
		TimeSeries: []external.TimeSeries{
			{},
			{
				TimeDefines: []string{
					"2026-08-31T21:00:00+09:00",
					"2026-09-01T03:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area: external.AreaRef{Name: "東京地方", Code: "130010"},
						Pops: []string{"10"},
					},
				},
			},
		},
	}

	forecast := NormalizeShortTerm(doc, nil)

	require.Len(t, forecast.PopDays, 2)
	assert.Equal(t, "10", forecast.PopDays[0].Windows[0].Pop)
	assert.Equal(t, entity.NoValueText, forecast.PopDays[1].Windows[0].Pop)
}

func TestPopDays_TwoDayPayloadGroupsEvenly(t *testing.T) {
	doc := external.ForecastDocument{
		ReportDatetime: "2026-08-31T11:00:00+09:00",
		TimeSeries: []external.TimeSeries{
			{},
			{
				TimeDefines: []string{
					"2026-08-31T15:00:00+09:00",
					"2026-08-31T21:00:00+09:00",
					"2026-09-01T03:00:00+09:00",
					"2026-09-01T09:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area: external.AreaRef{Name: "東京地方", Code: "130010"},
						Pops: []string{"10", "20", "30", "40"},
					},
				},
			},
		},
	}

	forecast := NormalizeShortTerm(doc, nil)

	require.Len(t, forecast.PopDays, 2)
	require.Len(t, forecast.PopDays[0].Windows, 2)
	require.Len(t, forecast.PopDays[1].Windows, 2)
	assert.Equal(t, "15-21時", forecast.PopDays[0].Windows[0].Label)
	assert.Equal(t, "21-3時", forecast.PopDays[0].Windows[1].Label)
	assert.Equal(t, "3-9時", forecast.PopDays[1].Windows[0].Label)
	assert.Equal(t, []string{"10", "20"}, []string{forecast.PopDays[0].Windows[0].Pop, forecast.PopDays[0].Windows[1].Pop})
	assert.Equal(t, []string{"30", "40"}, []string{forecast.PopDays[1].Windows[0].Pop, forecast.PopDays[1].Windows[1].Pop})
}

func TestNormalizeWeekly(t *testing.T) {
	doc := external.ForecastDocument{
		PublishingOffice: "気象庁",
		ReportDatetime:   "2026-08-31T17:00:00+09:00",
		TimeSeries: []external.TimeSeries{
			{
				TimeDefines: []string{
					"2026-09-01T00:00:00+09:00",
					"2026-09-02T00:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area:          external.AreaRef{Name: "東京地方", Code: "130010"},
						WeatherCodes:  []string{"101", "202"},
						Pops:          []string{"", "30"},
						Reliabilities: []string{"", "A"},
					},
				},
			},
			{
				TimeDefines: []string{
					"2026-09-01T00:00:00+09:00",
					"2026-09-02T00:00:00+09:00",
				},
				Areas: []external.AreaRecord{
					{
						Area:          external.AreaRef{Name: "東京", Code: "44132"},
						TempsMin:      []string{"", "24"},
						TempsMinUpper: []string{"", "26"},
						TempsMinLower: []string{"", "22"},
						TempsMax:      []string{"", "33"},
						TempsMaxUpper: []string{"", "35"},
						TempsMaxLower: []string{"", "31"},
					},
				},
			},
		},
		TempAverage: &external.AverageBlock{
			Areas: []external.AverageArea{
				{Area: external.AreaRef{Name: "東京", Code: "44132"}, Min: "23.4", Max: "31.4"},
			},
		},
		PrecipAverage: &external.AverageBlock{
			Areas: []external.AverageArea{
				{Area: external.AreaRef{Name: "東京", Code: "44132"}, Min: "9.0", Max: "38.9"},
			},
		},
	}

	forecast := NormalizeWeekly(doc, nil)

	t.Run("DaysTranslateCodes", func(t *testing.T) {
		require.Len(t, forecast.Days, 2)
		assert.Equal(t, "晴れ時々くもり", forecast.Days[0].Weather)
		assert.Equal(t, entity.NoValueText, forecast.Days[0].Pop)
		assert.Equal(t, "くもり一時雨", forecast.Days[1].Weather)
		assert.Equal(t, "30", forecast.Days[1].Pop)
		assert.Equal(t, "A", forecast.Days[1].Reliability)
	})

	t.Run("TempsWithConfidenceRanges", func(t *testing.T) {
		require.Len(t, forecast.Temps, 2)
		assert.Equal(t, entity.NoValueText, forecast.Temps[0].Min)
		assert.Empty(t, forecast.Temps[0].MinRange)
		assert.Equal(t, "24", forecast.Temps[1].Min)
		assert.Equal(t, "22〜26", forecast.Temps[1].MinRange)
		assert.Equal(t, "31〜35", forecast.Temps[1].MaxRange)
	})

	t.Run("Normals", func(t *testing.T) {
		require.Len(t, forecast.TempNormals, 1)
		assert.Equal(t, "23.4", forecast.TempNormals[0].Min)
		require.Len(t, forecast.PrecipNormals, 1)
		assert.Equal(t, "38.9", forecast.PrecipNormals[0].Max)
	})
}

func TestNormalizeOverview(t *testing.T) {
	overview := NormalizeOverview(external.OverviewResponse{
		PublishingOffice: "気象庁",
		ReportDatetime:   "2026-09-01T10:38:00+09:00",
		TargetArea:       "東京都",
		HeadlineText:     "",
		Text:             "本州付近は高気圧に覆われています。",
	})

	assert.Equal(t, "東京都", overview.TargetArea)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 38, 0, 0, overview.ReportDatetime.Location()), overview.ReportDatetime)
	assert.Empty(t, overview.HeadlineText)
}

func TestParseTime(t *testing.T) {
	t.Run("KeepsJSTOffset", func(t *testing.T) {
		parsed := parseTime("2026-09-01T21:00:00+09:00")
		assert.Equal(t, 21, parsed.Hour())
	})

	t.Run("UnparsableYieldsZero", func(t *testing.T) {
		assert.True(t, parseTime("not a time").IsZero())
	})
}
