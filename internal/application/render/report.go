// Package render turns normalized forecast values into the user-facing
// Japanese text reports. It is pure formatting: no decisions, no data access.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mayoblitz/mcp-weather/internal/domain/entity"
)

var weekdayJa = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// OverviewReport renders the prose overview document.
func OverviewReport(o *entity.Overview) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%sの天気概況:\n\n", o.TargetArea)
	fmt.Fprintf(&b, "発表: %s\n", o.PublishingOffice)
	fmt.Fprintf(&b, "発表日時: %s\n\n", formatDateTime(o.ReportDatetime))

	headline := o.HeadlineText
	if headline == "" {
		headline = "特になし"
	}
	fmt.Fprintf(&b, "【見出し】\n%s\n\n", headline)
	fmt.Fprintf(&b, "【詳細】\n%s", o.Text)

	return b.String()
}

// ShortTermReport renders the short-term forecast for the resolved location.
func ShortTermReport(f *entity.ShortTermForecast, locationName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%sの天気予報:\n\n", locationName)
	fmt.Fprintf(&b, "発表: %s\n", f.PublishingOffice)
	fmt.Fprintf(&b, "発表日時: %s\n", formatDateTime(f.ReportDatetime))

	if len(f.Slots) > 0 {
		fmt.Fprintf(&b, "\n【%sの天気】\n", f.AreaName)
		for _, slot := range f.Slots {
			fmt.Fprintf(&b, "%s: %s", formatSlotTime(slot.Time), slot.Weather)
			fmt.Fprintf(&b, " / 風: %s", slot.Wind)
			if slot.Wave != entity.NoDataText {
				fmt.Fprintf(&b, " / 波: %s", slot.Wave)
			}
			b.WriteString("\n")
		}
	}

	if len(f.PopDays) > 0 {
		b.WriteString("\n【降水確率】\n")
		for _, day := range f.PopDays {
			fmt.Fprintf(&b, "%s\n", formatDate(day.Date))
			for _, w := range day.Windows {
				fmt.Fprintf(&b, "  %s: %s\n", w.Label, percent(w.Pop))
			}
		}
	}

	if len(f.TempDays) > 0 {
		fmt.Fprintf(&b, "\n【気温(%s)】\n", f.TempAreaName)
		for _, day := range f.TempDays {
			fmt.Fprintf(&b, "%s\n", formatDate(day.Date))
			for _, r := range day.Readings {
				fmt.Fprintf(&b, "  %s: %s\n", r.Label, celsius(r.Value))
			}
		}
	}

	return b.String()
}

// WeeklyReport renders the six-day forecast for the resolved location.
func WeeklyReport(f *entity.WeeklyForecast, locationName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%sの週間予報:\n\n", locationName)
	fmt.Fprintf(&b, "発表: %s\n", f.PublishingOffice)
	fmt.Fprintf(&b, "発表日時: %s\n", formatDateTime(f.ReportDatetime))

	if len(f.Days) > 0 {
		fmt.Fprintf(&b, "\n【%sの予報】\n", f.AreaName)
		for _, day := range f.Days {
			fmt.Fprintf(&b, "%s: %s / 降水確率: %s / 信頼度: %s\n",
				formatDayWithWeekday(day.Time), day.Weather, percent(day.Pop), day.Reliability)
		}
	}

	if len(f.Temps) > 0 {
		fmt.Fprintf(&b, "\n【気温(%s)】\n", f.TempAreaName)
		for _, slot := range f.Temps {
			fmt.Fprintf(&b, "%s: 最低 %s", formatDayWithWeekday(slot.Time), celsius(slot.Min))
			if slot.MinRange != "" {
				fmt.Fprintf(&b, " (%s)", slot.MinRange)
			}
			fmt.Fprintf(&b, " / 最高 %s", celsius(slot.Max))
			if slot.MaxRange != "" {
				fmt.Fprintf(&b, " (%s)", slot.MaxRange)
			}
			b.WriteString("\n")
		}
	}

	if len(f.TempNormals) > 0 {
		b.WriteString("\n【平年値(気温)】\n")
		for _, row := range f.TempNormals {
			fmt.Fprintf(&b, "%s: 最低 %s / 最高 %s\n", row.AreaName, celsius(row.Min), celsius(row.Max))
		}
	}

	if len(f.PrecipNormals) > 0 {
		b.WriteString("\n【平年値(降水量)】\n")
		for _, row := range f.PrecipNormals {
			fmt.Fprintf(&b, "%s: %s〜%s\n", row.AreaName, row.Min, row.Max)
		}
	}

	return b.String()
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return entity.NoDataText
	}
	return t.Format("2006年1月2日 15時04分")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return entity.NoDataText
	}
	return t.Format("1月2日")
}

func formatSlotTime(t time.Time) string {
	if t.IsZero() {
		return entity.NoDataText
	}
	return t.Format("1月2日 15時")
}

func formatDayWithWeekday(t time.Time) string {
	if t.IsZero() {
		return entity.NoDataText
	}
	return fmt.Sprintf("%s(%s)", t.Format("1月2日"), weekdayJa[t.Weekday()])
}

// percent suffixes a pop value; placeholders pass through unchanged.
func percent(v string) string {
	if v == entity.NoValueText {
		return v
	}
	return v + "%"
}

// celsius suffixes a temperature value; placeholders pass through unchanged.
func celsius(v string) string {
	if v == entity.NoValueText {
		return v
	}
	return v + "℃"
}
