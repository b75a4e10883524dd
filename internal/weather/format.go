package weather

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// warningNames maps every warning statement code the observatory issues to
// its human-readable name. A code outside this table is a hard error.
var warningNames = map[string]string{
	"WFIRE":   "Fire Danger Warning",
	"WFROST":  "Frost Warning",
	"WHOT":    "Hot Weather Warning",
	"WCOLD":   "Cold Weather Warning",
	"WMSGNL":  "Strong Monsoon Signal",
	"WTCPRE8": "Pre-no.8 Special Announcement",
	"WRAIN":   "Rainstorm Warning Signal",
	"WFNTSA":  "Special Announcement on Flooding in the northern New Territories",
	"WL":      "Landslip Warning",
	"WTCSGNL": "Tropical Cyclone Warning Signal",
	"WTMW":    "Tsunami Warning",
	"WTS":     "Thunderstorm Warning",
}

// Format renders the raw upstream document for the given report tag into a
// human-readable text report. The tag selects which document shape is
// assumed; a decode failure or a document missing a required field is
// returned as an error rather than rendered partially.
func Format(dataType string, raw json.RawMessage) (string, error) {
	switch dataType {
	case ReportLocalForecast:
		var doc LocalForecast
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fmt.Errorf("decode %s document: %w", dataType, err)
		}
		return formatLocalForecast(doc), nil
	case ReportNineDay:
		var doc NineDayForecast
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fmt.Errorf("decode %s document: %w", dataType, err)
		}
		return formatNineDay(doc)
	case ReportCurrent:
		var doc CurrentReport
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fmt.Errorf("decode %s document: %w", dataType, err)
		}
		return formatCurrent(doc), nil
	case ReportWarningSummary:
		var doc map[string]WarningEntry
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fmt.Errorf("decode %s document: %w", dataType, err)
		}
		return formatWarningSummary(doc), nil
	case ReportWarningInfo:
		var doc WarningReport
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fmt.Errorf("decode %s document: %w", dataType, err)
		}
		return formatWarningInfo(doc)
	case ReportSpecialTips:
		var doc SpecialTips
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fmt.Errorf("decode %s document: %w", dataType, err)
		}
		return formatSpecialTips(doc)
	default:
		return "", fmt.Errorf("unknown report type %q", dataType)
	}
}

// orDefault substitutes def for an empty upstream field.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func formatLocalForecast(doc LocalForecast) string {
	lines := []string{
		"General Situation: " + orDefault(doc.GeneralSituation, "Unknown"),
		"tcInfo: " + orDefault(doc.TCInfo, "Unknown"),
		"fireDangerWarning: " + orDefault(doc.FireDangerWarning, "No fire Danger"),
		"forecastPeriod: " + orDefault(doc.ForecastPeriod, "Forecast Period not provided"),
		"forecastDesc: " + orDefault(doc.ForecastDesc, "No forecast description available"),
		"outlook: " + orDefault(doc.Outlook, "No outlook available"),
		"updateTime: " + orDefault(doc.UpdateTime, "No update time available"),
	}
	return strings.Join(lines, "\n")
}

func formatNineDay(doc NineDayForecast) (string, error) {
	if doc.WeatherForecast == nil {
		return "", fmt.Errorf("fnd document has no weatherForecast field")
	}

	lines := make([]string, 0, len(doc.WeatherForecast))
	for _, day := range doc.WeatherForecast {
		lines = append(lines, fmt.Sprintf("%s (%s): %s, %s-%s%s",
			day.Week,
			day.ForecastDate,
			day.ForecastWeather,
			day.ForecastMintemp.Value,
			day.ForecastMaxtemp.Value,
			day.ForecastMaxtemp.Unit,
		))
	}
	return strings.Join(lines, "\n"), nil
}

func formatCurrent(doc CurrentReport) string {
	parts := []string{
		extractTemperature(doc.Temperature),
		extractRainfall(doc.Rainfall),
		extractHumidity(doc.Humidity),
		extractUVIndex(doc.UVIndex),
	}
	return strings.Join(parts, "\n")
}

func extractTemperature(set *ReadingSet) string {
	if set == nil {
		return "Temperature data not available"
	}

	lines := make([]string, 0, len(set.Data)+1)
	lines = append(lines, fmt.Sprintf("Temperature readings (recorded at %s):", set.RecordTime))
	for _, r := range set.Data {
		lines = append(lines, fmt.Sprintf("%s: %s°%s", r.Place, r.Value, r.Unit))
	}
	return strings.Join(lines, "\n")
}

func extractRainfall(set *ReadingSet) string {
	if set == nil {
		return "Rainfall data not available"
	}

	lines := make([]string, 0, len(set.Data)+1)
	lines = append(lines, "Rainfall data:")
	for _, r := range set.Data {
		maintenance := "False"
		if r.Main == "TRUE" {
			maintenance = "Under maintenance"
		}
		lines = append(lines, fmt.Sprintf("%s: %s%s maintenance:%s", r.Place, r.Max, r.Unit, maintenance))
	}
	return strings.Join(lines, "\n")
}

func extractHumidity(set *ReadingSet) string {
	if set == nil || len(set.Data) == 0 {
		return "Humidity data not available"
	}

	// Only the first station reading is reported.
	first := set.Data[0]
	return fmt.Sprintf("Humidity: %s %s at %s Recorded at: %s",
		first.Value, first.Unit, first.Place, set.RecordTime)
}

func extractUVIndex(set *ReadingSet) string {
	if set == nil || len(set.Data) == 0 {
		return "No UV index"
	}

	first := set.Data[0]
	return fmt.Sprintf("UV Index: %s (%s) at %s\nRecord description: %s",
		first.Value, first.Desc, first.Place, set.RecordDesc)
}

func formatWarningSummary(doc map[string]WarningEntry) string {
	if len(doc) == 0 {
		return "No warning issued."
	}

	// Map iteration order is randomized, so sort the codes to keep the
	// rendered report stable across calls.
	codes := make([]string, 0, len(doc))
	for code := range doc {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	lines := make([]string, 0, len(codes))
	for _, code := range codes {
		entry := doc[code]
		lines = append(lines, fmt.Sprintf("%s (%s) - Action: %s, Issued at: %s",
			orDefault(entry.Name, "Unknown"),
			code,
			orDefault(entry.ActionCode, "Unknown"),
			orDefault(entry.IssueTime, "Unknown"),
		))
	}
	return strings.Join(lines, "\n")
}

func formatWarningInfo(doc WarningReport) (string, error) {
	if len(doc.Details) == 0 {
		return "No active warnings", nil
	}

	blocks := make([]string, 0, len(doc.Details))
	for _, detail := range doc.Details {
		name, ok := warningNames[detail.WarningStatementCode]
		if !ok {
			return "", fmt.Errorf("unknown warning statement code %q", detail.WarningStatementCode)
		}

		subtype := ""
		if detail.Subtype != "" {
			subtype = fmt.Sprintf(" (%s)", detail.Subtype)
		}
		content := strings.Join(detail.Contents, " ")
		blocks = append(blocks, fmt.Sprintf("%s%s - %s: %s", name, subtype, detail.UpdateTime, content))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func formatSpecialTips(doc SpecialTips) (string, error) {
	if doc.Swt == nil {
		return "", fmt.Errorf("swt document has no swt field")
	}
	if len(doc.Swt) == 0 {
		return "No special weather tips in force", nil
	}

	lines := make([]string, 0, len(doc.Swt))
	for _, tip := range doc.Swt {
		lines = append(lines, fmt.Sprintf("%s: %s",
			orDefault(tip.UpdateTime, "time unknown"),
			orDefault(tip.Desc, "no description"),
		))
	}
	return strings.Join(lines, "\n"), nil
}
