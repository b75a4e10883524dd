package weather

import "encoding/json"

// Report tags understood by the HKO open-data endpoint.
const (
	ReportLocalForecast  = "flw"     // local weather forecast
	ReportNineDay        = "fnd"     // 9-day forecast
	ReportCurrent        = "rhrread" // current weather report
	ReportWarningSummary = "warnsum" // weather warning summary
	ReportWarningInfo    = "warningInfo"
	ReportSpecialTips    = "swt"
)

// Language codes accepted by the upstream API.
const (
	LangEnglish            = "en"
	LangTraditionalChinese = "tc"
	LangSimplifiedChinese  = "sc"
)

// ValidReportTypes lists every report tag the tool accepts, in the fixed
// order used for error messages.
var ValidReportTypes = []string{
	ReportLocalForecast,
	ReportNineDay,
	ReportCurrent,
	ReportWarningSummary,
	ReportWarningInfo,
	ReportSpecialTips,
}

// ValidLangs lists every language code the tool accepts.
var ValidLangs = []string{LangEnglish, LangTraditionalChinese, LangSimplifiedChinese}

// LocalForecast is the `flw` document. Every field is optional upstream;
// the renderer substitutes fixed fallbacks for empty values.
type LocalForecast struct {
	GeneralSituation  string `json:"generalSituation"`
	TCInfo            string `json:"tcInfo"`
	FireDangerWarning string `json:"fireDangerWarning"`
	ForecastPeriod    string `json:"forecastPeriod"`
	ForecastDesc      string `json:"forecastDesc"`
	Outlook           string `json:"outlook"`
	UpdateTime        string `json:"updateTime"`
}

// TempValue is a temperature with its unit. The value stays a json.Number so
// it renders exactly as the upstream document spells it.
type TempValue struct {
	Value json.Number `json:"value"`
	Unit  string      `json:"unit"`
}

// ForecastDay is one entry of the 9-day forecast.
type ForecastDay struct {
	Week            string    `json:"week"`
	ForecastDate    string    `json:"forecastDate"`
	ForecastWeather string    `json:"forecastWeather"`
	ForecastMintemp TempValue `json:"forecastMintemp"`
	ForecastMaxtemp TempValue `json:"forecastMaxtemp"`
}

// NineDayForecast is the `fnd` document. A nil WeatherForecast means the key
// was absent, which is a hard error for this report type.
type NineDayForecast struct {
	WeatherForecast []ForecastDay `json:"weatherForecast"`
}

// Reading is one station reading inside the current weather report. The
// upstream mixes `value` (temperature, humidity, UV) and `max` (rainfall)
// depending on the sub-report, so both live here.
type Reading struct {
	Place string      `json:"place"`
	Value json.Number `json:"value"`
	Max   json.Number `json:"max"`
	Unit  string      `json:"unit"`
	Main  string      `json:"main"`
	Desc  string      `json:"desc"`
}

// ReadingSet is a timed group of station readings.
type ReadingSet struct {
	Data       []Reading `json:"data"`
	RecordTime string    `json:"recordTime"`
	RecordDesc string    `json:"recordDesc"`
}

// CurrentReport is the `rhrread` document. Nil pointers mean the
// corresponding top-level key was absent.
type CurrentReport struct {
	Temperature *ReadingSet `json:"temperature"`
	Rainfall    *ReadingSet `json:"rainfall"`
	Humidity    *ReadingSet `json:"humidity"`
	UVIndex     *ReadingSet `json:"uvindex"`
}

// WarningEntry is one entry of the `warnsum` document, keyed by warning code.
type WarningEntry struct {
	Name       string `json:"name"`
	ActionCode string `json:"actionCode"`
	IssueTime  string `json:"issueTime"`
}

// WarningDetail is one record of the `warningInfo` document.
type WarningDetail struct {
	WarningStatementCode string   `json:"warningStatementCode"`
	Subtype              string   `json:"subtype"`
	UpdateTime           string   `json:"updateTime"`
	Contents             []string `json:"contents"`
}

// WarningReport is the `warningInfo` document.
type WarningReport struct {
	Details []WarningDetail `json:"details"`
}

// SpecialTip is one record of the `swt` document.
type SpecialTip struct {
	UpdateTime string `json:"updateTime"`
	Desc       string `json:"desc"`
}

// SpecialTips is the `swt` document. A nil Swt slice means the key was
// absent, which is a hard error; an empty slice means no tips are in force.
type SpecialTips struct {
	Swt []SpecialTip `json:"swt"`
}
