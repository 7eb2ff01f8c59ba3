package external

// OverviewResponse represents the forecast overview document
// (forecast/data/overview_forecast/<region>.json).
type OverviewResponse struct {
	PublishingOffice string `json:"publishingOffice"`
	ReportDatetime   string `json:"reportDatetime"`
	TargetArea       string `json:"targetArea"`
	HeadlineText     string `json:"headlineText"`
	Text             string `json:"text"`
}

// ForecastDocument is one element of the forecast payload
// (forecast/data/forecast/<region>.json). The payload is an ordered pair:
// element 0 is the short-term forecast, element 1 the weekly forecast.
type ForecastDocument struct {
	PublishingOffice string        `json:"publishingOffice"`
	ReportDatetime   string        `json:"reportDatetime"`
	TimeSeries       []TimeSeries  `json:"timeSeries"`
	TempAverage      *AverageBlock `json:"tempAverage,omitempty"`
	PrecipAverage    *AverageBlock `json:"precipAverage,omitempty"`
}

// TimeSeries pairs ordered timestamps with per-area records. Every record's
// value arrays are index-aligned with TimeDefines.
type TimeSeries struct {
	TimeDefines []string     `json:"timeDefines"`
	Areas       []AreaRecord `json:"areas"`
}

// AreaRecord is the polymorphic per-area record. Which optional fields are
// present decides whether it is a weather, temperature or precipitation
// record; classification happens once on ingestion.
type AreaRecord struct {
	Area AreaRef `json:"area"`

	Weathers     []string `json:"weathers,omitempty"`
	WeatherCodes []string `json:"weatherCodes,omitempty"`
	Winds        []string `json:"winds,omitempty"`
	Waves        []string `json:"waves,omitempty"`

	Pops []string `json:"pops,omitempty"`

	Temps         []string `json:"temps,omitempty"`
	TempsMin      []string `json:"tempsMin,omitempty"`
	TempsMinUpper []string `json:"tempsMinUpper,omitempty"`
	TempsMinLower []string `json:"tempsMinLower,omitempty"`
	TempsMax      []string `json:"tempsMax,omitempty"`
	TempsMaxUpper []string `json:"tempsMaxUpper,omitempty"`
	TempsMaxLower []string `json:"tempsMaxLower,omitempty"`

	Reliabilities []string `json:"reliabilities,omitempty"`
}

// AreaRef identifies the area a record belongs to.
type AreaRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// AverageBlock carries the reference normals attached to the weekly document.
type AverageBlock struct {
	Areas []AverageArea `json:"areas"`
}

// AverageArea is one named area's normal min/max, rendered verbatim.
type AverageArea struct {
	Area AreaRef `json:"area"`
	Min  string  `json:"min"`
	Max  string  `json:"max"`
}

// APIErrorResponse represents error bodies from the JMA endpoints. The agency
// serves static files, so errors are usually plain HTTP statuses with no body.
type APIErrorResponse struct {
	Message string `json:"message"`
}
