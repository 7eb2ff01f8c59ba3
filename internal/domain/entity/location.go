package entity

// ResolvedLocation is the result of mapping a free-text place name onto the
// JMA coding scheme. RegionCode is always present; AreaCode and CityCode are
// filled only when resolution reached municipality granularity.
type ResolvedLocation struct {
	RegionCode   string `json:"regionCode"`           // office level, forecast lookup key
	AreaCode     string `json:"areaCode,omitempty"`   // class10 level
	CityCode     string `json:"cityCode,omitempty"`   // class20 level
	Name         string `json:"name"`                 // matched display name
	IsCitySearch bool   `json:"isCitySearch"`
}
