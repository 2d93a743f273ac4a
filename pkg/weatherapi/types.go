package weatherapi

import (
	"encoding/json"
	"fmt"
)

// Bool handles the API's integer-encoded booleans. The wire value is
// exactly 0 or 1; anything else is a schema violation rather than a
// value to coerce.
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "0":
		*b = false
	case "1":
		*b = true
	default:
		return fmt.Errorf("boolean field must be 0 or 1, got %s", data)
	}
	return nil
}

func (b Bool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Location identifies the place a report describes. Localtime is
// carried both as epoch seconds and as the API's formatted string;
// both denote the same instant in the location's timezone.
type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

func (l *Location) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "location"); err != nil {
		return err
	}
	type alias Location
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = Location(a)
	return nil
}

// Condition is the API's weather classification. Code is an opaque
// member of the service's own enumeration and is not re-validated.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "condition"); err != nil {
		return err
	}
	type alias Condition
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Condition(a)
	return nil
}

// CurrentConditions is the observation for the current moment. Every
// measurement arrives in both metric and imperial form; values are
// relayed as delivered, never converted locally.
type CurrentConditions struct {
	LastUpdatedEpoch int64     `json:"last_updated_epoch"`
	LastUpdated      string    `json:"last_updated"`
	TempC            float64   `json:"temp_c"`
	TempF            float64   `json:"temp_f"`
	IsDay            Bool      `json:"is_day"`
	Condition        Condition `json:"condition"`
	WindMph          float64   `json:"wind_mph"`
	WindKph          float64   `json:"wind_kph"`
	WindDegree       float64   `json:"wind_degree"`
	WindDir          string    `json:"wind_dir"`
	PressureMb       float64   `json:"pressure_mb"`
	PressureIn       float64   `json:"pressure_in"`
	PrecipMm         float64   `json:"precip_mm"`
	PrecipIn         float64   `json:"precip_in"`
	Humidity         float64   `json:"humidity"`
	Cloud            float64   `json:"cloud"`
	FeelslikeC       float64   `json:"feelslike_c"`
	FeelslikeF       float64   `json:"feelslike_f"`
	VisKm            float64   `json:"vis_km"`
	VisMiles         float64   `json:"vis_miles"`
	UV               float64   `json:"uv"`
	GustMph          float64   `json:"gust_mph"`
	GustKph          float64   `json:"gust_kph"`
}

func (c *CurrentConditions) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "current"); err != nil {
		return err
	}
	type alias CurrentConditions
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CurrentConditions(a)
	return nil
}

// HourlyConditions is one hour of a forecast day. It carries the same
// observation fields as CurrentConditions keyed by forecast time, plus
// derived comfort figures and precipitation likelihood, all
// precomputed by the service.
type HourlyConditions struct {
	TimeEpoch    int64     `json:"time_epoch"`
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	TempF        float64   `json:"temp_f"`
	IsDay        Bool      `json:"is_day"`
	Condition    Condition `json:"condition"`
	WindMph      float64   `json:"wind_mph"`
	WindKph      float64   `json:"wind_kph"`
	WindDegree   float64   `json:"wind_degree"`
	WindDir      string    `json:"wind_dir"`
	PressureMb   float64   `json:"pressure_mb"`
	PressureIn   float64   `json:"pressure_in"`
	PrecipMm     float64   `json:"precip_mm"`
	PrecipIn     float64   `json:"precip_in"`
	Humidity     float64   `json:"humidity"`
	Cloud        float64   `json:"cloud"`
	FeelslikeC   float64   `json:"feelslike_c"`
	FeelslikeF   float64   `json:"feelslike_f"`
	WindchillC   float64   `json:"windchill_c"`
	WindchillF   float64   `json:"windchill_f"`
	HeatindexC   float64   `json:"heatindex_c"`
	HeatindexF   float64   `json:"heatindex_f"`
	DewpointC    float64   `json:"dewpoint_c"`
	DewpointF    float64   `json:"dewpoint_f"`
	WillItRain   Bool      `json:"will_it_rain"`
	ChanceOfRain float64   `json:"chance_of_rain"`
	WillItSnow   Bool      `json:"will_it_snow"`
	ChanceOfSnow float64   `json:"chance_of_snow"`
	VisKm        float64   `json:"vis_km"`
	VisMiles     float64   `json:"vis_miles"`
	GustMph      float64   `json:"gust_mph"`
	GustKph      float64   `json:"gust_kph"`
	UV           float64   `json:"uv"`
}

func (h *HourlyConditions) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "hour"); err != nil {
		return err
	}
	type alias HourlyConditions
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*h = HourlyConditions(a)
	return nil
}

// DailySummary aggregates a whole forecast day. There is no day/night
// flag here; it does not apply to a full day.
type DailySummary struct {
	MaxTempC      float64   `json:"maxtemp_c"`
	MaxTempF      float64   `json:"maxtemp_f"`
	MinTempC      float64   `json:"mintemp_c"`
	MinTempF      float64   `json:"mintemp_f"`
	AvgTempC      float64   `json:"avgtemp_c"`
	AvgTempF      float64   `json:"avgtemp_f"`
	MaxWindMph    float64   `json:"maxwind_mph"`
	MaxWindKph    float64   `json:"maxwind_kph"`
	TotalPrecipMm float64   `json:"totalprecip_mm"`
	TotalPrecipIn float64   `json:"totalprecip_in"`
	TotalSnowCm   float64   `json:"totalsnow_cm"`
	AvgVisKm      float64   `json:"avgvis_km"`
	AvgVisMiles   float64   `json:"avgvis_miles"`
	AvgHumidity   float64   `json:"avghumidity"`
	Condition     Condition `json:"condition"`
	UV            float64   `json:"uv"`
}

func (d *DailySummary) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "day"); err != nil {
		return err
	}
	type alias DailySummary
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = DailySummary(a)
	return nil
}

// AstronomicalData carries sunrise/sunset and moon figures as the
// API formats them. MoonIllumination is the service's own string
// rendering of a percentage, relayed untouched.
type AstronomicalData struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

func (a *AstronomicalData) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "astro"); err != nil {
		return err
	}
	type alias AstronomicalData
	var aa alias
	if err := json.Unmarshal(data, &aa); err != nil {
		return err
	}
	*a = AstronomicalData(aa)
	return nil
}

// ForecastDay is one calendar day of a forecast: the daily aggregate,
// astronomy, and hourly entries in the order the service delivered
// them. An absent hourly array decodes to an empty slice.
type ForecastDay struct {
	Date      string             `json:"date"`
	DateEpoch int64              `json:"date_epoch"`
	Day       DailySummary       `json:"day"`
	Astro     AstronomicalData   `json:"astro"`
	Hours     []HourlyConditions `json:"hour"`
}

func (f *ForecastDay) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "forecastday"); err != nil {
		return err
	}
	type alias ForecastDay
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Hours == nil {
		a.Hours = []HourlyConditions{}
	}
	*f = ForecastDay(a)
	return nil
}

// Forecast is the wire grouping around the per-day entries.
type Forecast struct {
	Days []ForecastDay `json:"forecastday"`
}

func (f *Forecast) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "forecast"); err != nil {
		return err
	}
	type alias Forecast
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*f = Forecast(a)
	return nil
}

// CurrentWeatherResult is the full payload of the current-conditions
// operation.
type CurrentWeatherResult struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}

func (r *CurrentWeatherResult) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "response.current"); err != nil {
		return err
	}
	type alias CurrentWeatherResult
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = CurrentWeatherResult(a)
	return nil
}

// ForecastResult is the full payload of the forecast operation: the
// location, conditions for the current moment, and one ForecastDay per
// requested day starting from today, in payload order.
type ForecastResult struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast Forecast          `json:"forecast"`
}

func (r *ForecastResult) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, "response.forecast"); err != nil {
		return err
	}
	type alias ForecastResult
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = ForecastResult(a)
	return nil
}
