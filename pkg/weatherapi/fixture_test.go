package weatherapi

import (
	"encoding/json"
	"fmt"
	"testing"
)

// The fixtures below are fully populated results whose marshalled form
// matches the service's wire shape, so tests can exercise the field
// mapping in both directions.

func makeLocation(name string) Location {
	return Location{
		Name:           name,
		Region:         "City of London, Greater London",
		Country:        "United Kingdom",
		Lat:            51.52,
		Lon:            -0.11,
		TzID:           "Europe/London",
		LocaltimeEpoch: 1756195200,
		Localtime:      "2025-08-26 09:00",
	}
}

func makeCondition() Condition {
	return Condition{
		Text: "Partly cloudy",
		Icon: "//cdn.weatherapi.com/weather/64x64/day/116.png",
		Code: 1003,
	}
}

func makeCurrentConditions() CurrentConditions {
	return CurrentConditions{
		LastUpdatedEpoch: 1756194300,
		LastUpdated:      "2025-08-26 08:45",
		TempC:            18.0,
		TempF:            64.4,
		IsDay:            true,
		Condition:        makeCondition(),
		WindMph:          8.1,
		WindKph:          13.0,
		WindDegree:       230,
		WindDir:          "SW",
		PressureMb:       1012.0,
		PressureIn:       29.88,
		PrecipMm:         0.1,
		PrecipIn:         0.0,
		Humidity:         68,
		Cloud:            50,
		FeelslikeC:       18.2,
		FeelslikeF:       64.8,
		VisKm:            10.0,
		VisMiles:         6.0,
		UV:               4.0,
		GustMph:          11.4,
		GustKph:          18.4,
	}
}

func makeHourlyConditions(epoch int64, hour int) HourlyConditions {
	return HourlyConditions{
		TimeEpoch:    epoch,
		Time:         fmt.Sprintf("2025-08-26 %02d:00", hour),
		TempC:        14.5,
		TempF:        58.1,
		IsDay:        Bool(hour >= 6 && hour < 20),
		Condition:    makeCondition(),
		WindMph:      6.9,
		WindKph:      11.2,
		WindDegree:   221,
		WindDir:      "SW",
		PressureMb:   1011.0,
		PressureIn:   29.85,
		PrecipMm:     0.0,
		PrecipIn:     0.0,
		Humidity:     74,
		Cloud:        35,
		FeelslikeC:   14.1,
		FeelslikeF:   57.4,
		WindchillC:   14.1,
		WindchillF:   57.4,
		HeatindexC:   14.5,
		HeatindexF:   58.1,
		DewpointC:    9.8,
		DewpointF:    49.6,
		WillItRain:   false,
		ChanceOfRain: 20,
		WillItSnow:   false,
		ChanceOfSnow: 0,
		VisKm:        10.0,
		VisMiles:     6.0,
		GustMph:      9.6,
		GustKph:      15.5,
		UV:           3.0,
	}
}

func makeDailySummary() DailySummary {
	return DailySummary{
		MaxTempC:      21.3,
		MaxTempF:      70.3,
		MinTempC:      12.7,
		MinTempF:      54.9,
		AvgTempC:      16.8,
		AvgTempF:      62.2,
		MaxWindMph:    12.3,
		MaxWindKph:    19.8,
		TotalPrecipMm: 1.4,
		TotalPrecipIn: 0.06,
		TotalSnowCm:   0.0,
		AvgVisKm:      9.7,
		AvgVisMiles:   6.0,
		AvgHumidity:   71,
		Condition:     makeCondition(),
		UV:            4.0,
	}
}

func makeAstro() AstronomicalData {
	return AstronomicalData{
		Sunrise:          "06:04 AM",
		Sunset:           "07:58 PM",
		Moonrise:         "09:12 AM",
		Moonset:          "09:47 PM",
		MoonPhase:        "Waxing Crescent",
		MoonIllumination: "11",
	}
}

// makeForecastDay returns a day offset from the fixture date with 24
// chronologically ordered hours.
func makeForecastDay(dayOffset int) ForecastDay {
	const dayEpoch = 1756166400 // 2025-08-26 00:00 UTC
	epoch := int64(dayEpoch + dayOffset*86400)

	hours := make([]HourlyConditions, 0, 24)
	for h := 0; h < 24; h++ {
		hours = append(hours, makeHourlyConditions(epoch+int64(h)*3600, h))
	}

	return ForecastDay{
		Date:      fmt.Sprintf("2025-08-%02d", 26+dayOffset),
		DateEpoch: epoch,
		Day:       makeDailySummary(),
		Astro:     makeAstro(),
		Hours:     hours,
	}
}

func makeCurrentWeatherResult() CurrentWeatherResult {
	return CurrentWeatherResult{
		Location: makeLocation("London"),
		Current:  makeCurrentConditions(),
	}
}

func makeForecastResult(days int) ForecastResult {
	result := ForecastResult{
		Location: makeLocation("London"),
		Current:  makeCurrentConditions(),
	}
	for i := 0; i < days; i++ {
		result.Forecast.Days = append(result.Forecast.Days, makeForecastDay(i))
	}
	return result
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

// deleteField removes one field from a nested object of a marshalled
// document, e.g. deleteField(t, doc, "current", "temp_c").
func deleteField(t *testing.T, doc []byte, object, field string) []byte {
	t.Helper()

	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(top[object], &inner); err != nil {
		t.Fatalf("unmarshal %q object: %v", object, err)
	}
	delete(inner, field)

	raw, err := json.Marshal(inner)
	if err != nil {
		t.Fatalf("re-marshal %q object: %v", object, err)
	}
	top[object] = raw

	out, err := json.Marshal(top)
	if err != nil {
		t.Fatalf("re-marshal document: %v", err)
	}
	return out
}

// setField replaces one field of a nested object with a raw JSON value.
func setField(t *testing.T, doc []byte, object, field, value string) []byte {
	t.Helper()

	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(top[object], &inner); err != nil {
		t.Fatalf("unmarshal %q object: %v", object, err)
	}
	inner[field] = json.RawMessage(value)

	raw, err := json.Marshal(inner)
	if err != nil {
		t.Fatalf("re-marshal %q object: %v", object, err)
	}
	top[object] = raw

	out, err := json.Marshal(top)
	if err != nil {
		t.Fatalf("re-marshal document: %v", err)
	}
	return out
}
