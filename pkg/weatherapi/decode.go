package weatherapi

import (
	"encoding/json"
	"fmt"
)

// requiredKeys is the decode schema: for each wire object, the fields
// that must be present for a payload to be considered well formed.
// Optional arrays are deliberately absent — a forecast day without an
// "hour" list decodes to an empty sequence, not an error.
var requiredKeys = map[string][]string{
	"response.current":  {"location", "current"},
	"response.forecast": {"location", "current", "forecast"},
	"forecast":          {"forecastday"},
	"location": {
		"name", "region", "country", "lat", "lon",
		"tz_id", "localtime_epoch", "localtime",
	},
	"condition": {"text", "icon", "code"},
	"current": {
		"last_updated_epoch", "last_updated", "temp_c", "temp_f",
		"is_day", "condition", "wind_mph", "wind_kph", "wind_degree",
		"wind_dir", "pressure_mb", "pressure_in", "precip_mm",
		"precip_in", "humidity", "cloud", "feelslike_c", "feelslike_f",
		"vis_km", "vis_miles", "uv", "gust_mph", "gust_kph",
	},
	"hour": {
		"time_epoch", "time", "temp_c", "temp_f", "is_day",
		"condition", "wind_mph", "wind_kph", "wind_degree", "wind_dir",
		"pressure_mb", "pressure_in", "precip_mm", "precip_in",
		"humidity", "cloud", "feelslike_c", "feelslike_f",
		"windchill_c", "windchill_f", "heatindex_c", "heatindex_f",
		"dewpoint_c", "dewpoint_f", "will_it_rain", "chance_of_rain",
		"will_it_snow", "chance_of_snow", "vis_km", "vis_miles",
		"gust_mph", "gust_kph", "uv",
	},
	"day": {
		"maxtemp_c", "maxtemp_f", "mintemp_c", "mintemp_f",
		"avgtemp_c", "avgtemp_f", "maxwind_mph", "maxwind_kph",
		"totalprecip_mm", "totalprecip_in", "totalsnow_cm",
		"avgvis_km", "avgvis_miles", "avghumidity", "condition", "uv",
	},
	"astro": {
		"sunrise", "sunset", "moonrise", "moonset",
		"moon_phase", "moon_illumination",
	},
	"forecastday": {"date", "date_epoch", "day", "astro"},
}

// checkRequired verifies that data is a JSON object carrying every
// field the schema lists for the named wire object.
func checkRequired(data []byte, object string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range requiredKeys[object] {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("%s: missing required field %q", object, key)
		}
	}
	return nil
}

// checkStatus rejects any response outside the 2xx range before the
// body is looked at.
func checkStatus(op string, status int) error {
	if status < 200 || status > 299 {
		return &StatusError{Op: op, StatusCode: status}
	}
	return nil
}

func decodeCurrent(op string, status int, body []byte) (*CurrentWeatherResult, error) {
	if err := checkStatus(op, status); err != nil {
		return nil, err
	}
	var result CurrentWeatherResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return &result, nil
}

func decodeForecast(op string, status int, body []byte) (*ForecastResult, error) {
	if err := checkStatus(op, status); err != nil {
		return nil, err
	}
	var result ForecastResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return &result, nil
}
