package weatherapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Doer executes a single HTTP request. *http.Client satisfies it;
// transport decorators and tests substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// API is the operation surface of the weather service. Callers depend
// on this interface so tests can swap in canned implementations
// without touching caller code.
type API interface {
	FetchCurrent(ctx context.Context, query string) (*CurrentWeatherResult, error)
	FetchForecast(ctx context.Context, query string, days int) (*ForecastResult, error)
}

// Client is the live implementation of API. It is stateless apart
// from its configuration and safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	doer    Doer
}

var _ API = (*Client)(nil)

// NewClient builds a client for the given API key. A nil doer falls
// back to an http.Client with a 10 second timeout.
func NewClient(apiKey string, doer Doer) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		doer:    doer,
	}
}

// FetchCurrent requests current conditions for the given location
// query. The query is opaque to the client: city names, "lat,lon"
// pairs, postal codes, "metar:"/"iata:" codes, "auto:ip" and bare IP
// addresses are all passed through unvalidated.
func (c *Client) FetchCurrent(ctx context.Context, query string) (*CurrentWeatherResult, error) {
	const op = "current"

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)

	status, body, err := c.get(ctx, op, "/current.json", params)
	if err != nil {
		return nil, err
	}
	return decodeCurrent(op, status, body)
}

// FetchForecast requests a forecast for the given location query. The
// service accepts 1 to 10 days; out-of-range values are passed through
// and governed by the service's own response.
func (c *Client) FetchForecast(ctx context.Context, query string, days int) (*ForecastResult, error) {
	const op = "forecast"

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	params.Set("days", strconv.Itoa(days))

	status, body, err := c.get(ctx, op, "/forecast.json", params)
	if err != nil {
		return nil, err
	}
	return decodeForecast(op, status, body)
}

// get performs one GET round trip and returns the raw status and body.
// URL construction failures surface as *RequestError before any
// network I/O.
func (c *Client) get(ctx context.Context, op, path string, params url.Values) (int, []byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, &RequestError{Op: op, Err: err}
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("execute %s request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response: %w", op, err)
	}

	return resp.StatusCode, body, nil
}
