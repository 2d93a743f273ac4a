package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"weathergate/pkg/weatherapi"
)

// Observation is the most recent current-conditions result for one
// configured location, recorded by the scheduled refresh.
type Observation struct {
	Query     string                           `json:"query"`
	Result    *weatherapi.CurrentWeatherResult `json:"result"`
	FetchedAt time.Time                        `json:"fetched_at"`
}

// Stats summarises refresh activity for the health endpoint.
type Stats struct {
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	LastRefresh  time.Time `json:"last_refresh"`
}

// Weather fronts the weather API for handlers and the scheduler. The
// handlers fetch live; the scheduler keeps a snapshot of the latest
// observation per configured location.
type Weather struct {
	api    weatherapi.API
	logger *zap.Logger

	mu           sync.RWMutex
	observations map[string]Observation
	stats        Stats
}

func NewWeather(api weatherapi.API, logger *zap.Logger) *Weather {
	return &Weather{
		api:          api,
		logger:       logger,
		observations: make(map[string]Observation),
	}
}

// Current fetches current conditions for the given location query.
func (s *Weather) Current(ctx context.Context, query string) (*weatherapi.CurrentWeatherResult, error) {
	result, err := s.api.FetchCurrent(ctx, query)
	if err != nil {
		s.logger.Warn("Current conditions fetch failed",
			zap.String("query", query),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Current conditions fetched",
		zap.String("query", query),
		zap.String("location", result.Location.Name),
		zap.Float64("temp_c", result.Current.TempC))

	return result, nil
}

// Forecast fetches a multi-day forecast for the given location query.
// The day count is relayed as-is; the upstream service enforces its
// own 1-10 range.
func (s *Weather) Forecast(ctx context.Context, query string, days int) (*weatherapi.ForecastResult, error) {
	result, err := s.api.FetchForecast(ctx, query, days)
	if err != nil {
		s.logger.Warn("Forecast fetch failed",
			zap.String("query", query),
			zap.Int("days", days),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Forecast fetched",
		zap.String("query", query),
		zap.Int("days", len(result.Forecast.Days)))

	return result, nil
}

// Refresh fetches current conditions for every configured location
// concurrently and records the latest observation per location. A
// partial failure is reported after all locations have been attempted.
func (s *Weather) Refresh(ctx context.Context, queries []string) error {
	start := time.Now()

	var wg sync.WaitGroup
	errs := make(chan error, len(queries))

	for _, query := range queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()

			result, err := s.api.FetchCurrent(ctx, query)

			s.mu.Lock()
			defer s.mu.Unlock()

			if err != nil {
				s.stats.FailureCount++
				s.logger.Error("Refresh failed for location",
					zap.String("query", query),
					zap.Error(err))
				errs <- fmt.Errorf("refresh %q: %w", query, err)
				return
			}

			s.stats.SuccessCount++
			s.observations[query] = Observation{
				Query:     query,
				Result:    result,
				FetchedAt: time.Now(),
			}
		}(query)
	}

	wg.Wait()
	close(errs)

	s.mu.Lock()
	s.stats.LastRefresh = start
	s.mu.Unlock()

	s.logger.Info("Refresh completed",
		zap.Int("locations", len(queries)),
		zap.Duration("duration", time.Since(start)))

	for err := range errs {
		return fmt.Errorf("refresh incomplete: %w", err)
	}
	return nil
}

// Observations returns the latest snapshot ordered by location query.
func (s *Weather) Observations() []Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	observations := make([]Observation, 0, len(s.observations))
	for _, obs := range s.observations {
		observations = append(observations, obs)
	}
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].Query < observations[j].Query
	})
	return observations
}

func (s *Weather) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
