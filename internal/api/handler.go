package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"weathergate/internal/service"
	"weathergate/pkg/weatherapi"
)

type Handler struct {
	weather *service.Weather
	logger  *zap.Logger
}

func NewHandler(weather *service.Weather, logger *zap.Logger) *Handler {
	return &Handler{
		weather: weather,
		logger:  logger,
	}
}

// GetCurrentWeather handles GET /api/v1/weather/current
func (h *Handler) GetCurrentWeather(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter q is required",
		})
	}

	h.logger.Info("Fetching current weather", zap.String("query", query))

	result, err := h.weather.Current(c.Context(), query)
	if err != nil {
		return h.weatherError(c, err)
	}

	return c.JSON(result)
}

// GetForecast handles GET /api/v1/weather/forecast
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter q is required",
		})
	}

	// The upstream service accepts 1-10 days and enforces its own
	// range; the count is relayed without clamping.
	days := c.QueryInt("days", 3)

	h.logger.Info("Fetching forecast",
		zap.String("query", query),
		zap.Int("days", days))

	result, err := h.weather.Forecast(c.Context(), query, days)
	if err != nil {
		return h.weatherError(c, err)
	}

	return c.JSON(result)
}

// GetObservations handles GET /api/v1/observations
func (h *Handler) GetObservations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"observations": h.weather.Observations(),
	})
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"stats":     h.weather.Stats(),
	})
}

// weatherError maps the client's error taxonomy onto HTTP statuses: a
// malformed request is the caller's fault, upstream status and schema
// failures are gateway problems.
func (h *Handler) weatherError(c *fiber.Ctx, err error) error {
	var reqErr *weatherapi.RequestError
	if errors.As(err, &reqErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Malformed request",
			"details": err.Error(),
		})
	}

	var statusErr *weatherapi.StatusError
	if errors.As(err, &statusErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":           "Weather service returned an unexpected response",
			"upstream_status": statusErr.StatusCode,
		})
	}

	var decodeErr *weatherapi.DecodeError
	if errors.As(err, &decodeErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Weather service response could not be decoded",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Failed to fetch weather data",
		"details": err.Error(),
	})
}

var startTime = time.Now()
