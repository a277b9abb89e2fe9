package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/l-sayginsoy/drk-display/internal/application/services"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
)

// DisplayHandler answers the read-only kiosk queries
type DisplayHandler struct {
	display *services.DisplayService
	weather *services.WeatherService
	logger  *logger.Logger
}

// NewDisplayHandler creates a new display handler
func NewDisplayHandler(display *services.DisplayService, weather *services.WeatherService, logger *logger.Logger) *DisplayHandler {
	return &DisplayHandler{
		display: display,
		weather: weather,
		logger:  logger,
	}
}

// GetContent returns the full content document snapshot
func (h *DisplayHandler) GetContent(c echo.Context) error {
	return c.JSON(http.StatusOK, h.display.Content())
}

// GetFocus returns the currently selected focus content
func (h *DisplayHandler) GetFocus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.display.Focus(time.Now()))
}

// GetToday returns the resolved schedule for the current day
func (h *DisplayHandler) GetToday(c echo.Context) error {
	return c.JSON(http.StatusOK, h.display.Today(time.Now()))
}

// GetWeek returns the resolved schedule for the current calendar week
func (h *DisplayHandler) GetWeek(c echo.Context) error {
	return c.JSON(http.StatusOK, h.display.Week(time.Now()))
}

// GetQuote returns the quote of the day
func (h *DisplayHandler) GetQuote(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"quote": h.display.Quote(time.Now())})
}

// GetWeather returns the current weather snapshot
func (h *DisplayHandler) GetWeather(c echo.Context) error {
	return c.JSON(http.StatusOK, h.weather.Current(c.Request().Context()))
}
