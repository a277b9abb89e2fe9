package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/config"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// ErrNotConfigured is returned when no upstream weather URL is set.
var ErrNotConfigured = errors.New("weather provider not configured")

// HTTPProvider fetches the weather snapshot from a configured upstream that
// already speaks the display's snapshot shape.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates a new HTTP weather provider
func NewHTTPProvider(cfg config.WeatherConfig) ports.WeatherProvider {
	return &HTTPProvider{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *HTTPProvider) Current(ctx context.Context) (entities.WeatherData, error) {
	if p.url == "" {
		return entities.WeatherData{}, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return entities.WeatherData{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return entities.WeatherData{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.WeatherData{}, fmt.Errorf("weather upstream returned %d", resp.StatusCode)
	}

	var snapshot entities.WeatherData
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return entities.WeatherData{}, fmt.Errorf("decode weather snapshot: %w", err)
	}

	if snapshot.Forecast == nil {
		snapshot.Forecast = []entities.ForecastDay{}
	}

	return snapshot, nil
}
