package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

const weatherCacheKey = "weather"

// WeatherService serves the current weather snapshot from the configured
// provider, cached for the configured TTL. Provider failures degrade to a
// neutral default snapshot, the display must always render.
type WeatherService struct {
	provider ports.WeatherProvider
	cache    *gocache.Cache
	logger   *logger.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider ports.WeatherProvider, ttl time.Duration, logger *logger.Logger) *WeatherService {
	return &WeatherService{
		provider: provider,
		cache:    gocache.New(ttl, 2*ttl),
		logger:   logger,
	}
}

// Current returns the weather snapshot for the display.
func (s *WeatherService) Current(ctx context.Context) entities.WeatherData {
	if cached, ok := s.cache.Get(weatherCacheKey); ok {
		return cached.(entities.WeatherData)
	}

	snapshot, err := s.provider.Current(ctx)
	if err != nil {
		s.logger.Warnw("Weather provider failed, serving default snapshot", "error", err)
		return defaultWeather()
	}

	s.cache.Set(weatherCacheKey, snapshot, gocache.DefaultExpiration)
	return snapshot
}

func defaultWeather() entities.WeatherData {
	return entities.WeatherData{
		Type:        entities.WeatherCloudy,
		Temperature: 18,
		Forecast:    []entities.ForecastDay{},
	}
}
