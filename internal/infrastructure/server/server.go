package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/l-sayginsoy/drk-display/docs"
	httpHandlers "github.com/l-sayginsoy/drk-display/internal/adapters/http"
	"github.com/l-sayginsoy/drk-display/internal/application/services"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/config"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/database"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	logger  *logger.Logger
	db      *database.DB // nil for the file storage driver
	content *services.ContentService
	hub     *Hub

	hubCancel context.CancelFunc
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance and hydrates the content document.
func New(cfg *config.Config, repo ports.ContentRepository, weatherProvider ports.WeatherProvider, db *database.DB, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Initialize services
	contentService := services.NewContentService(repo, appLogger)
	contentService.Load(context.Background())
	adminService := services.NewAdminService(contentService, appLogger)
	displayService := services.NewDisplayService(contentService, appLogger)
	weatherService := services.NewWeatherService(weatherProvider, cfg.Weather.CacheTTL, appLogger)

	// Initialize handlers
	displayHandler := httpHandlers.NewDisplayHandler(displayService, weatherService, appLogger)
	adminHandler := httpHandlers.NewAdminHandler(adminService, appLogger)
	pagesHandler := httpHandlers.NewPagesHandler()

	// Kiosk push hub, fed by every content mutation
	hub := NewHub(displayService, appLogger)
	contentService.Subscribe(hub.NotifyContent)

	server := &Server{
		echo:    e,
		config:  cfg,
		logger:  appLogger,
		db:      db,
		content: contentService,
		hub:     hub,
	}

	server.setupMiddleware()
	server.setupRoutes(displayHandler, adminHandler, pagesHandler)

	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		// The kiosk embeds data URIs and connects back over websocket.
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data:; connect-src 'self' ws: wss:",
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Request timeout. The websocket stream is long-lived and must not be
	// wrapped by the timeout handler.
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api/v1/display/stream")
		},
		Timeout: s.config.Server.WriteTimeout,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(displayHandler *httpHandlers.DisplayHandler, adminHandler *httpHandlers.AdminHandler, pagesHandler *httpHandlers.PagesHandler) {
	// Client routes
	s.echo.GET("/", pagesHandler.Landing)
	s.echo.GET("/display", pagesHandler.Display)
	s.echo.GET("/admin", pagesHandler.Admin)
	s.echo.Static("/assets", "assets")

	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Display routes (read-only)
	displayGroup := v1.Group("/display")
	displayGroup.GET("/content", displayHandler.GetContent)
	displayGroup.GET("/focus", displayHandler.GetFocus)
	displayGroup.GET("/schedule/today", displayHandler.GetToday)
	displayGroup.GET("/schedule/week", displayHandler.GetWeek)
	displayGroup.GET("/quote", displayHandler.GetQuote)
	displayGroup.GET("/weather", displayHandler.GetWeather)
	displayGroup.GET("/stream", s.hub.Handle)

	// Admin routes (mutations)
	adminGroup := v1.Group("/admin")
	adminGroup.PUT("/urgent-message", adminHandler.UpdateUrgentMessage)
	adminGroup.POST("/urgent-message/image", adminHandler.UploadUrgentMessageImage)
	adminGroup.PUT("/slideshow", adminHandler.UpdateSlideshow)
	adminGroup.POST("/slideshow/images", adminHandler.AddSlide)
	adminGroup.DELETE("/slideshow/images/:id", adminHandler.DeleteSlide)
	adminGroup.PUT("/schedule/:week/:day", adminHandler.UpsertEvent)
	adminGroup.DELETE("/schedule/:week/:day", adminHandler.DeleteEvent)
	adminGroup.PUT("/quotes", adminHandler.SetQuotes)
	adminGroup.PUT("/locations", adminHandler.SetLocations)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	checks["storage"] = map[string]interface{}{
		"status": "ok",
		"driver": s.config.Storage.Driver,
	}

	if s.db != nil {
		if err := s.db.HealthCheck(); err != nil {
			status = "error"
			checks["database"] = map[string]interface{}{
				"status": "error",
				"error":  err.Error(),
			}
		} else {
			checks["database"] = map[string]interface{}{
				"status": "ok",
				"stats":  s.db.GetConnectionInfo(),
			}
		}
	}

	response := map[string]interface{}{
		"status":  status,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"checks":  checks,
		"version": s.config.App.Version,
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "not_ready",
				"reason": "database_not_ready",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server and the kiosk push hub
func (s *Server) Start(address string) error {
	ctx, cancel := context.WithCancel(context.Background())
	s.hubCancel = cancel
	go s.hub.Run(ctx)

	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	if s.hubCancel != nil {
		s.hubCancel()
	}
	return s.echo.Shutdown(ctx)
}

// customErrorHandler handles HTTP errors
func customErrorHandler(appLogger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			msg = he.Message
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else if ve, ok := err.(validator.ValidationErrors); ok {
			code = http.StatusBadRequest
			msg = map[string]string{"message": "validation failed", "details": ve.Error()}
		} else {
			msg = map[string]string{"message": http.StatusText(code)}
		}

		if code == http.StatusInternalServerError {
			appLogger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		if !c.Response().Committed {
			if c.Request().Method == echo.HEAD {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, msg)
			}
			if err != nil {
				appLogger.Errorw("Error sending response", "error", err)
			}
		}
	}
}
