// Package server exposes the submit-query contract over HTTP as a JSON API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/logging"
	"github.com/hupe1980/screenmesh/orchestrator"
)

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// Server provides HTTP endpoints for the screening pipeline.
type Server struct {
	echo   *echo.Echo
	engine *orchestrator.Orchestrator
	logger logging.Logger
	config *Config
}

// NewServer creates a new HTTP server around the given engine.
func NewServer(engine *orchestrator.Orchestrator, logger logging.Logger, cfg *Config) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	if cfg == nil {
		cfg = &Config{Host: "localhost", Port: 8080}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})

	s := &Server{echo: e, engine: engine, logger: logger, config: cfg}
	s.registerRoutes()
	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/queries", s.handleSubmitQuery)
	v1.GET("/sessions/:id", s.handleGetSession)
	v1.GET("/sessions/:id/reports", s.handleListReports)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleSubmitQuery runs one query through the pipeline. Malformed bodies and
// unknown intents are client errors; pipeline failures come back as a normal
// RunResult with status errored.
func (s *Server) handleSubmitQuery(c echo.Context) error {
	var query core.Query
	if err := c.Bind(&query); err != nil {
		s.logger.Warn("invalid query request", "error", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	query = query.Normalized()
	if !query.Intent.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown intent %q", query.Intent))
	}

	result, err := s.engine.Submit(c.Request().Context(), query)
	if err != nil {
		// Submit only errors on caller cancellation.
		return echo.NewHTTPError(http.StatusRequestTimeout, "query cancelled")
	}
	return c.JSON(http.StatusOK, result)
}

// handleGetSession returns the session context snapshot.
func (s *Server) handleGetSession(c echo.Context) error {
	sc, err := s.engine.MemoryStore().Load(c.Param("id"))
	if err != nil {
		s.logger.Error("session load failed", "session_id", c.Param("id"), "error", err.Error())
		return echo.NewHTTPError(http.StatusServiceUnavailable, "session storage unavailable")
	}
	return c.JSON(http.StatusOK, sc)
}

// handleListReports returns the session's archived run reports.
func (s *Server) handleListReports(c echo.Context) error {
	reports, err := s.engine.Archive().List(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "report archive unavailable")
	}
	return c.JSON(http.StatusOK, reports)
}

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("http server starting", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying http.Handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }
