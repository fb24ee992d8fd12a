package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const apiPrefix = "/api/v1"

var unmeteredPaths = []string{"/health", "/metrics", "/openapi.yaml"}

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// maxBodySize bounds request bodies before the validator buffers them.
const maxBodySize = "1M"

// RouterConfig carries everything NewRouter wires together. Metrics, Gatherer and
// Health are optional.
type RouterConfig struct {
	Server   *Server
	Metrics  *Metrics
	Gatherer prometheus.Gatherer
	Health   Pinger
	Logger   *slog.Logger
}

// NewRouter builds the echo instance with middleware, API routes and the
// operational endpoints.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware(unmeteredPaths...))
	}
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(validator)

	e.GET("/health", health(cfg.Health))
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", OpenAPIDocument())
	})
	e.GET("/docs/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	registerRoutes(e.Group(apiPrefix), cfg.Server)
	return e, nil
}

func registerRoutes(g *echo.Group, s *Server) {
	g.GET("/statuses", s.ListStatuses)
	g.POST("/statuses", s.CreateStatus)
	g.GET("/statuses/:id", s.GetStatus)
	g.PATCH("/statuses/:id", s.UpdateStatus)
	g.DELETE("/statuses/:id", s.DeleteStatus)

	g.GET("/transitions", s.ListTransitions)
	g.POST("/transitions", s.CreateTransition)
	g.DELETE("/transitions/:id", s.DeleteTransition)

	g.POST("/orders", s.CreateOrder)
	g.POST("/orders/:id/status", s.ChangeOrderStatus)
	g.GET("/orders/:id/history", s.GetOrderHistory)

	g.GET("/analytics", s.GetAnalytics)
}

func health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			} else if v.Status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "HTTP request", attrs...)
			return nil
		},
	})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.InfoContext(shutdownCtx, "HTTP server shutting down")
	return e.Shutdown(shutdownCtx)
}
