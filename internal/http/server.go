package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dradle/my-bike-rent/internal/config"
	"github.com/dradle/my-bike-rent/internal/http/middleware"
)

type Server struct {
	e   *echo.Echo
	log *zap.Logger
}

// Options carry the collaborators; Redis and Metrics may be nil.
type Options struct {
	Config     config.Config
	Lookup     Looker
	Redis      redis.Cmdable
	Metrics    prometheus.Gatherer
	Log        *zap.Logger
	DemoClient string
}

func NewServer(opts Options) *Server {
	lg := opts.Log
	if lg == nil {
		lg = zap.NewNop()
	}
	if opts.DemoClient == "" {
		opts.DemoClient = "Nazar"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Renderer = newRenderer()
	e.Use(echoMid.Recover(), requestLogger(lg))

	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{})))
	}

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rlMW := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Redis:          opts.Redis,
		Requests:       opts.Config.RateLimit.Requests,
		KeyPrefix:      "rl:ip:",
		Window:         opts.Config.RateLimit.Window,
		RetryAfterHint: true,
		Log:            lg,
	})

	// routes
	e.GET("/", dashboardHandler(opts.Lookup, opts.DemoClient), rlMW)
	v1 := e.Group("/v1", rlMW)
	v1.GET("/customers/:name", getCustomerHandler(opts.Lookup))

	return &Server{e: e, log: lg}
}

func requestLogger(lg *zap.Logger) echo.MiddlewareFunc {
	return echoMid.RequestLoggerWithConfig(echoMid.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMid.RequestLoggerValues) error {
			lg.Debug("http request",
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		},
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.e }

func (s *Server) Start(addr string) error {
	s.log.Info("http: listening", zap.String("addr", addr))
	return s.e.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	return s.e.Shutdown(ctx)
}
