package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// Options configures the engine built by New.
type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Metrics        *Metrics
	Gatherer       prometheus.Gatherer
	Health         Pinger
}

// APIInfo describes the API on GET /api/docs.
type APIInfo struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	BasePath    string `json:"basePath"`
}

var apiInfo = APIInfo{
	Title:       "M295 Backend",
	Version:     "1.0.0",
	Description: "Rest API für M294 Frontend mit CRUD-Operations",
	Contact:     "M294 Backend",
	BasePath:    "/api/characters",
}

// New assembles the gin engine with recovery, request ids, logging, CORS and
// the operational endpoints. Feature routes are registered on the result.
func New(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(logger))
	if opts.Metrics != nil {
		engine.Use(opts.Metrics.Middleware())
	}
	engine.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	engine.GET("/healthz", healthHandler(opts.Health))
	engine.GET("/api/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, apiInfo)
	})
	if opts.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return engine
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
}

func healthHandler(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
