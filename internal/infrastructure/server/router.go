package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/handler"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/middleware"
)

const healthTimeout = 2 * time.Second

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

type Router struct {
	engine          *gin.Engine
	objectHandler   *handler.ObjectHandler
	transferHandler *handler.TransferHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
	healthChecks    map[string]HealthCheck
	logger          *zap.Logger
}

type RouterConfig struct {
	ObjectHandler   *handler.ObjectHandler
	TransferHandler *handler.TransferHandler
	AuthMiddleware  *middleware.AuthMiddleware
	// RateLimiter is optional.
	RateLimiter    *middleware.RateLimiter
	HealthChecks   map[string]HealthCheck
	AllowedOrigins []string
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:          engine,
		objectHandler:   cfg.ObjectHandler,
		transferHandler: cfg.TransferHandler,
		authMiddleware:  cfg.AuthMiddleware,
		rateLimiter:     cfg.RateLimiter,
		healthChecks:    cfg.HealthChecks,
		logger:          cfg.Logger,
	}

	r.setupMiddleware(cfg.AllowedOrigins)
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware(allowedOrigins []string) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(allowedOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	api.Use(r.authMiddleware.RequireAuth())
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}

	objects := api.Group("/objects")
	{
		objects.POST("", r.objectHandler.Create)
		objects.GET("", r.objectHandler.List)
		objects.GET("/:id", r.objectHandler.Get)
		objects.GET("/:id/bounds", r.objectHandler.GetBounds)
		objects.PUT("/:id", r.objectHandler.Update)
		objects.DELETE("/:id", r.objectHandler.Delete)
		objects.GET("/:id/versions", r.objectHandler.ListVersions)
		objects.GET("/:id/versions/:number", r.objectHandler.GetVersion)
	}

	exports := api.Group("/exports")
	{
		exports.GET("/objects.csv", r.transferHandler.Download)
		exports.POST("", r.transferHandler.Export)
	}

	api.POST("/imports", r.transferHandler.Import)
}

func (r *Router) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(r.healthChecks))
	for name, check := range r.healthChecks {
		if err := check(ctx); err != nil {
			r.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": checks})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
