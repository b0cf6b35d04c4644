package router

import (
	_ "github.com/contentforge/backend/docs"
	"github.com/contentforge/backend/internal/infrastructure/logger"
	"github.com/contentforge/backend/internal/interfaces/http/handler"
	"github.com/contentforge/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler of the API
type Handlers struct {
	Content  *handler.ContentHandler
	Campaign *handler.CampaignHandler
	Usage    *handler.UsageHandler
	Health   *handler.HealthHandler
}

// Options configures the middleware chain
type Options struct {
	ServiceName    string
	TracingEnabled bool
	Meter          metric.Meter // nil disables HTTP metrics
	MaxBodySize    int64
	CORS           middleware.CORSConfig
	TrustedProxies []string
	// GenerateLimiter throttles POST /content/generate per owner; nil disables it
	GenerateLimiter *middleware.RateLimiter
	Swagger         middleware.SwaggerConfig
}

// New builds the gin engine: global middleware, /health, the guarded
// Swagger UI, and the authenticated /api/v1 routes.
func New(h Handlers, verifier middleware.Verifier, opts Options, log *zap.Logger) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	_ = engine.SetTrustedProxies(opts.TrustedProxies)

	engine.Use(
		middleware.RequestID(),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: opts.ServiceName,
			Enabled:     opts.TracingEnabled,
		}),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(opts.Meter, log),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(opts.CORS),
		middleware.BodyLimit(opts.MaxBodySize),
	)

	engine.GET("/health", h.Health.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(opts.Swagger, middleware.JWTAuthMiddleware(verifier)),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := NewRouter(engine, WithGroupMiddleware(
		middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			Verifier: verifier,
			Logger:   log,
		}),
		middleware.TracingAttributeInjector(),
	))

	generate := []gin.HandlerFunc{h.Content.Generate}
	if opts.GenerateLimiter != nil {
		generate = append([]gin.HandlerFunc{middleware.RateLimitByOwner(opts.GenerateLimiter)}, generate...)
	}

	r.Register(NewDomainGroup("content", "/content").
		POST("/materialize", h.Content.Materialize).
		POST("/materialize/resume", h.Content.Resume).
		POST("/generate", generate...))

	r.Register(NewDomainGroup("campaigns", "/campaigns").
		GET("", h.Campaign.List).
		GET("/stats", h.Campaign.Stats).
		GET("/search", h.Campaign.Search).
		PATCH("/:id/status", h.Campaign.UpdateStatus).
		DELETE("/:id", h.Campaign.Delete))

	r.Register(NewDomainGroup("usage", "/usage").
		GET("/quota", h.Usage.Quota).
		GET("/history", h.Usage.History))

	r.Setup()
	return engine
}
