package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/handler"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Post    *handler.PostHandler
	Channel *handler.ChannelHandler
	Stats   *handler.StatsHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	generateLimit := middleware.NewGenerateRateLimiter().Handler()
	lookupLimit := middleware.NewLookupRateLimiter().Handler()
	statsLimit := middleware.NewStatsRateLimiter().Handler()

	// Probes and metrics (no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// Browser routes
	app.Get("/", h.Post.Index)
	app.Post("/process", h.Post.ProcessForm, generateLimit)

	// API routes
	api := app.Group("/api")

	// Post routes
	api.Post("/generate", h.Post.Generate, generateLimit)
	api.Get("/posts", h.Post.ListPosts, lookupLimit)
	api.Get("/posts/:videoId", h.Post.GetPost, lookupLimit)

	// Channel job routes
	api.Post("/channels/:channelId/jobs", h.Channel.EnqueueJob, generateLimit)
	api.Get("/channels/:channelId/jobs", h.Channel.ListJobs, lookupLimit)
	api.Get("/jobs/:jobId", h.Channel.GetJob, lookupLimit)

	// Stats routes
	api.Get("/stats", h.Stats.GetStats, statsLimit)
}
