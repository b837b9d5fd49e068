package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/repository"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/service"
)

type StatsHandler struct {
	repo    *repository.PostRepo
	cache   *service.CacheService
	started time.Time
}

func NewStatsHandler(repo *repository.PostRepo, cache *service.CacheService) *StatsHandler {
	return &StatsHandler{repo: repo, cache: cache, started: time.Now().UTC()}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats := fiber.Map{
		"uptimeSeconds":  int64(time.Since(h.started).Seconds()),
		"cacheEnabled":   h.cache.Client() != nil,
		"archiveEnabled": h.repo.Enabled(),
	}

	if h.repo.Enabled() {
		count, err := h.repo.Count(c.Context())
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
		}
		stats["archivedPosts"] = count
	}

	return c.JSON(stats)
}
