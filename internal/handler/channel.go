package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/service"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/youtube"
)

type ChannelHandler struct {
	worker *service.ChannelWorker
}

func NewChannelHandler(worker *service.ChannelWorker) *ChannelHandler {
	return &ChannelHandler{worker: worker}
}

// EnqueueJob handles POST /api/channels/:channelId/jobs.
func (h *ChannelHandler) EnqueueJob(c fiber.Ctx) error {
	resolved, err := youtube.ResolveChannelID(c.Params("channelId"))
	if err != nil {
		return jsonError(c, err)
	}
	channelID, msg := middleware.ValidateChannelID(resolved)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_ID", msg)
	}

	job, err := h.worker.Enqueue(channelID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// ListJobs handles GET /api/channels/:channelId/jobs.
func (h *ChannelHandler) ListJobs(c fiber.Ctx) error {
	channelID, msg := middleware.ValidateChannelID(c.Params("channelId"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_ID", msg)
	}

	jobs := h.worker.JobsForChannel(channelID)
	if jobs == nil {
		jobs = []model.ChannelJob{}
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles GET /api/jobs/:jobId.
func (h *ChannelHandler) GetJob(c fiber.Ctx) error {
	job := h.worker.Job(c.Params("jobId"))
	if job == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "unknown job ID")
	}
	return c.JSON(job)
}
