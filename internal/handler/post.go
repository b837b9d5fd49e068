package handler

import (
	"html/template"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/service"
	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/youtube"
)

type PostHandler struct {
	svc    *service.PostService
	worker *service.ChannelWorker
}

func NewPostHandler(svc *service.PostService, worker *service.ChannelWorker) *PostHandler {
	return &PostHandler{svc: svc, worker: worker}
}

// Index handles GET /: the submission form.
func (h *PostHandler) Index(c fiber.Ctx) error {
	return render(c, "index", nil)
}

// ProcessForm handles POST /process: the browser submission path. A
// video ID runs the pipeline inline and renders the post; a channel ID
// enqueues a background job. Bad input renders the error view without
// invoking the pipeline.
func (h *PostHandler) ProcessForm(c fiber.Ctx) error {
	videoInput := c.FormValue("video_id")
	channelInput := c.FormValue("channel_id")

	if channelInput != "" {
		resolved, err := youtube.ResolveChannelID(channelInput)
		if err != nil {
			return renderError(c, err)
		}
		channelID, msg := middleware.ValidateChannelID(resolved)
		if msg != "" {
			return renderMessage(c, fiber.StatusBadRequest, msg)
		}

		job, err := h.worker.Enqueue(channelID)
		if err != nil {
			return renderError(c, err)
		}
		return render(c, "job", job)
	}

	resolved, err := youtube.ResolveVideoID(videoInput)
	if err != nil {
		return renderError(c, err)
	}
	videoID, msg := middleware.ValidateVideoID(resolved)
	if msg != "" {
		return renderMessage(c, fiber.StatusBadRequest, msg)
	}

	result, err := h.generate(c, videoID)
	if err != nil {
		return renderError(c, err)
	}

	return render(c, "result", resultView{
		Title:        result.Title,
		Body:         template.HTML(result.HTML),
		FromCache:    result.FromCache,
		NoTranscript: result.NoTranscript,
	})
}

// Generate handles POST /api/generate: the JSON generation path.
func (h *PostHandler) Generate(c fiber.Ctx) error {
	var req struct {
		VideoID string `json:"videoId"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a videoId field")
	}

	resolved, err := youtube.ResolveVideoID(req.VideoID)
	if err != nil {
		return jsonError(c, err)
	}
	videoID, msg := middleware.ValidateVideoID(resolved)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VIDEO_ID", msg)
	}

	result, err := h.generate(c, videoID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

// generate runs the pipeline and records generation metrics.
func (h *PostHandler) generate(c fiber.Ctx, videoID string) (*model.BlogPost, error) {
	start := time.Now()
	result, err := h.svc.Generate(c.Context(), videoID)
	if err != nil {
		Metrics.PostsGenerated.WithLabelValues("error").Inc()
		return nil, err
	}

	if result.FromCache {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
		Metrics.PostsGenerated.WithLabelValues("ok").Inc()
		Metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	}
	return result, nil
}

// GetPost handles GET /api/posts/:videoId: cached/archived lookup, no
// generation.
func (h *PostHandler) GetPost(c fiber.Ctx) error {
	videoID, msg := middleware.ValidateVideoID(c.Params("videoId"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VIDEO_ID", msg)
	}

	result, err := h.svc.Lookup(c.Context(), videoID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(result)
}

// ListPosts handles GET /api/posts?limit=N: recent archive entries.
func (h *PostHandler) ListPosts(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit", 20)

	records, err := h.svc.Recent(c.Context(), limit)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{"posts": records})
}

// renderError maps a pipeline error onto the HTML error view.
func renderError(c fiber.Ctx, err error) error {
	status, _, message := classify(err)
	return renderMessage(c, status, message)
}

func renderMessage(c fiber.Ctx, status int, message string) error {
	c.Status(status)
	return render(c, "error", errorView{Message: message})
}

// jsonError maps a pipeline error onto the API error envelope.
func jsonError(c fiber.Ctx, err error) error {
	status, code, message := classify(err)
	return middleware.ErrorResponse(c, status, code, message)
}

// classify translates error kinds into HTTP status, error code and a
// user-facing message.
func classify(err error) (int, string, string) {
	switch model.KindOf(err) {
	case model.KindInvalidInput:
		return fiber.StatusBadRequest, "INVALID_INPUT", err.Error()
	case model.KindNotFound:
		return fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case model.KindUnavailable:
		return fiber.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "An upstream service is unavailable or over quota. Try again later."
	default:
		return fiber.StatusInternalServerError, "UPSTREAM_ERROR", "Generation failed. Try again later."
	}
}
