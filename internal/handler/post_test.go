package handler

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid input",
			err:        model.E(model.KindInvalidInput, "resolve", "empty input", nil),
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "not found",
			err:        model.E(model.KindNotFound, "youtube.video", "video not found", nil),
			wantStatus: fiber.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unavailable",
			err:        model.E(model.KindUnavailable, "worker.enqueue", "job queue is full", nil),
			wantStatus: fiber.StatusServiceUnavailable,
			wantCode:   "UPSTREAM_UNAVAILABLE",
		},
		{
			name:       "untagged error",
			err:        assert.AnError,
			wantStatus: fiber.StatusInternalServerError,
			wantCode:   "UPSTREAM_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, message := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, message)
		})
	}
}
