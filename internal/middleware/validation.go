package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Identifier length limits. YouTube video IDs are 11 characters and
// channel IDs 24, but malformed inputs are allowed through (they surface
// as downstream fetch failures) as long as they stay within these caps.
const (
	MaxVideoIDLen   = 16
	MaxChannelIDLen = 32
)

var (
	// idRe matches YouTube identifiers: alphanumeric, dash, underscore.
	idRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video ID is well-formed. Returns the
// trimmed ID, or an empty ID with a message describing the problem.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !idRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a channel ID is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 32 characters"
	}
	if !idRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}
