package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v3"

	"github.com/KLM-Nandhu/Bent-s-Blogs/internal/middleware"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var views = template.Must(template.ParseFS(templatesFS, "templates/*.gohtml"))

// resultView carries the generated post into the result template. Body
// is the document HTML produced by the formatter, rendered unescaped.
type resultView struct {
	Title        string
	Body         template.HTML
	FromCache    bool
	NoTranscript bool
}

// errorView carries a user-facing failure message.
type errorView struct {
	Message string
}

// render executes a named template into the response with an HTML
// content type.
func render(c fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		middleware.Logger.Error().Str("template", name).Err(err).Msg("template execution failed")
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
