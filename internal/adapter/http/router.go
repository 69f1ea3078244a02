package http

import (
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type Options struct {
	UserHeader string
	Log        *slog.Logger
}

// NewApp wires every route of the service.
func NewApp(h *Handler, opts Options) *fiber.App {
	if opts.UserHeader == "" {
		opts.UserHeader = "X-User-ID"
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
	app.Use(RequestLogger(opts.Log))

	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Get("/templates", h.Templates)
	api.Get("/geo/countries", h.Countries)
	api.Get("/geo/states", h.States)

	auth := Identity(opts.UserHeader)
	api.Get("/resume", auth, h.GetResume)
	api.Post("/resume", auth, h.PostResume)

	ed := api.Group("/editor", auth)
	ed.Get("/document", h.EditorDocument)
	ed.Post("/actions", h.Dispatch)
	ed.Post("/save", h.Save)
	ed.Post("/reset", h.Reset)
	ed.Get("/status", h.Status)

	app.Get("/builder", auth, h.Builder)
	app.Get("/preview", auth, h.Preview)
	app.Get("/export.pdf", auth, h.Export)

	return app
}
