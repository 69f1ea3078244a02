package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	repo "github.com/capsloque-org/ResumeBuilder/internal/adapter/repository"
	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
	"github.com/capsloque-org/ResumeBuilder/internal/usecase"
)

type Handler struct {
	docs          *usecase.Documents
	sessions      *usecase.Registry
	renderer      usecase.Renderer
	exportTimeout time.Duration
	log           *slog.Logger
}

func NewHandler(docs *usecase.Documents, sessions *usecase.Registry, renderer usecase.Renderer, exportTimeout time.Duration, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	if exportTimeout <= 0 {
		exportTimeout = 60 * time.Second
	}
	return &Handler{docs: docs, sessions: sessions, renderer: renderer, exportTimeout: exportTimeout, log: log}
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(model.ErrorResponse{Error: msg})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetResume answers {data: document|null} for the current user.
func (h *Handler) GetResume(c *fiber.Ctx) error {
	user := userID(c)
	raw, err := h.docs.Load(c.UserContext(), user)
	if errors.Is(err, usecase.ErrNotFound) {
		return c.JSON(model.LoadResponse{Data: json.RawMessage("null")})
	}
	if err != nil {
		h.log.Error("loading resume failed", "user", user, "error", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to load resume")
	}
	return c.JSON(model.LoadResponse{Data: raw})
}

// PostResume upserts the current user's document.
func (h *Handler) PostResume(c *fiber.Ctx) error {
	user := userID(c)
	var req model.RawSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	doc, err := h.docs.SaveRaw(c.UserContext(), user, req)
	switch {
	case errors.Is(err, model.ErrInvalidDocument):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrStaleRevision):
		return errorJSON(c, fiber.StatusConflict, "stale revision")
	case err != nil:
		h.log.Error("saving resume failed", "user", user, "error", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to save resume")
	}
	return c.JSON(model.SaveResponse{Success: true, Data: &doc})
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(domain.Templates())
}

func (h *Handler) Countries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"countries": domain.Countries()})
}

func (h *Handler) States(c *fiber.Ctx) error {
	country := c.Query("country")
	states := domain.StatesFor(country)
	if states == nil {
		states = []string{}
	}
	return c.JSON(fiber.Map{"country": country, "states": states})
}

const userKey = "resume.user"

func userID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(userKey).(uuid.UUID)
	return id
}
