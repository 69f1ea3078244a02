package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
	"github.com/capsloque-org/ResumeBuilder/internal/usecase"
	"github.com/capsloque-org/ResumeBuilder/pkg/render"
)

type editorResponse struct {
	Document domain.Resume       `json:"document"`
	Status   usecase.Status      `json:"status"`
	Load     *usecase.LoadResult `json:"load,omitempty"`
	Changed  bool                `json:"changed"`
	Persist  string              `json:"persist,omitempty"`
}

func (h *Handler) session(c *fiber.Ctx) *usecase.Session {
	return h.sessions.Open(c.UserContext(), userID(c))
}

func (h *Handler) EditorDocument(c *fiber.Ctx) error {
	s := h.session(c)
	load := s.Load(c.UserContext())
	return c.JSON(editorResponse{Document: s.Document(), Status: s.Status(), Load: &load})
}

// Dispatch applies one JSON action to the user's session.
func (h *Handler) Dispatch(c *fiber.Ctx) error {
	a, err := editor.DecodeAction(c.Body())
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	s := h.session(c)
	ch, err := s.Dispatch(a)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(editorResponse{
		Document: s.Document(),
		Status:   s.Status(),
		Changed:  ch.Changed,
		Persist:  ch.Persist.String(),
	})
}

func (h *Handler) Save(c *fiber.Ctx) error {
	return c.JSON(h.session(c).Save(c.UserContext()))
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	s := h.session(c)
	if err := s.Reset(c.UserContext()); err != nil {
		h.log.Warn("reset could not reach every replica", "user", s.User(), "error", err)
	}
	return c.JSON(editorResponse{Document: s.Document(), Status: s.Status()})
}

func (h *Handler) Status(c *fiber.Ctx) error {
	s, err := h.sessions.Lookup(userID(c))
	if errors.Is(err, usecase.ErrNoSession) {
		return errorJSON(c, fiber.StatusNotFound, "no editing session")
	}
	return c.JSON(s.Status())
}

// Builder is the editor entry point. A template link parameter is applied
// after loading, without persisting it; unknown ids are ignored.
func (h *Handler) Builder(c *fiber.Ctx) error {
	s := h.session(c)
	if t := c.Query("template"); t != "" {
		if err := s.ApplyLinkTemplate(t); err != nil {
			h.log.Debug("ignoring template link", "template", t, "error", err)
		}
	}
	return h.sendPreview(c, s)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	return h.sendPreview(c, h.session(c))
}

func (h *Handler) sendPreview(c *fiber.Ctx, s *usecase.Session) error {
	zoom := render.DefaultZoom
	if z := c.Query("zoom"); z != "" {
		zoom = render.ParseZoom(z)
	}
	html, err := s.Preview(zoom)
	if err != nil {
		h.log.Error("rendering preview failed", "user", s.User(), "error", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to render preview")
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// Export prints the current projection to PDF.
func (h *Handler) Export(c *fiber.Ctx) error {
	if h.renderer == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "export is not available")
	}
	s := h.session(c)
	ctx, cancel := context.WithTimeout(c.UserContext(), h.exportTimeout)
	defer cancel()
	pdf, err := s.Export(ctx, h.renderer)
	if err != nil {
		h.log.Error("export failed", "user", s.User(), "error", err)
		return errorJSON(c, fiber.StatusBadGateway, "Export failed")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}
