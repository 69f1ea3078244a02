package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Identity reads the user id set by the upstream auth layer. Requests
// without a valid id are rejected.
func Identity(header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Get(header))
		if err != nil || id == uuid.Nil {
			return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		c.Locals(userKey, id)
		return c.Next()
	}
}

func RequestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		log.Info("http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}
