package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const SessionHeader = "X-Session-Token"

// NewSessionMiddleware guards endpoints that expose a user's data. The
// caller must present a session token whose conversation already
// completed registration or login.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	raw := ctx.Get(SessionHeader)

	if raw == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Session token header is missing")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, session token invalid or expired",
		})
	}

	chatSession, err := m.sessionCodec.Decode(raw)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Session token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, session token invalid or expired",
		})
	}

	if !chatSession.Identified() {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"state": chatSession.State,
		}).Warn("Session is not identified")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, session token invalid or expired",
		})
	}

	ctx.Locals("session", chatSession)

	return ctx.Next()
}
