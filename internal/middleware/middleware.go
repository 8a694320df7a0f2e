package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"metro-chatbot/pkg/session"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewSessionMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	sessionCodec        session.ICodec
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, codec session.ICodec) Middleware {
	rateLimit := newRateLimiter(50, 100)
	requestID := NewRequestIDMiddleware()

	return &middleware{
		sessionCodec:        codec,
		rateLimitter:        rateLimit,
		requestIDMiddleware: requestID,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
