package chatHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	chatService "metro-chatbot/internal/api/chat/service"
	"metro-chatbot/internal/middleware"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	srv.Post("/chat", h.ProcessMessage)
	srv.Get("/chat-history/:email", h.middleware.NewSessionMiddleware, h.GetChatHistory)
}
