package knowledgeHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	knowledgeService "metro-chatbot/internal/api/knowledge/service"
	"metro-chatbot/internal/middleware"
)

type KnowledgeHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	knowledgeService knowledgeService.IKnowledgeService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ks knowledgeService.IKnowledgeService,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		knowledgeService: ks,
	}
}

func (h *KnowledgeHandler) Start(srv fiber.Router) {
	documents := srv.Group("/documents")

	documents.Post("/", h.IngestDocument)
	documents.Post("/search", h.SearchDocuments)
}
