package handlerUtil

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/api/chat"
	"metro-chatbot/internal/api/knowledge"
	"metro-chatbot/internal/api/user"
	"metro-chatbot/pkg/log"
	"metro-chatbot/pkg/response"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Chat domain errors
	if errors.Is(err, chat.ErrInvalidSession) {
		h.logger.WithFields(fields).Warn("Invalid session token")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid session token",
			"code":  "INVALID_SESSION",
		})
	}

	if errors.Is(err, chat.ErrChatRecordNotFound) {
		h.logger.WithFields(fields).Warn("Chat record not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Chat record not found",
			"code":  "CHAT_RECORD_NOT_FOUND",
		})
	}

	// User domain errors
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		h.logger.WithFields(fields).Warn("Email already registered")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email already registered",
			"code":  "EMAIL_ALREADY_EXISTS",
		})
	}

	if errors.Is(err, user.ErrUserNotFound) {
		h.logger.WithFields(fields).Warn("User not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
			"code":  "USER_NOT_FOUND",
		})
	}

	// Catalog domain errors
	if errors.Is(err, catalog.ErrProductNotFound) {
		h.logger.WithFields(fields).Warn("Product not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
			"code":  "PRODUCT_NOT_FOUND",
		})
	}

	// Knowledge domain errors
	if errors.Is(err, knowledge.ErrKnowledgeDisabled) {
		h.logger.WithFields(fields).Warn("Knowledge base disabled")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Knowledge base is disabled",
			"code":  "KNOWLEDGE_DISABLED",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
