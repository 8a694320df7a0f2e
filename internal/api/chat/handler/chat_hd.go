package chatHandler

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/chat"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
	"metro-chatbot/pkg/handlerUtil"
	"metro-chatbot/pkg/log"
)

// llmTimeout allows for one model round trip plus the lookups.
func llmTimeout() time.Duration {
	if raw := os.Getenv("LLM_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 30 * time.Second
}

func (h *ChatHandler) ProcessMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), llmTimeout())
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat message")

	var req chat.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	resp, err := h.chatService.ProcessMessage(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *ChatHandler) GetChatHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	email := ctx.Params("email")
	if email == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("email is required"), ctx.Path())
	}

	chatSession, ok := ctx.Locals("session").(entity.ChatSession)
	if !ok || chatSession.UserEmail != email {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session does not match requested user")
	}

	limit, _ := strconv.Atoi(ctx.Query("limit", "5"))

	resp, err := h.chatService.GetChatHistory(c, email, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_chat_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}
