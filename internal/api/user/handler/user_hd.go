package userHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/user"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
	"metro-chatbot/pkg/handlerUtil"
	"metro-chatbot/pkg/log"
)

func (h *UserHandler) CreateUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create user request")

	var req user.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	created, err := h.userService.CreateUser(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, user.UserResponse{
			ID:           created.ID,
			Email:        created.Email,
			Name:         created.Name,
			MobileNumber: created.MobileNumber,
			CreatedAt:    created.CreatedAt,
		})
	}
}

func (h *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	resp, err := h.userService.GetAllUsers(c, page, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_users")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *UserHandler) GetUserByEmail(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	email := ctx.Params("email")
	if email == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("email is required"), ctx.Path())
	}

	if !sessionOwnsEmail(ctx, email) {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session does not match requested user")
	}

	found, err := h.userService.GetUserByEmail(c, email)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, user.UserResponse{
			ID:           found.ID,
			Email:        found.Email,
			Name:         found.Name,
			MobileNumber: found.MobileNumber,
			CreatedAt:    found.CreatedAt,
		})
	}
}

func (h *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	email := ctx.Params("email")
	if email == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("email is required"), ctx.Path())
	}

	if !sessionOwnsEmail(ctx, email) {
		return errHandler.HandleUnauthorized(ctx, requestID, "Session does not match requested user")
	}

	if err := h.userService.DeleteUser(c, email); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "User deleted successfully",
		})
	}
}

func sessionOwnsEmail(ctx *fiber.Ctx, email string) bool {
	chatSession, ok := ctx.Locals("session").(entity.ChatSession)
	return ok && chatSession.UserEmail == email
}
