package userHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	userService "metro-chatbot/internal/api/user/service"
	"metro-chatbot/internal/middleware"
)

type UserHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us userService.IUserService,
) *UserHandler {
	return &UserHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: us,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	users := srv.Group("/users")

	users.Post("/", h.CreateUser)
	users.Get("", h.GetAllUsers)
	users.Get("/:email", h.middleware.NewSessionMiddleware, h.GetUserByEmail)
	users.Delete("/:email", h.middleware.NewSessionMiddleware, h.DeleteUser)
}
