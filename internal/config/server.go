package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"metro-chatbot/database/postgres"
	catalogHandler "metro-chatbot/internal/api/catalog/handler"
	catalogRepository "metro-chatbot/internal/api/catalog/repository"
	catalogService "metro-chatbot/internal/api/catalog/service"
	chatHandler "metro-chatbot/internal/api/chat/handler"
	chatRepository "metro-chatbot/internal/api/chat/repository"
	chatService "metro-chatbot/internal/api/chat/service"
	knowledgeHandler "metro-chatbot/internal/api/knowledge/handler"
	knowledgeRepository "metro-chatbot/internal/api/knowledge/repository"
	knowledgeService "metro-chatbot/internal/api/knowledge/service"
	userHandler "metro-chatbot/internal/api/user/handler"
	userRepository "metro-chatbot/internal/api/user/repository"
	userService "metro-chatbot/internal/api/user/service"
	"metro-chatbot/internal/middleware"
	"metro-chatbot/pkg/classifier"
	"metro-chatbot/pkg/gemini"
	"metro-chatbot/pkg/redis"
	"metro-chatbot/pkg/session"
	"metro-chatbot/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	handlers     []handler
	redisServer  redis.IRedis
	geminiClient gemini.IGemini
	classifier   classifier.IClassifier
	sessionCodec session.ICodec
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSessionCodec() ServerOption {
	return func(s *Server) error {
		codec, err := session.NewCodec()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create session codec: %v", err)
			}
			return fmt.Errorf("failed to create session codec: %w", err)
		}
		s.sessionCodec = codec
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.sessionCodec == nil {
			return fmt.Errorf("session codec must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.sessionCodec)
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithClassifier() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before classifier")
		}
		s.classifier = classifier.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Catalog Domain
	catalogRepo := catalogRepository.New(s.db, s.log)
	catalogServices := catalogService.New(s.log, catalogRepo, s.utils)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.New(s.log, userRepo, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// Knowledge Domain
	knowledgeRepo := knowledgeRepository.New(s.db, s.log)
	knowledgeServices := knowledgeService.New(s.log, knowledgeRepo, s.geminiClient, s.utils)
	knowledgeHandlers := knowledgeHandler.New(s.log, s.validator, s.middleware, knowledgeServices)

	// Chat Domain
	chatRepo := chatRepository.New(s.db, s.log)
	chatServices := chatService.New(
		s.log,
		chatRepo,
		catalogServices,
		userServices,
		s.classifier,
		s.geminiClient,
		s.redisServer,
		s.sessionCodec,
		knowledgeServices,
		s.utils,
	)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, userHandlers, knowledgeHandlers, chatHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	health := func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	}
	s.engine.Get("/", health)
	s.engine.Get("/api/v1/health", health)
}
