package chatService

import (
	"context"

	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/chat"
	chatRepository "metro-chatbot/internal/api/chat/repository"
	catalogService "metro-chatbot/internal/api/catalog/service"
	userService "metro-chatbot/internal/api/user/service"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/classifier"
	"metro-chatbot/pkg/gemini"
	"metro-chatbot/pkg/redis"
	"metro-chatbot/pkg/session"
	"metro-chatbot/pkg/utils"
)

type IChatService interface {
	ProcessMessage(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error)
	GetChatHistory(ctx context.Context, email string, limit int) (*chat.ChatHistoryResponse, error)
}

// KnowledgeRetriever is what the orchestrator needs from the knowledge
// base; the knowledge service satisfies it.
type KnowledgeRetriever interface {
	Enabled() bool
	Retrieve(ctx context.Context, query string, topK int) ([]entity.KnowledgeChunk, error)
}

type chatService struct {
	log          *logrus.Logger
	chatRepo     chatRepository.Repository
	catalog      catalogService.ICatalogService
	users        userService.IUserService
	classifier   classifier.IClassifier
	llm          gemini.IGemini
	cache        redis.IRedis
	sessionCodec session.ICodec
	knowledge    KnowledgeRetriever
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	catalog catalogService.ICatalogService,
	users userService.IUserService,
	clf classifier.IClassifier,
	llm gemini.IGemini,
	cache redis.IRedis,
	sessionCodec session.ICodec,
	knowledge KnowledgeRetriever,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:          log,
		chatRepo:     chatRepo,
		catalog:      catalog,
		users:        users,
		classifier:   clf,
		llm:          llm,
		cache:        cache,
		sessionCodec: sessionCodec,
		knowledge:    knowledge,
		utils:        utils,
	}
}
