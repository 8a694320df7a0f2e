package knowledgeService

import (
	"context"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/knowledge"
	knowledgeRepository "metro-chatbot/internal/api/knowledge/repository"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/gemini"
	"metro-chatbot/pkg/utils"
)

type IKnowledgeService interface {
	Enabled() bool
	Ingest(ctx context.Context, req knowledge.IngestDocumentRequest) (*knowledge.IngestDocumentResponse, error)
	Search(ctx context.Context, req knowledge.SearchRequest) (*knowledge.SearchResponse, error)
	Retrieve(ctx context.Context, query string, topK int) ([]entity.KnowledgeChunk, error)
}

type knowledgeService struct {
	log           *logrus.Logger
	knowledgeRepo knowledgeRepository.Repository
	embedder      gemini.IGemini
	utils         utils.IUtils
	enabled       bool
}

func New(
	log *logrus.Logger,
	knowledgeRepo knowledgeRepository.Repository,
	embedder gemini.IGemini,
	utils utils.IUtils,
) IKnowledgeService {
	enabled, _ := strconv.ParseBool(os.Getenv("KNOWLEDGE_ENABLED"))

	return &knowledgeService{
		log:           log,
		knowledgeRepo: knowledgeRepo,
		embedder:      embedder,
		utils:         utils,
		enabled:       enabled,
	}
}

func (s *knowledgeService) Enabled() bool {
	return s.enabled
}
