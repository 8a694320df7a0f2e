package knowledgeService

import (
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/knowledge"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

const defaultTopK = 3

func (s *knowledgeService) Ingest(ctx context.Context, req knowledge.IngestDocumentRequest) (*knowledge.IngestDocumentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.enabled {
		return nil, knowledge.ErrKnowledgeDisabled
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, knowledge.ErrEmptyDocument
	}

	documentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate document ID")
		return nil, knowledge.ErrIngestFailed
	}

	chunks := splitText(req.Content)

	repo, err := s.knowledgeRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, knowledge.ErrIngestFailed
	}
	defer repo.Rollback()

	for idx, content := range chunks {
		embedding, err := s.embedder.EmbedText(ctx, content)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"chunk_index": idx,
				"error":       err.Error(),
			}).Error("Failed to embed chunk")
			return nil, knowledge.ErrEmbeddingFailed
		}

		chunkID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return nil, knowledge.ErrIngestFailed
		}

		chunk := entity.KnowledgeChunk{
			ID:         chunkID,
			DocumentID: documentID,
			ChunkIndex: idx,
			Content:    content,
			Metadata:   req.Metadata,
			Embedding:  pgvector.NewVector(embedding),
			CreatedAt:  time.Now().UTC(),
		}

		if err := repo.Chunks.InsertChunk(ctx, chunk); err != nil {
			return nil, knowledge.ErrIngestFailed
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit document ingest")
		return nil, knowledge.ErrIngestFailed
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"document_id": documentID,
		"chunks":      len(chunks),
	}).Info("Document ingested")

	return &knowledge.IngestDocumentResponse{
		DocumentID: documentID,
		Chunks:     len(chunks),
	}, nil
}

func (s *knowledgeService) Search(ctx context.Context, req knowledge.SearchRequest) (*knowledge.SearchResponse, error) {
	topK := req.TopK
	if topK == 0 {
		topK = defaultTopK
	}

	chunks, err := s.Retrieve(ctx, req.Query, topK)
	if err != nil {
		return nil, err
	}

	resp := &knowledge.SearchResponse{
		Results: make([]knowledge.ChunkResult, 0, len(chunks)),
	}
	for _, chunk := range chunks {
		resp.Results = append(resp.Results, knowledge.ChunkResult{
			DocumentID: chunk.DocumentID,
			ChunkIndex: chunk.ChunkIndex,
			Content:    chunk.Content,
			Metadata:   chunk.Metadata,
		})
	}

	return resp, nil
}

// Retrieve embeds the query and returns the nearest chunks. The chat
// orchestrator calls this directly.
func (s *knowledgeService) Retrieve(ctx context.Context, query string, topK int) ([]entity.KnowledgeChunk, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.enabled {
		return nil, knowledge.ErrKnowledgeDisabled
	}

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to embed search query")
		return nil, knowledge.ErrEmbeddingFailed
	}

	repo, err := s.knowledgeRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Chunks.SearchSimilar(ctx, pgvector.NewVector(embedding), topK)
}
