package knowledgeRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/pgvector/pgvector-go"

	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

func (r *chunksRepository) InsertChunk(ctx context.Context, chunk entity.KnowledgeChunk) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          chunk.ID,
		"document_id": chunk.DocumentID,
		"chunk_index": chunk.ChunkIndex,
		"content":     chunk.Content,
		"metadata":    chunk.Metadata,
		"embedding":   chunk.Embedding,
		"created_at":  chunk.CreatedAt,
	}

	query, args, err := sqlx.Named(queryInsertChunk, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for InsertChunk")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting knowledge chunk")
		return err
	}

	return nil
}

func (r *chunksRepository) SearchSimilar(ctx context.Context, embedding pgvector.Vector, topK int) ([]entity.KnowledgeChunk, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var chunks []entity.KnowledgeChunk

	if err := r.q.SelectContext(ctx, &chunks, querySearchSimilar, embedding, topK); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchSimilar execution err")
		return nil, err
	}

	return chunks, nil
}
