package entity

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeChunk struct {
	ID         string          `db:"id"`
	DocumentID string          `db:"document_id"`
	ChunkIndex int             `db:"chunk_index"`
	Content    string          `db:"content"`
	Metadata   string          `db:"metadata"`
	Embedding  pgvector.Vector `db:"embedding"`
	CreatedAt  time.Time       `db:"created_at"`
}
