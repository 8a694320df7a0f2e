package knowledgeRepository

const (
	queryInsertChunk = `
		INSERT INTO knowledge_chunks (
			id,
			document_id,
			chunk_index,
			content,
			metadata,
			embedding,
			created_at
		) VALUES (
			:id,
			:document_id,
			:chunk_index,
			:content,
			:metadata,
			:embedding,
			:created_at
		)
	`

	querySearchSimilar = `
		SELECT
			id,
			document_id,
			chunk_index,
			content,
			metadata,
			embedding,
			created_at
		FROM knowledge_chunks
		ORDER BY embedding <=> $1
		LIMIT $2
	`
)
