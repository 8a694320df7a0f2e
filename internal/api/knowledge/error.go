package knowledge

import (
	"net/http"

	"metro-chatbot/pkg/response"
)

var (
	ErrEmptyDocument    = response.NewError(http.StatusBadRequest, "document content must not be empty")
	ErrEmbeddingFailed  = response.NewError(http.StatusInternalServerError, "failed to embed document")
	ErrIngestFailed     = response.NewError(http.StatusInternalServerError, "failed to ingest document")
	ErrKnowledgeDisabled = response.NewError(http.StatusServiceUnavailable, "knowledge base is disabled")
)
