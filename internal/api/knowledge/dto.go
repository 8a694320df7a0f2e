package knowledge

type IngestDocumentRequest struct {
	Content  string `json:"content" validate:"required,min=1"`
	Metadata string `json:"metadata" validate:"omitempty,max=2048"`
}

type IngestDocumentResponse struct {
	DocumentID string `json:"document_id"`
	Chunks     int    `json:"chunks"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1,max=4000"`
	TopK  int    `json:"top_k" validate:"omitempty,min=1,max=20"`
}

type ChunkResult struct {
	DocumentID string `json:"document_id"`
	ChunkIndex int    `json:"chunk_index"`
	Content    string `json:"content"`
	Metadata   string `json:"metadata,omitempty"`
}

type SearchResponse struct {
	Results []ChunkResult `json:"results"`
}
