package chat

import (
	"net/http"

	"metro-chatbot/pkg/response"
)

var (
	ErrEmptyMessage       = response.NewError(http.StatusBadRequest, "user message must not be empty")
	ErrChatRecordNotFound = response.NewError(http.StatusNotFound, "chat record not found")
	ErrSaveChatRecord     = response.NewError(http.StatusInternalServerError, "failed to save chat record")
	ErrInvalidSession     = response.NewError(http.StatusUnauthorized, "invalid session token")
)
