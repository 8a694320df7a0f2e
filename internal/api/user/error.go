package user

import (
	"net/http"

	"metro-chatbot/pkg/response"
)

var (
	ErrUserNotFound       = response.NewError(http.StatusNotFound, "user not found")
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, "email already registered")
	ErrCreateUser         = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrDeleteUser         = response.NewError(http.StatusInternalServerError, "failed to delete user")
)
