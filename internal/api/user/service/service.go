package userService

import (
	"context"

	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/user"
	userRepository "metro-chatbot/internal/api/user/repository"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/utils"
)

type IUserService interface {
	CreateUser(ctx context.Context, req user.CreateUserRequest) (entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetAllUsers(ctx context.Context, page, limit int) (*user.UserListResponse, error)
	DeleteUser(ctx context.Context, email string) error
}

type userService struct {
	log      *logrus.Logger
	userRepo userRepository.Repository
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	userRepo userRepository.Repository,
	utils utils.IUtils,
) IUserService {
	return &userService{
		log:      log,
		userRepo: userRepo,
		utils:    utils,
	}
}
