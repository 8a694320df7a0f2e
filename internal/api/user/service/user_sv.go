package userService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/user"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

func (s *userService) CreateUser(ctx context.Context, req user.CreateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.User{}, err
	}

	newUser := entity.User{
		ID:           userID,
		Email:        req.Email,
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		CreatedAt:    time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, newUser); err != nil {
		return entity.User{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      newUser.Email,
	}).Info("User created")

	return newUser, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, err
	}

	return repo.Users.GetUserByEmail(ctx, email)
}

// pageWindow clamps pagination inputs and returns the SQL limit/offset.
func pageWindow(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}

func (s *userService) GetAllUsers(ctx context.Context, page, limit int) (*user.UserListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	limit, offset := pageWindow(page, limit)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	users, total, err := repo.Users.GetAllUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &user.UserListResponse{
		Users: make([]user.UserResponse, 0, len(users)),
		Total: total,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, user.UserResponse{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			MobileNumber: u.MobileNumber,
			CreatedAt:    u.CreatedAt,
		})
	}

	return resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, email string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Users.DeleteUser(ctx, email); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return user.ErrDeleteUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      email,
	}).Info("User deleted")

	return nil
}
