package userService

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	userRepository "metro-chatbot/internal/api/user/repository"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/utils"
)

type fakeUserStore struct {
	createFn     func(ctx context.Context, user entity.User) error
	getByEmailFn func(ctx context.Context, email string) (entity.User, error)
	getAllFn     func(ctx context.Context, limit, offset int) ([]entity.User, int, error)
	deleteFn     func(ctx context.Context, email string) error
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user entity.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return entity.User{}, nil
}

func (f *fakeUserStore) GetAllUsers(ctx context.Context, limit, offset int) ([]entity.User, int, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, email string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, email)
	}
	return nil
}

type fakeUserRepo struct {
	users *fakeUserStore
}

func (r *fakeUserRepo) NewClient(tx bool) (userRepository.Client, error) {
	return userRepository.Client{
		Users:    r.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newUserFixture(t *testing.T) (*fakeUserStore, IUserService) {
	t.Helper()

	store := &fakeUserStore{}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return store, New(log, &fakeUserRepo{users: store}, utils.New())
}

func TestGetAllUsersClampsPagination(t *testing.T) {
	store, svc := newUserFixture(t)

	var gotLimit, gotOffset int
	store.getAllFn = func(ctx context.Context, limit, offset int) ([]entity.User, int, error) {
		gotLimit, gotOffset = limit, offset
		return []entity.User{{
			ID:           "usr-1",
			Email:        "budi@example.com",
			Name:         "Budi Santoso",
			MobileNumber: "0812345678",
			CreatedAt:    time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		}}, 73, nil
	}

	resp, err := svc.GetAllUsers(context.Background(), 0, 500)
	require.NoError(t, err)
	require.Equal(t, 20, gotLimit)
	require.Equal(t, 0, gotOffset)
	require.Equal(t, 73, resp.Total)
	require.Len(t, resp.Users, 1)
	require.Equal(t, "budi@example.com", resp.Users[0].Email)
	require.Equal(t, "Budi Santoso", resp.Users[0].Name)

	_, err = svc.GetAllUsers(context.Background(), 4, 15)
	require.NoError(t, err)
	require.Equal(t, 15, gotLimit)
	require.Equal(t, 45, gotOffset)
}

func TestGetAllUsersEmptyListKeepsSlice(t *testing.T) {
	store, svc := newUserFixture(t)

	store.getAllFn = func(ctx context.Context, limit, offset int) ([]entity.User, int, error) {
		return nil, 0, nil
	}

	resp, err := svc.GetAllUsers(context.Background(), 1, 20)
	require.NoError(t, err)
	require.NotNil(t, resp.Users)
	require.Empty(t, resp.Users)
	require.Equal(t, 0, resp.Total)
}

func TestGetAllUsersRepoErrorPropagates(t *testing.T) {
	store, svc := newUserFixture(t)

	dbErr := errors.New("connection reset")
	store.getAllFn = func(ctx context.Context, limit, offset int) ([]entity.User, int, error) {
		return nil, 0, dbErr
	}

	_, err := svc.GetAllUsers(context.Background(), 1, 20)
	require.ErrorIs(t, err, dbErr)
}
