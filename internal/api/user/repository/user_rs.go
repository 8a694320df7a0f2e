package userRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/user"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

type UserDB struct {
	ID           sql.NullString `db:"id"`
	Email        sql.NullString `db:"email"`
	Name         sql.NullString `db:"name"`
	MobileNumber sql.NullString `db:"mobile_number"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *usersRepository) makeUser(u UserDB) entity.User {
	return entity.User{
		ID:           u.ID.String,
		Email:        u.Email.String,
		Name:         u.Name.String,
		MobileNumber: u.MobileNumber.String,
		CreatedAt:    u.CreatedAt,
	}
}

func (r *usersRepository) CreateUser(ctx context.Context, newUser entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            newUser.ID,
		"email":         newUser.Email,
		"name":          newUser.Name,
		"mobile_number": newUser.MobileNumber,
		"created_at":    newUser.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      newUser.Email,
			}).Warn("Duplicate email on CreateUser")
			return user.ErrEmailAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *usersRepository) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var userDB UserDB

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryGetUserByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByEmail named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&userDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByEmail execution err")
		return entity.User{}, err
	}

	return r.makeUser(userDB), nil
}

func (r *usersRepository) GetAllUsers(ctx context.Context, limit, offset int) ([]entity.User, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var userList []UserDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountAllUsers, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllUsers named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllUsers execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllUsers, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllUsers named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &userList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllUsers execution err")
		return nil, 0, err
	}

	var users []entity.User
	for _, userDB := range userList {
		users = append(users, r.makeUser(userDB))
	}

	return users, total, nil
}

func (r *usersRepository) DeleteUser(ctx context.Context, email string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"email": email,
	}

	// Chat records go first so the user row never orphans them.
	recordsQuery, recordsArgs, err := sqlx.Named(queryDeleteUserChatRecords, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUserChatRecords named query preparation err")
		return err
	}
	recordsQuery = r.q.Rebind(recordsQuery)
	if _, err := r.q.ExecContext(ctx, recordsQuery, recordsArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting user chat records")
		return err
	}

	query, args, err := sqlx.Named(queryDeleteUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting user")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
