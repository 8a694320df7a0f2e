package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/entity"
)

// TokenTTL bounds how long a caller may keep resuming a conversation,
// including one stuck mid-registration.
const TokenTTL = 24 * time.Hour

var (
	ErrSecretNotConfigured = errors.New("SESSION_TOKEN_SECRET not set")
	ErrInvalidToken        = errors.New("invalid session token")
)

type ICodec interface {
	Encode(session entity.ChatSession) (string, error)
	Decode(token string) (entity.ChatSession, error)
}

type codec struct {
	secret []byte
}

func NewCodec() (ICodec, error) {
	secret := os.Getenv("SESSION_TOKEN_SECRET")
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}

	return &codec{secret: []byte(secret)}, nil
}

func (c *codec) Encode(session entity.ChatSession) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"state": string(session.State),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}

	if session.UserEmail != "" {
		claims["email"] = session.UserEmail
	}
	if session.UserName != "" {
		claims["name"] = session.UserName
	}
	if session.PendingEmail != "" {
		claims["pending_email"] = session.PendingEmail
	}
	if session.PendingName != "" {
		claims["pending_name"] = session.PendingName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign session token")
		return "", err
	}

	return signed, nil
}

func (c *codec) Decode(raw string) (entity.ChatSession, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return entity.ChatSession{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.ChatSession{}, ErrInvalidToken
	}

	sid, _ := claims["sid"].(string)
	state, _ := claims["state"].(string)
	if sid == "" || state == "" {
		return entity.ChatSession{}, ErrInvalidToken
	}

	session := entity.ChatSession{
		ID:    sid,
		State: entity.SessionState(state),
	}

	if email, ok := claims["email"].(string); ok {
		session.UserEmail = email
	}
	if name, ok := claims["name"].(string); ok {
		session.UserName = name
	}
	if pendingEmail, ok := claims["pending_email"].(string); ok {
		session.PendingEmail = pendingEmail
	}
	if pendingName, ok := claims["pending_name"].(string); ok {
		session.PendingName = pendingName
	}

	return session, nil
}
