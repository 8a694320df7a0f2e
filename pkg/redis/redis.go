package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/entity"
)

const (
	// historyLimit keeps only the most recent turns so the LLM prompt
	// stays bounded regardless of conversation length.
	historyLimit = 10

	historyTTL = 30 * time.Minute
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IRedis interface {
	AppendTurn(ctx context.Context, sessionID string, turn entity.ChatTurn) error
	GetHistory(ctx context.Context, sessionID string) ([]entity.ChatTurn, error)
	ClearHistory(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("chat:history:%s", sessionID)
}

func (r *redisClient) AppendTurn(ctx context.Context, sessionID string, turn entity.ChatTurn) error {
	payload, err := json.Marshal(turn)
	if err != nil {
		return err
	}

	key := historyKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -historyLimit, -1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Error(fmt.Sprintf("Error appending history for session %s: %v", sessionID, err))
		return err
	}

	return nil
}

func (r *redisClient) GetHistory(ctx context.Context, sessionID string) ([]entity.ChatTurn, error) {
	raw, err := r.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting history for session %s: %v", sessionID, err))
		return nil, err
	}

	turns := make([]entity.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn entity.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			logrus.Warn(fmt.Sprintf("Skipping malformed history entry for session %s: %v", sessionID, err))
			continue
		}
		turns = append(turns, turn)
	}

	return turns, nil
}

func (r *redisClient) ClearHistory(ctx context.Context, sessionID string) error {
	if _, err := r.client.Del(ctx, historyKey(sessionID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error clearing history for session %s: %v", sessionID, err))
		return err
	}
	return nil
}
