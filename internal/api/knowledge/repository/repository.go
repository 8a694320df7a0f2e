package knowledgeRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Chunks:   &chunksRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Chunks interface {
		InsertChunk(ctx context.Context, chunk entity.KnowledgeChunk) error
		SearchSimilar(ctx context.Context, embedding pgvector.Vector, topK int) ([]entity.KnowledgeChunk, error)
	}

	Commit   func() error
	Rollback func() error
}

type chunksRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
