package chatRepository

import (
	"context"
	"database/sql"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ChatRecordDB struct {
	ID           sql.NullString `db:"id"`
	Email        sql.NullString `db:"email"`
	Date         time.Time      `db:"date"`
	Conversation []byte         `db:"conversation"`
}

func (r *recordsRepository) makeChatRecord(rec ChatRecordDB) entity.ChatRecord {
	record := entity.ChatRecord{
		ID:    rec.ID.String,
		Email: rec.Email.String,
		Date:  rec.Date,
	}

	if len(rec.Conversation) > 0 {
		if err := json.Unmarshal(rec.Conversation, &record.Conversation); err != nil {
			r.log.WithFields(logrus.Fields{
				"record_id": record.ID,
				"error":     err.Error(),
			}).Warn("Skipping malformed conversation payload")
		}
	}

	return record
}

func (r *recordsRepository) SaveChatRecord(ctx context.Context, record entity.ChatRecord) error {
	requestID := contextPkg.GetRequestID(ctx)

	conversation, err := json.Marshal(record.Conversation)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal conversation for SaveChatRecord")
		return err
	}

	argsKV := map[string]interface{}{
		"id":           record.ID,
		"email":        record.Email,
		"date":         record.Date,
		"conversation": conversation,
	}

	query, args, err := sqlx.Named(querySaveChatRecord, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SaveChatRecord")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving chat record")
		return err
	}

	return nil
}

func (r *recordsRepository) GetChatRecordsByEmail(ctx context.Context, email string, limit int) ([]entity.ChatRecord, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var recordList []ChatRecordDB

	argsKV := map[string]interface{}{
		"email": email,
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetChatRecordsByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChatRecordsByEmail named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &recordList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetChatRecordsByEmail execution err")
		return nil, err
	}

	records := make([]entity.ChatRecord, 0, len(recordList))
	for _, recordDB := range recordList {
		records = append(records, r.makeChatRecord(recordDB))
	}

	return records, nil
}
