package chatRepository

const (
	querySaveChatRecord = `
		INSERT INTO chat_records (
			id,
			email,
			date,
			conversation
		) VALUES (
			:id,
			:email,
			:date,
			:conversation
		)
	`

	queryGetChatRecordsByEmail = `
		SELECT
			id,
			email,
			date,
			conversation
		FROM chat_records
		WHERE email = :email
		ORDER BY date DESC
		LIMIT :limit
	`
)
