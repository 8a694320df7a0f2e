package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			name,
			mobile_number,
			created_at
		) VALUES (
			:id,
			:email,
			:name,
			:mobile_number,
			:created_at
		)
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			name,
			mobile_number,
			created_at
		FROM users
		WHERE email = :email
	`

	queryGetAllUsers = `
		SELECT
			id,
			email,
			name,
			mobile_number,
			created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT :limit
		OFFSET :offset
	`

	queryCountAllUsers = `
		SELECT COUNT(*) FROM users
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE email = :email
	`

	queryDeleteUserChatRecords = `
		DELETE FROM chat_records
		WHERE email = :email
	`
)
