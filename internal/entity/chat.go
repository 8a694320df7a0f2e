package entity

import "time"

// SessionState is the conversation state carried across requests inside the
// signed session token. The zero value is treated as StateStart.
type SessionState string

const (
	StateStart            SessionState = "start"
	StateMenu             SessionState = "menu"
	StateAsking           SessionState = "asking"
	StateRegisteringEmail SessionState = "registering_email"
	StateRegisteringName  SessionState = "registering_name"
	StateRegisteringPhone SessionState = "registering_phone"
	StateLoggingIn        SessionState = "logging_in"
	StateActive           SessionState = "active"
)

type ChatSession struct {
	ID           string
	State        SessionState
	UserEmail    string
	UserName     string
	PendingEmail string
	PendingName  string
}

// Identified reports whether the session is bound to a registered user.
func (s ChatSession) Identified() bool {
	return s.UserEmail != ""
}

type ChatTurn struct {
	User string    `json:"user"`
	Bot  string    `json:"bot"`
	Time time.Time `json:"time"`
}

type ChatRecord struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Date         time.Time  `db:"date"`
	Conversation []ChatTurn `db:"-"`
}
