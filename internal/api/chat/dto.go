package chat

import (
	"time"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
)

type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ChatRequest struct {
	UserMessage         string            `json:"user_message" validate:"required,min=1,max=4000"`
	SessionToken        string            `json:"session_token" validate:"omitempty"`
	UserProfile         *UserProfile      `json:"user_profile" validate:"omitempty"`
	ConversationHistory []entity.ChatTurn `json:"conversation_history" validate:"omitempty,max=50"`
}

// Recommends carries the structured cards that accompany a bot reply.
// Lists are always present, possibly empty, never null.
type Recommends struct {
	Products    []catalog.ProductCard    `json:"products"`
	Technicians []catalog.TechnicianCard `json:"technicians"`
	Salesman    []catalog.SalesmanCard   `json:"salesman"`
	Employees   []catalog.EmployeeCard   `json:"employees"`
	ExtraInfo   string                   `json:"extra_info"`
}

func EmptyRecommends() Recommends {
	return Recommends{
		Products:    []catalog.ProductCard{},
		Technicians: []catalog.TechnicianCard{},
		Salesman:    []catalog.SalesmanCard{},
		Employees:   []catalog.EmployeeCard{},
	}
}

type DebugInfo struct {
	State      string             `json:"state"`
	Category   string             `json:"category,omitempty"`
	Confidence map[string]float64 `json:"confidence,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

type ChatResponse struct {
	BotMessage   string     `json:"bot_message"`
	Recommends   Recommends `json:"recommends"`
	NextStep     []string   `json:"next_step"`
	SessionToken string     `json:"session_token"`
	Debug        *DebugInfo `json:"debug,omitempty"`
}

type ChatRecordResponse struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	Conversation []entity.ChatTurn `json:"conversation"`
}

type ChatHistoryResponse struct {
	Email   string               `json:"email"`
	Records []ChatRecordResponse `json:"records"`
}
