package chatService

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/chat"
	"metro-chatbot/internal/api/user"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

const (
	menuMessage = "Hello there,\n1) Ask some questions\n2) Create an account\n3) Log in"
)

var menuOptions = []string{"Option 1", "Option 2", "Option 3"}

var activeOptions = []string{"Ask a question", "View products", "Contact support"}

// ProcessMessage drives one turn of the conversation. Whatever happens
// inside, the caller gets a fully populated response and a fresh
// session token; errors only escape when even the apology path fails.
func (s *chatService) ProcessMessage(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sess := s.resumeSession(ctx, req.SessionToken)

	resp := &chat.ChatResponse{
		Recommends: chat.EmptyRecommends(),
		NextStep:   []string{},
		Debug: &chat.DebugInfo{
			State:     string(sess.State),
			Timestamp: time.Now().UTC(),
		},
	}

	switch sess.State {
	case entity.StateStart:
		resp.BotMessage = menuMessage
		resp.NextStep = menuOptions
		sess.State = entity.StateMenu

	case entity.StateMenu:
		s.handleMenuChoice(req.UserMessage, &sess, resp)

	case entity.StateAsking:
		s.answerQuestion(ctx, req, &sess, resp)

	case entity.StateRegisteringEmail:
		s.handleRegistrationEmail(ctx, req.UserMessage, &sess, resp)

	case entity.StateRegisteringName:
		s.handleRegistrationName(req.UserMessage, &sess, resp)

	case entity.StateRegisteringPhone:
		s.handleRegistrationPhone(ctx, req.UserMessage, &sess, resp)

	case entity.StateLoggingIn:
		s.handleLogin(ctx, req.UserMessage, &sess, resp)

	case entity.StateActive:
		s.answerQuestion(ctx, req, &sess, resp)
		s.persistTurn(ctx, sess, req, resp)

	default:
		// Unknown state in an old token: start over.
		resp.BotMessage = menuMessage
		resp.NextStep = menuOptions
		sess.State = entity.StateMenu
	}

	resp.Debug.State = string(sess.State)

	token, err := s.sessionCodec.Encode(sess)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode session token")
		return nil, err
	}
	resp.SessionToken = token

	return resp, nil
}

// resumeSession decodes the caller's token, or starts a fresh session
// when the token is missing, expired, or tampered with.
func (s *chatService) resumeSession(ctx context.Context, token string) entity.ChatSession {
	requestID := contextPkg.GetRequestID(ctx)

	if token != "" {
		sess, err := s.sessionCodec.Decode(token)
		if err == nil {
			return sess
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Session token rejected, starting a new session")
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		id = fmt.Sprintf("session-%d", time.Now().UnixNano())
	}

	return entity.ChatSession{ID: id, State: entity.StateStart}
}

func (s *chatService) handleMenuChoice(message string, sess *entity.ChatSession, resp *chat.ChatResponse) {
	choice := strings.ToLower(strings.TrimSpace(message))

	switch choice {
	case "1", "1)", "option 1", "ask questions", "ask some questions":
		resp.BotMessage = "Ask your questions."
		resp.NextStep = []string{"Ask about solar", "Ask about generators", "Ask about inverters", "Ask about electrical systems"}
		sess.State = entity.StateAsking

	case "2", "2)", "option 2", "create account", "create an account":
		resp.BotMessage = "Let's create an account for you.\n\nPlease enter your email:"
		sess.State = entity.StateRegisteringEmail

	case "3", "3)", "option 3", "log in", "login":
		resp.BotMessage = "Please enter your email to log in:"
		sess.State = entity.StateLoggingIn

	default:
		resp.BotMessage = "Please choose a valid option:\n1) Ask some questions\n2) Create an account\n3) Log in"
		resp.NextStep = menuOptions
	}
}

func (s *chatService) handleRegistrationEmail(ctx context.Context, message string, sess *entity.ChatSession, resp *chat.ChatResponse) {
	email := extractEmail(message)
	if email == "" {
		resp.BotMessage = "I couldn't find a valid email. Please enter your email address:"
		return
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		resp.BotMessage = fmt.Sprintf("This email is already registered. Welcome back, %s!\n\nHow can I help you?", existing.Name)
		resp.NextStep = activeOptions
		sess.State = entity.StateActive
		sess.UserEmail = email
		sess.UserName = existing.Name
		return
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to look up user during registration")
		resp.BotMessage = "Something went wrong checking that email. Please try again:"
		return
	}

	sess.PendingEmail = email
	resp.BotMessage = "Great! Now, please enter your name:"
	sess.State = entity.StateRegisteringName
}

func (s *chatService) handleRegistrationName(message string, sess *entity.ChatSession, resp *chat.ChatResponse) {
	name := extractName(message)
	if name == "" {
		resp.BotMessage = "Please enter your name:"
		return
	}

	sess.PendingName = name
	resp.BotMessage = fmt.Sprintf("Nice to meet you, %s! Please enter your mobile number:", name)
	sess.State = entity.StateRegisteringPhone
}

func (s *chatService) handleRegistrationPhone(ctx context.Context, message string, sess *entity.ChatSession, resp *chat.ChatResponse) {
	phone := extractPhone(message)
	if phone == "" {
		resp.BotMessage = "Please enter a valid mobile number (10 digits):"
		return
	}

	_, err := s.users.CreateUser(ctx, user.CreateUserRequest{
		Email:        sess.PendingEmail,
		Name:         sess.PendingName,
		MobileNumber: phone,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to create user during registration")
		resp.BotMessage = "I couldn't create your account right now. Please enter your mobile number again:"
		return
	}

	resp.BotMessage = fmt.Sprintf("%s, your account has been created! How can I help you?", sess.PendingName)
	resp.NextStep = activeOptions
	sess.State = entity.StateActive
	sess.UserEmail = sess.PendingEmail
	sess.UserName = sess.PendingName
	sess.PendingEmail = ""
	sess.PendingName = ""
}

func (s *chatService) handleLogin(ctx context.Context, message string, sess *entity.ChatSession, resp *chat.ChatResponse) {
	email := extractEmail(message)
	if email == "" {
		resp.BotMessage = "Please enter a valid email address:"
		return
	}

	found, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			resp.BotMessage = "No account found with that email. Would you like to create an account?\n\n1) Yes, create account\n2) Try different email"
			resp.NextStep = []string{"Create account", "Try again"}
			sess.State = entity.StateMenu
			return
		}
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to look up user during login")
		resp.BotMessage = "Something went wrong looking up that email. Please try again:"
		return
	}

	resp.BotMessage = fmt.Sprintf("Welcome back %s, how can I help you?", found.Name)
	resp.NextStep = activeOptions
	sess.State = entity.StateActive
	sess.UserEmail = email
	sess.UserName = found.Name
}

// persistTurn archives the turn for identified users and feeds the
// short-term conversation cache. Failures are logged, never surfaced.
func (s *chatService) persistTurn(ctx context.Context, sess entity.ChatSession, req chat.ChatRequest, resp *chat.ChatResponse) {
	requestID := contextPkg.GetRequestID(ctx)

	turn := entity.ChatTurn{
		User: req.UserMessage,
		Bot:  resp.BotMessage,
		Time: time.Now().UTC(),
	}

	if err := s.cache.AppendTurn(ctx, sess.ID, turn); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache conversation turn")
	}

	if sess.UserEmail == "" {
		return
	}

	recordID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate chat record ID")
		return
	}

	conversation := append(append([]entity.ChatTurn{}, req.ConversationHistory...), turn)

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	record := entity.ChatRecord{
		ID:           recordID,
		Email:        sess.UserEmail,
		Date:         time.Now().UTC(),
		Conversation: conversation,
	}

	if err := repo.Records.SaveChatRecord(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save chat record")
	}
}

func (s *chatService) GetChatHistory(ctx context.Context, email string, limit int) (*chat.ChatHistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit < 1 || limit > 50 {
		limit = 5
	}

	repo, err := s.chatRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	records, err := repo.Records.GetChatRecordsByEmail(ctx, email, limit)
	if err != nil {
		return nil, err
	}

	resp := &chat.ChatHistoryResponse{
		Email:   email,
		Records: make([]chat.ChatRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, chat.ChatRecordResponse{
			ID:           record.ID,
			Date:         record.Date,
			Conversation: record.Conversation,
		})
	}

	return resp, nil
}
