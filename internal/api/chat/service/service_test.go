package chatService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/api/chat"
	chatRepository "metro-chatbot/internal/api/chat/repository"
	"metro-chatbot/internal/api/user"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/classifier"
	"metro-chatbot/pkg/session"
	"metro-chatbot/pkg/utils"
)

// fakeCatalog implements the catalog service with function fields so
// each test can script lookups and observe calls.
type fakeCatalog struct {
	searchProducts    func(ctx context.Context, query, category string) ([]entity.Product, error)
	searchTechnicians func(ctx context.Context, speciality string) ([]entity.Technician, error)
	searchSalesmen    func(ctx context.Context, speciality string) ([]entity.Salesman, error)
	searchEmployees   func(ctx context.Context, department, position string) ([]entity.Employee, error)
}

func (f *fakeCatalog) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (entity.Product, error) {
	return entity.Product{}, nil
}

func (f *fakeCatalog) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	return entity.Product{}, nil
}

func (f *fakeCatalog) GetAllProducts(ctx context.Context, page, limit int) (*catalog.ProductListResponse, error) {
	return &catalog.ProductListResponse{}, nil
}

func (f *fakeCatalog) UpdateProduct(ctx context.Context, id string, req catalog.UpdateProductRequest) error {
	return nil
}

func (f *fakeCatalog) DeleteProduct(ctx context.Context, id string) error {
	return nil
}

func (f *fakeCatalog) CreateTechnician(ctx context.Context, req catalog.CreateTechnicianRequest) (entity.Technician, error) {
	return entity.Technician{}, nil
}

func (f *fakeCatalog) GetTechnicianByID(ctx context.Context, id string) (entity.Technician, error) {
	return entity.Technician{}, nil
}

func (f *fakeCatalog) GetAllTechnicians(ctx context.Context, page, limit int) (*catalog.TechnicianListResponse, error) {
	return &catalog.TechnicianListResponse{}, nil
}

func (f *fakeCatalog) UpdateTechnician(ctx context.Context, id string, req catalog.UpdateTechnicianRequest) error {
	return nil
}

func (f *fakeCatalog) DeleteTechnician(ctx context.Context, id string) error {
	return nil
}

func (f *fakeCatalog) CreateSalesman(ctx context.Context, req catalog.CreateSalesmanRequest) (entity.Salesman, error) {
	return entity.Salesman{}, nil
}

func (f *fakeCatalog) GetSalesmanByID(ctx context.Context, id string) (entity.Salesman, error) {
	return entity.Salesman{}, nil
}

func (f *fakeCatalog) GetAllSalesmen(ctx context.Context, page, limit int) (*catalog.SalesmanListResponse, error) {
	return &catalog.SalesmanListResponse{}, nil
}

func (f *fakeCatalog) UpdateSalesman(ctx context.Context, id string, req catalog.UpdateSalesmanRequest) error {
	return nil
}

func (f *fakeCatalog) DeleteSalesman(ctx context.Context, id string) error {
	return nil
}

func (f *fakeCatalog) CreateEmployee(ctx context.Context, req catalog.CreateEmployeeRequest) (entity.Employee, error) {
	return entity.Employee{}, nil
}

func (f *fakeCatalog) GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error) {
	return entity.Employee{}, nil
}

func (f *fakeCatalog) GetAllEmployees(ctx context.Context, page, limit int) (*catalog.EmployeeListResponse, error) {
	return &catalog.EmployeeListResponse{}, nil
}

func (f *fakeCatalog) UpdateEmployee(ctx context.Context, id string, req catalog.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeCatalog) DeleteEmployee(ctx context.Context, id string) error {
	return nil
}

func (f *fakeCatalog) SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error) {
	if f.searchProducts == nil {
		return nil, nil
	}
	return f.searchProducts(ctx, query, category)
}

func (f *fakeCatalog) SearchTechnicians(ctx context.Context, speciality string) ([]entity.Technician, error) {
	if f.searchTechnicians == nil {
		return nil, nil
	}
	return f.searchTechnicians(ctx, speciality)
}

func (f *fakeCatalog) SearchSalesmen(ctx context.Context, speciality string) ([]entity.Salesman, error) {
	if f.searchSalesmen == nil {
		return nil, nil
	}
	return f.searchSalesmen(ctx, speciality)
}

func (f *fakeCatalog) SearchEmployees(ctx context.Context, department, position string) ([]entity.Employee, error) {
	if f.searchEmployees == nil {
		return nil, nil
	}
	return f.searchEmployees(ctx, department, position)
}

type fakeUsers struct {
	createUser     func(ctx context.Context, req user.CreateUserRequest) (entity.User, error)
	getUserByEmail func(ctx context.Context, email string) (entity.User, error)
}

func (f *fakeUsers) CreateUser(ctx context.Context, req user.CreateUserRequest) (entity.User, error) {
	if f.createUser == nil {
		return entity.User{Email: req.Email, Name: req.Name, MobileNumber: req.MobileNumber}, nil
	}
	return f.createUser(ctx, req)
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	if f.getUserByEmail == nil {
		return entity.User{}, user.ErrUserNotFound
	}
	return f.getUserByEmail(ctx, email)
}

func (f *fakeUsers) GetAllUsers(ctx context.Context, page, limit int) (*user.UserListResponse, error) {
	return &user.UserListResponse{}, nil
}

func (f *fakeUsers) DeleteUser(ctx context.Context, email string) error {
	return nil
}

type fakeLLM struct {
	generateReply func(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error)
}

func (f *fakeLLM) GenerateReply(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error) {
	if f.generateReply == nil {
		return "Happy to help!", nil
	}
	return f.generateReply(ctx, systemPrompt, history, userMessage)
}

func (f *fakeLLM) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2}, nil
}

type fakeCache struct {
	appended []entity.ChatTurn
	history  []entity.ChatTurn
}

func (f *fakeCache) AppendTurn(ctx context.Context, sessionID string, turn entity.ChatTurn) error {
	f.appended = append(f.appended, turn)
	return nil
}

func (f *fakeCache) GetHistory(ctx context.Context, sessionID string) ([]entity.ChatTurn, error) {
	return f.history, nil
}

func (f *fakeCache) ClearHistory(ctx context.Context, sessionID string) error {
	f.history = nil
	return nil
}

type fakeRecords struct {
	saved []entity.ChatRecord
}

func (f *fakeRecords) SaveChatRecord(ctx context.Context, record entity.ChatRecord) error {
	f.saved = append(f.saved, record)
	return nil
}

func (f *fakeRecords) GetChatRecordsByEmail(ctx context.Context, email string, limit int) ([]entity.ChatRecord, error) {
	var out []entity.ChatRecord
	for _, record := range f.saved {
		if record.Email == email {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	records *fakeRecords
}

func (f *fakeChatRepo) NewClient(tx bool) (chatRepository.Client, error) {
	return chatRepository.Client{
		Records:  f.records,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeKnowledge struct {
	enabled bool
	chunks  []entity.KnowledgeChunk
}

func (f *fakeKnowledge) Enabled() bool {
	return f.enabled
}

func (f *fakeKnowledge) Retrieve(ctx context.Context, query string, topK int) ([]entity.KnowledgeChunk, error) {
	return f.chunks, nil
}

type serviceFixture struct {
	catalog *fakeCatalog
	users   *fakeUsers
	llm     *fakeLLM
	cache   *fakeCache
	records *fakeRecords
	codec   session.ICodec
	service IChatService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")
	t.Setenv("APP_ENV", "test")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	codec, err := session.NewCodec()
	require.NoError(t, err)

	fx := &serviceFixture{
		catalog: &fakeCatalog{},
		users:   &fakeUsers{},
		llm:     &fakeLLM{},
		cache:   &fakeCache{},
		records: &fakeRecords{},
		codec:   codec,
	}

	fx.service = New(
		logger,
		&fakeChatRepo{records: fx.records},
		fx.catalog,
		fx.users,
		classifier.NewWithModel(nil),
		fx.llm,
		fx.cache,
		codec,
		&fakeKnowledge{},
		utils.New(),
	)

	return fx
}

// advanceTo walks a fresh conversation into the wanted state and
// returns the session token to continue from.
func advanceTo(t *testing.T, fx *serviceFixture, messages ...string) string {
	t.Helper()

	resp, err := fx.service.ProcessMessage(context.Background(), chat.ChatRequest{UserMessage: "hi"})
	require.NoError(t, err)

	for _, message := range messages {
		resp, err = fx.service.ProcessMessage(context.Background(), chat.ChatRequest{
			UserMessage:  message,
			SessionToken: resp.SessionToken,
		})
		require.NoError(t, err)
	}

	return resp.SessionToken
}
