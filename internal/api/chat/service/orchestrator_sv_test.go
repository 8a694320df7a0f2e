package chatService

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metro-chatbot/internal/api/chat"
	"metro-chatbot/internal/entity"
)

func askingRequest(t *testing.T, fx *serviceFixture, message string) *chat.ChatResponse {
	t.Helper()

	token := advanceTo(t, fx, "1")

	resp, err := fx.service.ProcessMessage(context.Background(), chat.ChatRequest{
		UserMessage:  message,
		SessionToken: token,
	})
	require.NoError(t, err)
	return resp
}

func TestAnswerQuestionCommonSkipsLookups(t *testing.T) {
	fx := newServiceFixture(t)

	var productCalls, salesmanCalls, employeeCalls int
	fx.catalog.searchProducts = func(ctx context.Context, query, category string) ([]entity.Product, error) {
		productCalls++
		return nil, nil
	}
	fx.catalog.searchSalesmen = func(ctx context.Context, speciality string) ([]entity.Salesman, error) {
		salesmanCalls++
		return nil, nil
	}
	fx.catalog.searchEmployees = func(ctx context.Context, department, position string) ([]entity.Employee, error) {
		employeeCalls++
		return nil, nil
	}

	resp := askingRequest(t, fx, "hello how are you today")

	assert.Equal(t, "Happy to help!", resp.BotMessage)
	assert.Equal(t, 0, productCalls)
	assert.Equal(t, 0, salesmanCalls)
	assert.Equal(t, 0, employeeCalls)

	assert.Empty(t, resp.Recommends.Products)
	assert.Empty(t, resp.Recommends.Technicians)
	assert.Empty(t, resp.Recommends.Salesman)
	assert.Empty(t, resp.Recommends.Employees)
	assert.Equal(t, "Category: common", resp.Recommends.ExtraInfo)
	assert.Equal(t, []string{"Ask another question", "Start over"}, resp.NextStep)

	assert.Equal(t, "common", resp.Debug.Category)
	assert.InDelta(t, 0.7, resp.Debug.Confidence["common"], 1e-9)
}

func TestAnswerQuestionProductsCapsRecommendations(t *testing.T) {
	fx := newServiceFixture(t)

	var gotQuery, gotCategory string
	fx.catalog.searchProducts = func(ctx context.Context, query, category string) ([]entity.Product, error) {
		gotQuery, gotCategory = query, category
		return []entity.Product{
			{Name: "Panel A", Category: "solar", Price: 100},
			{Name: "Panel B", Category: "solar", Price: 200},
			{Name: "Panel C", Category: "solar", Price: 300},
		}, nil
	}

	resp := askingRequest(t, fx, "What is the price of your solar panels?")

	assert.Equal(t, "What is the price of your solar panels?", gotQuery)
	assert.Equal(t, "solar", gotCategory)

	require.Len(t, resp.Recommends.Products, 2)
	assert.Equal(t, "Panel A", resp.Recommends.Products[0].Name)
	assert.Equal(t, "Panel B", resp.Recommends.Products[1].Name)
	assert.Equal(t, "Category: products", resp.Recommends.ExtraInfo)
	assert.Contains(t, resp.NextStep, "View more products")
}

func TestAnswerQuestionProblemFetchesTechnicians(t *testing.T) {
	fx := newServiceFixture(t)

	fx.catalog.searchTechnicians = func(ctx context.Context, speciality string) ([]entity.Technician, error) {
		assert.Equal(t, "generator", speciality)
		return []entity.Technician{
			{Name: "Andi", Speciality: "generator", ExperienceYears: 7},
		}, nil
	}
	fx.catalog.searchSalesmen = func(ctx context.Context, speciality string) ([]entity.Salesman, error) {
		return []entity.Salesman{{Name: "Sari", Speciality: "generator"}}, nil
	}

	resp := askingRequest(t, fx, "My generator is broken and needs repair")

	assert.Equal(t, "salesman", resp.Debug.Category)

	require.Len(t, resp.Recommends.Technicians, 1)
	assert.Equal(t, "Andi", resp.Recommends.Technicians[0].Name)
	assert.Equal(t, "7", resp.Recommends.Technicians[0].ExperienceYears)
	require.Len(t, resp.Recommends.Salesman, 1)

	assert.Contains(t, resp.NextStep, "Contact technician")
	assert.Contains(t, resp.NextStep, "Contact sales")
}

func TestAnswerQuestionEmployees(t *testing.T) {
	fx := newServiceFixture(t)

	fx.catalog.searchEmployees = func(ctx context.Context, department, position string) ([]entity.Employee, error) {
		return []entity.Employee{
			{Name: "Rina", Position: "Manager", Department: "Finance"},
		}, nil
	}

	resp := askingRequest(t, fx, "Which department does the office manager work in?")

	assert.Equal(t, "employees", resp.Debug.Category)
	require.Len(t, resp.Recommends.Employees, 1)
	assert.Equal(t, "Rina", resp.Recommends.Employees[0].Name)
	assert.Contains(t, resp.NextStep, "View employee details")
}

func TestAnswerQuestionLookupFailureIsIsolated(t *testing.T) {
	fx := newServiceFixture(t)

	fx.catalog.searchProducts = func(ctx context.Context, query, category string) ([]entity.Product, error) {
		return nil, errors.New("db down")
	}
	fx.catalog.searchSalesmen = func(ctx context.Context, speciality string) ([]entity.Salesman, error) {
		return []entity.Salesman{{Name: "Sari"}}, nil
	}
	fx.catalog.searchTechnicians = func(ctx context.Context, speciality string) ([]entity.Technician, error) {
		return nil, errors.New("db down")
	}

	resp := askingRequest(t, fx, "My inverter is broken, who can repair it?")

	assert.NotEqual(t, apologyMessage, resp.BotMessage)
	assert.Empty(t, resp.Recommends.Products)
	assert.Empty(t, resp.Recommends.Technicians)
	require.Len(t, resp.Recommends.Salesman, 1)
}

func TestAnswerQuestionLLMFailureApologizes(t *testing.T) {
	fx := newServiceFixture(t)

	fx.llm.generateReply = func(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error) {
		return "", errors.New("model unavailable")
	}
	fx.catalog.searchProducts = func(ctx context.Context, query, category string) ([]entity.Product, error) {
		return []entity.Product{{Name: "Panel A"}}, nil
	}

	resp := askingRequest(t, fx, "What is the price of your solar panels?")

	assert.Equal(t, apologyMessage, resp.BotMessage)
	assert.Equal(t, []string{"Try again", "Start over"}, resp.NextStep)
	assert.Empty(t, resp.Recommends.Products)
}

func TestAnswerQuestionUsesCachedHistory(t *testing.T) {
	fx := newServiceFixture(t)

	fx.cache.history = []entity.ChatTurn{
		{User: "old question", Bot: "old answer"},
	}

	var gotHistory []entity.ChatTurn
	fx.llm.generateReply = func(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error) {
		gotHistory = history
		return "ok", nil
	}

	askingRequest(t, fx, "hello again")

	require.Len(t, gotHistory, 1)
	assert.Equal(t, "old question", gotHistory[0].User)
}

func TestAnswerQuestionSuppliedHistoryWinsOverCache(t *testing.T) {
	fx := newServiceFixture(t)

	fx.cache.history = []entity.ChatTurn{{User: "cached"}}

	var gotHistory []entity.ChatTurn
	fx.llm.generateReply = func(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error) {
		gotHistory = history
		return "ok", nil
	}

	token := advanceTo(t, fx, "1")
	_, err := fx.service.ProcessMessage(context.Background(), chat.ChatRequest{
		UserMessage:  "hello",
		SessionToken: token,
		ConversationHistory: []entity.ChatTurn{
			{User: "one"}, {User: "two"}, {User: "three"},
			{User: "four"}, {User: "five"}, {User: "six"},
		},
	})
	require.NoError(t, err)

	require.Len(t, gotHistory, historyWindow)
	assert.Equal(t, "two", gotHistory[0].User)
	assert.Equal(t, "six", gotHistory[4].User)
}

func TestProductCategoryHint(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"tell me about solar panels", "solar"},
		{"my generator hums", "generator"},
		{"inverter specs please", "inverter"},
		{"electric wiring help", "electrical"},
		{"random question", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, productCategoryHint(tc.message), tc.message)
	}
}

func TestHasProblemKeyword(t *testing.T) {
	assert.True(t, hasProblemKeyword("My panel is Not Working at all"))
	assert.True(t, hasProblemKeyword("need to troubleshoot this"))
	assert.False(t, hasProblemKeyword("what products do you sell"))
}
