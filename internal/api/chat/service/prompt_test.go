package chatService

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"metro-chatbot/internal/api/chat"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/classifier"
)

var (
	pricePattern       = regexp.MustCompile(`\d+[.,]\d{2}`)
	contactDigitsQuery = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}|\b\d{10}\b`)
)

func leakyFetchedData() fetchedData {
	return fetchedData{
		Products: []entity.Product{
			{Name: "Panel A", Category: "solar", Price: 1299.99, Description: "300W monocrystalline"},
		},
		Technicians: []entity.Technician{
			{Name: "Andi", Speciality: "solar", Contact: "081-234-5678", Email: "andi@metro.example", ExperienceYears: 7},
		},
		Salesmen: []entity.Salesman{
			{Name: "Sari", Speciality: "solar", Contact: "0812345678", Email: "sari@metro.example"},
		},
		Employees: []entity.Employee{
			{Name: "Rina", Position: "Manager", Department: "Sales", Contact: "0819876543", Email: "rina@metro.example"},
		},
	}
}

func TestBuildAnswerPromptSummarizesByNameOnly(t *testing.T) {
	prompt := buildAnswerPrompt("what solar panels do you have?", leakyFetchedData(), classifier.VerbosityDetailed, nil)

	assert.Contains(t, prompt, "Panel A")
	assert.Contains(t, prompt, "Andi")
	assert.Contains(t, prompt, "Sari")
	assert.Contains(t, prompt, "Rina")

	assert.NotContains(t, prompt, "1299")
	assert.NotContains(t, prompt, "@metro.example")
	assert.False(t, pricePattern.MatchString(prompt), "prompt leaks a price: %s", prompt)
	assert.False(t, contactDigitsQuery.MatchString(prompt), "prompt leaks a contact number: %s", prompt)
}

func TestBuildAnswerPromptVerbosity(t *testing.T) {
	short := buildAnswerPrompt("hi", fetchedData{}, classifier.VerbosityShort, nil)
	detailed := buildAnswerPrompt("hi", fetchedData{}, classifier.VerbosityDetailed, nil)

	assert.Contains(t, short, "1-3 sentences")
	assert.Contains(t, detailed, "2-4 sentences")
}

func TestBuildAnswerPromptKnowledgeExcerpts(t *testing.T) {
	prompt := buildAnswerPrompt("warranty terms?", fetchedData{}, classifier.VerbosityShort,
		[]string{"Panels carry a 25 year warranty.", "Inverters carry 10 years."})

	assert.Contains(t, prompt, "knowledge base excerpts")
	assert.Contains(t, prompt, "1. Panels carry a 25 year warranty.")
	assert.Contains(t, prompt, "2. Inverters carry 10 years.")
}

func TestBuildSystemPromptForbidsInlineContactsAndPrices(t *testing.T) {
	prompt := buildSystemPrompt(&chat.UserProfile{Name: "Sari", Email: "sari@example.com"})

	assert.Contains(t, prompt, "NEVER list contact details, phone numbers, emails, or prices")
	assert.Contains(t, prompt, "Sari")
}

func TestAnswerQuestionLLMInputCarriesNoPricesOrContacts(t *testing.T) {
	fx := newServiceFixture(t)

	fx.catalog.searchProducts = func(ctx context.Context, query, category string) ([]entity.Product, error) {
		return leakyFetchedData().Products, nil
	}
	fx.catalog.searchTechnicians = func(ctx context.Context, speciality string) ([]entity.Technician, error) {
		return leakyFetchedData().Technicians, nil
	}

	var llmInput string
	fx.llm.generateReply = func(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error) {
		llmInput = systemPrompt + "\n" + userMessage
		return "I found a few products that match; see the cards below.", nil
	}

	resp := askingRequest(t, fx, "solar panel prices and repair help")

	assert.False(t, pricePattern.MatchString(llmInput), "model input leaks a price: %s", llmInput)
	assert.False(t, contactDigitsQuery.MatchString(llmInput), "model input leaks a contact number: %s", llmInput)
	assert.NotContains(t, llmInput, "@metro.example")

	// The cards still carry the structured values for the client UI.
	assert.False(t, pricePattern.MatchString(resp.BotMessage))
	assert.False(t, contactDigitsQuery.MatchString(resp.BotMessage))
	assert.NotEmpty(t, resp.Recommends.Products)
}
