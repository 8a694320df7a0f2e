package gemini

import (
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"metro-chatbot/internal/entity"
)

const embeddingModelName = "text-embedding-004"

type IGemini interface {
	GenerateReply(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {

	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) GenerateReply(ctx context.Context, systemPrompt string, history []entity.ChatTurn, userMessage string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)

	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	chat := model.StartChat()
	for _, turn := range history {
		if turn.User != "" {
			chat.History = append(chat.History, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(turn.User)},
			})
		}
		if turn.Bot != "" {
			chat.History = append(chat.History, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(turn.Bot)},
			})
		}
	}

	res, err := chat.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", err
	}

	return replyText(res)
}

// replyText pulls the text part out of a generation response. Content
// is nil on safety-blocked candidates, so it is checked before Parts.
func replyText(res *genai.GenerateContentResponse) (string, error) {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	model := g.client.EmbeddingModel(embeddingModelName)

	res, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}

	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, errors.New("empty embedding from Gemini API")
	}

	return res.Embedding.Values, nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
