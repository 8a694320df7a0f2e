package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyText(t *testing.T) {
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("hello there")}}},
		},
	}

	text, err := replyText(res)
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)
}

func TestReplyTextNoCandidates(t *testing.T) {
	_, err := replyText(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestReplyTextBlockedCandidateHasNilContent(t *testing.T) {
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{FinishReason: genai.FinishReasonSafety},
		},
	}

	_, err := replyText(res)
	assert.Error(t, err)
}

func TestReplyTextEmptyParts(t *testing.T) {
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{}},
		},
	}

	_, err := replyText(res)
	assert.Error(t, err)
}
