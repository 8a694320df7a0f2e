package knowledgeService

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextEmpty(t *testing.T) {
	assert.Nil(t, splitText(""))
	assert.Nil(t, splitText("   \n\n  "))
}

func TestSplitTextShortDocumentIsSingleChunk(t *testing.T) {
	chunks := splitText("  Solar panels convert sunlight into electricity.  ")

	require.Len(t, chunks, 1)
	assert.Equal(t, "Solar panels convert sunlight into electricity.", chunks[0])
}

func TestSplitTextParagraphsOverlap(t *testing.T) {
	paragraphs := []string{
		strings.Repeat("a", 400),
		strings.Repeat("b", 400),
		strings.Repeat("c", 400),
		strings.Repeat("d", 400),
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := splitText(text)

	require.Len(t, chunks, 3)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), chunkSize, "chunk %d too long", i)
	}

	// First chunk holds the first two paragraphs whole.
	assert.True(t, strings.HasPrefix(chunks[0], paragraphs[0]))
	assert.True(t, strings.HasSuffix(chunks[0], paragraphs[1]))

	// Each following chunk opens with the overlap tail of its predecessor.
	assert.True(t, strings.HasPrefix(chunks[1], strings.Repeat("b", chunkOverlap)))
	assert.True(t, strings.HasSuffix(chunks[1], paragraphs[2]))
	assert.True(t, strings.HasPrefix(chunks[2], strings.Repeat("c", chunkOverlap)))
	assert.True(t, strings.HasSuffix(chunks[2], paragraphs[3]))
}

func TestSplitTextNoSeparatorsFallsBackToSize(t *testing.T) {
	text := strings.Repeat("x", 2500)

	chunks := splitText(text)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], chunkSize)
	assert.Len(t, chunks[1], chunkSize)
	assert.Len(t, chunks[2], 2500-2*(chunkSize-chunkOverlap))
}

func TestSplitTextEveryChunkWithinLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString(strings.Repeat("word ", 60))
		sb.WriteString("\n")
	}

	chunks := splitText(sb.String())

	require.NotEmpty(t, chunks)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), chunkSize, "chunk %d too long", i)
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}
