package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metro-chatbot/internal/entity"
)

func newTestCodec(t *testing.T) ICodec {
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")
	codec, err := NewCodec()
	require.NoError(t, err)
	return codec
}

func TestCodecRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	original := entity.ChatSession{
		ID:           "01J0TESTSESSION",
		State:        entity.StateRegisteringName,
		PendingEmail: "budi@example.com",
	}

	token, err := codec.Encode(original)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.State, decoded.State)
	assert.Equal(t, original.PendingEmail, decoded.PendingEmail)
	assert.Empty(t, decoded.UserEmail)
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Encode(entity.ChatSession{ID: "01J0TESTSESSION", State: entity.StateActive})
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "xxxx"
	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsForeignSecret(t *testing.T) {
	codec := newTestCodec(t)
	token, err := codec.Encode(entity.ChatSession{ID: "01J0TESTSESSION", State: entity.StateActive})
	require.NoError(t, err)

	t.Setenv("SESSION_TOKEN_SECRET", "another-secret")
	other, err := NewCodec()
	require.NoError(t, err)

	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.Decode("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewCodecRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "")

	_, err := NewCodec()
	assert.ErrorIs(t, err, ErrSecretNotConfigured)
}
