package chatService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain address", "budi@example.com", "budi@example.com"},
		{"embedded in sentence", "sure, it's budi.santoso@mail.co.id thanks", "budi.santoso@mail.co.id"},
		{"with plus tag", "reach me at dev+test@example.org", "dev+test@example.org"},
		{"no address", "i do not have one", ""},
		{"missing tld", "budi@example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare ten digits", "0812345678", "0812345678"},
		{"in a sentence", "my number is 0812345678 ok", "0812345678"},
		{"dashed grouping", "call 081-234-5678", "0812345678"},
		{"dotted grouping", "081.234.5678", "0812345678"},
		{"too short", "12345", ""},
		{"words only", "no phone sorry", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain name", "Budi Santoso", "Budi Santoso"},
		{"introduction prefix", "my name is budi santoso", "Budi Santoso"},
		{"i'm prefix", "I'm budi", "Budi"},
		{"caps cleanup", "NAME: BUDI", "Budi"},
		{"keeps at most three words", "budi santoso wijaya kusuma", "Budi Santoso Wijaya"},
		{"drops digits", "budi123", ""},
		{"drops single letters", "b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractName(tt.text))
		})
	}
}
