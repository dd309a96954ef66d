package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStubValidateReceipt(t *testing.T) {
	stub := NewStubAIClient(zap.NewNop())
	stub.now = func() time.Time { return time.UnixMilli(1700000000000) }

	result, err := stub.ValidateReceipt(context.Background(), "any-model", []byte("img"), "image/png")

	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, 1000.0, result.Amount)
	assert.Equal(t, "MOCK-1700000000000", result.TransactionID)
	assert.Equal(t, 0.5, result.Confidence)
	assert.False(t, stub.Configured())
}

func TestStubPingReportsNotConfigured(t *testing.T) {
	stub := NewStubAIClient(zap.NewNop())
	assert.Error(t, stub.Ping(context.Background()))
}

func TestCleanJSONStripsMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"isValid":true}`, `{"isValid":true}`},
		{"json fence", "```json\n{\"isValid\":true}\n```", `{"isValid":true}`},
		{"bare fence", "```\n{\"isValid\":true}\n```", `{"isValid":true}`},
		{"surrounding whitespace", "  {\"isValid\":true}\n", `{"isValid":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}
