package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"go.uber.org/zap"
)

// StubAIClient stands in when no Gemini API key is configured. Receipt
// validation returns an optimistic low-confidence result and chat
// suggestions fall back to a canned greeting, so the rest of the workflow
// stays operable in demos and local development.
type StubAIClient struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStubAIClient(logger *zap.Logger) *StubAIClient {
	return &StubAIClient{
		logger: logger,
		now:    time.Now,
	}
}

func (s *StubAIClient) Configured() bool { return false }

func (s *StubAIClient) ValidateReceipt(ctx context.Context, model string, image []byte, mimeType string) (*models.ValidationResult, error) {
	s.logger.Warn("Stub AI in use, returning mock receipt validation")
	return &models.ValidationResult{
		IsValid:       true,
		Amount:        1000,
		TransactionID: fmt.Sprintf("MOCK-%d", s.now().UnixMilli()),
		SenderName:    "Usuario de Prueba",
		Date:          s.now().Format(time.RFC3339),
		Confidence:    0.5,
	}, nil
}

func (s *StubAIClient) SuggestReply(ctx context.Context, model, persona, chatContext string) (string, error) {
	return "Hola, ¿en qué puedo ayudarte hoy? 🎰", nil
}

func (s *StubAIClient) Ping(ctx context.Context) error {
	return fmt.Errorf("AI backend not configured")
}
