package service

import (
	"context"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/pkg/config"

	"go.uber.org/zap"
)

// AIClient is the image-understanding and chat-suggestion collaborator.
// The model name comes from the saved WhatsApp/AI settings on every call so
// an admin can switch models without a restart.
type AIClient interface {
	// ValidateReceipt reads a payment receipt image and extracts structured
	// payment details.
	ValidateReceipt(ctx context.Context, model string, image []byte, mimeType string) (*models.ValidationResult, error)

	// SuggestReply drafts a WhatsApp reply for a player given the persona
	// instructions and the recent chat transcript.
	SuggestReply(ctx context.Context, model, persona, chatContext string) (string, error)

	// Ping checks that the AI backend is reachable.
	Ping(ctx context.Context) error

	// Configured reports whether a real AI backend is wired in.
	Configured() bool
}

// NewAIClient selects the Gemini implementation when an API key is
// configured and the canned-response stub otherwise, so callers never need
// presence checks.
func NewAIClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (AIClient, error) {
	if cfg.APIKey == "" {
		logger.Warn("Gemini API key not configured, using stub assistant")
		return NewStubAIClient(logger), nil
	}
	return NewGeminiClient(ctx, cfg, logger)
}
