package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const receiptPrompt = `Analyze this Mercado Pago receipt screenshot and extract the payment details.
Verify if it looks authentic. Return only a JSON object.`

// GeminiClient talks to the Gemini API for receipt extraction and chat
// reply suggestions.
type GeminiClient struct {
	client       *genai.Client
	defaultModel string
	logger       *zap.Logger
}

func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Gemini client initialized", zap.String("default_model", cfg.DefaultModel))

	return &GeminiClient{
		client:       client,
		defaultModel: cfg.DefaultModel,
		logger:       logger,
	}, nil
}

func (g *GeminiClient) Configured() bool { return true }

func (g *GeminiClient) ValidateReceipt(ctx context.Context, model string, image []byte, mimeType string) (*models.ValidationResult, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(receiptPrompt),
		}, genai.RoleUser),
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"isValid":       {Type: genai.TypeBoolean},
				"amount":        {Type: genai.TypeNumber},
				"transactionId": {Type: genai.TypeString},
				"senderName":    {Type: genai.TypeString},
				"date":          {Type: genai.TypeString},
				"confidence":    {Type: genai.TypeNumber},
			},
			Required: []string{"isValid", "amount", "transactionId", "confidence"},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.resolveModel(model), contents, genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	var result models.ValidationResult
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse receipt analysis: %w, content: %s", err, raw)
	}

	g.logger.Info("Receipt analyzed",
		zap.Bool("is_valid", result.IsValid),
		zap.Float64("amount", result.Amount),
		zap.Float64("confidence", result.Confidence),
	)

	return &result, nil
}

func (g *GeminiClient) SuggestReply(ctx context.Context, model, persona, chatContext string) (string, error) {
	prompt := fmt.Sprintf(
		"INSTRUCCIONES DE PERSONALIDAD:\n%s\n\nHISTORIAL RECIENTE DEL CHAT:\n%s\n\nResponde solo con el texto del mensaje para el jugador.",
		persona, chatContext,
	)

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		TopP:        genai.Ptr[float32](0.9),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.resolveModel(model), genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (g *GeminiClient) Ping(ctx context.Context) error {
	resp, err := g.client.Models.GenerateContent(ctx, g.defaultModel, genai.Text("ping"), nil)
	if err != nil {
		return err
	}
	if _, err := responseText(resp); err != nil {
		return err
	}
	return nil
}

func (g *GeminiClient) resolveModel(model string) string {
	if model == "" {
		return g.defaultModel
	}
	return model
}

// responseText flattens the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no text in model response")
	}
	return sb.String(), nil
}

// cleanJSON strips markdown code fences the model sometimes wraps around
// JSON output.
func cleanJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
