package service

import (
	"context"
	"strings"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	notesAPIVerified = "VERIFICADO VÍA API MP"
	notesAIOnly      = "VALIDADO SOLO POR IA"

	paymentMethodMP = "Mercado Pago (Verified)"
)

// ValidationService runs the receipt validation workflow: AI extraction,
// payment-gateway cross-verification, and the operator's approve/reject
// decision followed by settlement. The service never approves on its own;
// apiVerified only informs the operator.
type ValidationService struct {
	ai         AIClient
	gateway    PaymentVerifier
	users      UserStore
	settlement *SettlementService
	settings   *SettingsService
	logger     *zap.Logger
}

func NewValidationService(
	ai AIClient,
	gateway PaymentVerifier,
	users UserStore,
	settlement *SettlementService,
	settings *SettingsService,
	logger *zap.Logger,
) *ValidationService {
	return &ValidationService{
		ai:         ai,
		gateway:    gateway,
		users:      users,
		settlement: settlement,
		settings:   settings,
		logger:     logger,
	}
}

// Validate analyzes a receipt image and, when the extraction looks valid
// and carries an external reference, cross-checks it against the payment
// gateway. AI failures fail closed: the operator sees an invalid result
// with zero confidence, never an error page. Gateway failures surface as an
// unverified result. Nothing is retried.
func (s *ValidationService) Validate(ctx context.Context, image []byte, mimeType string) *models.ValidationResult {
	model := s.settings.Get().WhatsApp.AIModel

	result, err := s.ai.ValidateReceipt(ctx, model, image, mimeType)
	if err != nil {
		s.logger.Warn("Receipt extraction failed", zap.Error(err))
		return &models.ValidationResult{IsValid: false, Confidence: 0, Error: err.Error()}
	}

	if result.IsValid && result.TransactionID != "" {
		check, err := s.gateway.VerifyPayment(ctx, result.TransactionID, result.Amount)
		if err != nil {
			s.logger.Warn("Payment cross-verification failed",
				zap.String("external_ref", result.TransactionID),
				zap.Error(err),
			)
			result.APIVerified = false
		} else {
			result.APIVerified = check.Verified
		}
	}

	return result
}

// Approve settles a validated receipt for the user matching targetPhone.
// With pendingTxID set it resolves that PENDING transaction, reusing its
// amount and type; otherwise it synthesizes a new APPROVED deposit tagged
// with how it was validated.
func (s *ValidationService) Approve(ctx context.Context, operatorID uuid.UUID, targetPhone string, result *models.ValidationResult, pendingTxID *uuid.UUID) (*models.Transaction, error) {
	targetPhone = strings.TrimSpace(targetPhone)
	if result == nil || result.Amount <= 0 || targetPhone == "" {
		return nil, ErrMissingApprovalData
	}

	user, err := s.resolveUser(ctx, targetPhone)
	if err != nil {
		return nil, err
	}

	if pendingTxID != nil {
		return s.settlement.ApprovePending(ctx, *pendingTxID, operatorID)
	}

	notes := notesAIOnly
	if result.APIVerified {
		notes = notesAPIVerified
	}

	tx := &models.Transaction{
		ID:            uuid.New(),
		UserID:        user.ID,
		Amount:        result.Amount,
		Type:          models.TypeDeposit,
		Status:        models.StatusApproved,
		PaymentMethod: paymentMethodMP,
		ExternalRef:   sanitizeUTF8(result.TransactionID),
		ProcessedBy:   &operatorID,
		Timestamp:     time.Now(),
		Notes:         notes,
	}

	if err := s.settlement.RecordApproved(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Reject resolves a PENDING transaction as rejected, with no balance effect.
func (s *ValidationService) Reject(ctx context.Context, operatorID, txID uuid.UUID) (*models.Transaction, error) {
	return s.settlement.Reject(ctx, txID, operatorID)
}

// resolveUser matches the typed phone by substring containment against
// stored numbers, preferring an exact match. Containment is how the cash
// desk has always matched partially typed numbers; it is ambiguous when one
// number is a prefix or suffix of another (first match wins, newest user
// first).
func (s *ValidationService) resolveUser(ctx context.Context, targetPhone string) (*models.User, error) {
	if user, err := s.users.GetByPhone(ctx, targetPhone); err == nil {
		return user, nil
	}

	candidates, err := s.users.SearchByPhone(ctx, targetPhone)
	if err != nil || len(candidates) == 0 {
		return nil, ErrUserNotFound
	}
	return candidates[0], nil
}
