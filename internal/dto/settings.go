package dto

import (
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
)

type UpdateSettingsRequest struct {
	Payment  models.PaymentSettings  `json:"payment"`
	WhatsApp models.WhatsAppSettings `json:"whatsapp"`
}

type SettingsResponse struct {
	Payment   models.PaymentSettings  `json:"payment"`
	WhatsApp  models.WhatsAppSettings `json:"whatsapp"`
	UpdatedAt string                  `json:"updated_at"`
}

func NewSettingsResponse(s *models.AppSettings) SettingsResponse {
	return SettingsResponse{
		Payment:   s.Payment,
		WhatsApp:  s.WhatsApp,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

type AIStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
