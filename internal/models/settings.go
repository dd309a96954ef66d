package models

import "time"

// PaymentSettings holds the Mercado Pago collection account shown to
// players and the access token used for payment lookups.
type PaymentSettings struct {
	HolderName    string `json:"holder_name"`
	Alias         string `json:"alias"`
	CVU           string `json:"cvu"`
	BankName      string `json:"bank_name"`
	IsActive      bool   `json:"is_active"`
	MPAccessToken string `json:"mp_access_token,omitempty"`
}

// WhatsAppSettings holds the WhatsApp Business connection and the AI
// assistant configuration (persona prompt, model selection).
type WhatsAppSettings struct {
	AccessToken     string `json:"access_token"`
	PhoneNumberID   string `json:"phone_number_id"`
	WABAID          string `json:"waba_id"`
	VerifyToken     string `json:"verify_token"`
	WebhookURL      string `json:"webhook_url"`
	IsConnected     bool   `json:"is_connected"`
	GlobalAutopilot bool   `json:"global_autopilot"`
	AIPrompt        string `json:"ai_prompt"`
	AIModel         string `json:"ai_model"`
	AIStatus        string `json:"ai_status"`
}

// AppSettings is the persisted application configuration. It is loaded at
// startup and passed explicitly to the components that need it; there is no
// package-global settings state.
type AppSettings struct {
	Payment   PaymentSettings  `json:"payment"`
	WhatsApp  WhatsAppSettings `json:"whatsapp"`
	UpdatedAt time.Time        `json:"updated_at"`
}

const defaultAIPrompt = `Eres el asistente oficial de la casa.
Tu tono debe ser emocionante, profesional y persuasivo. Usa emojis de casino (🎰, 💰, 🔥).

Reglas:
1. Si el jugador pregunta cómo cargar saldo, pásale estos datos:
Titular: {{titular}}
Alias: {{alias}}
2. Si el jugador envía un comprobante, agradécele y dile que un cajero lo validará en segundos.
3. Si el jugador pregunta por su balance, dile que tiene ${{saldo}} disponibles.
4. Siempre termina invitándolo a jugar a sus slots favoritos.`

// DefaultSettings returns the settings used until an admin saves their own.
func DefaultSettings() *AppSettings {
	return &AppSettings{
		Payment: PaymentSettings{
			HolderName: "FLOWBI OFICIAL",
			Alias:      "flowbi.mp",
			CVU:        "0000003100012345678901",
			BankName:   "Mercado Pago",
			IsActive:   true,
		},
		WhatsApp: WhatsAppSettings{
			VerifyToken:     "flowbi_secure_token_2024",
			WebhookURL:      "https://api.flowbi.crm/webhooks/whatsapp",
			IsConnected:     false,
			GlobalAutopilot: false,
			AIPrompt:        defaultAIPrompt,
			AIModel:         "gemini-3-flash-preview",
			AIStatus:        "ONLINE",
		},
	}
}
