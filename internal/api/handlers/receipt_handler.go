package handlers

import (
	"io"

	"github.com/nubetechmdq-wq/crmcasino/internal/dto"
	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	validation *service.ValidationService
	logger     *zap.Logger
}

func NewReceiptHandler(validation *service.ValidationService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		validation: validation,
		logger:     logger,
	}
}

// ValidateReceipt godoc
// @Summary Validate a payment receipt image
// @Description Extract receipt fields with AI and cross-check them against the payment gateway
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image (JPEG or PNG)"
// @Security Bearer
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/receipts/validate [post]
func (h *ReceiptHandler) ValidateReceipt(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result := h.validation.Validate(c.Context(), image, mimeType)
	return c.JSON(dto.NewValidationResponse(result))
}

// ApproveReceipt godoc
// @Summary Approve a validated receipt
// @Description Credit the matched player, resolving a pending transaction or recording a new approved deposit
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body dto.ApproveReceiptRequest true "Approval request"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/receipts/approve [post]
func (h *ReceiptHandler) ApproveReceipt(c *fiber.Ctx) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ApproveReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var pendingTxID *uuid.UUID
	if req.PendingTxID != "" {
		id, err := uuid.Parse(req.PendingTxID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid pending transaction ID",
			})
		}
		pendingTxID = &id
	}

	result := &models.ValidationResult{
		IsValid:       true,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		APIVerified:   req.APIVerified,
	}

	tx, err := h.validation.Approve(c.Context(), operatorID, req.TargetPhone, result, pendingTxID)
	if err != nil {
		switch err {
		case service.ErrMissingApprovalData:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Target phone and a positive amount are required",
			})
		case service.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No player matches that phone",
			})
		case service.ErrTransactionNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		case service.ErrTransactionClosed:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Transaction already resolved",
			})
		}
		h.logger.Error("Receipt approval failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to approve receipt",
		})
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// RejectReceipt godoc
// @Summary Reject a pending receipt transaction
// @Description Mark a pending transaction as rejected, with no balance effect
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body dto.RejectReceiptRequest true "Rejection request"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/receipts/reject [post]
func (h *ReceiptHandler) RejectReceipt(c *fiber.Ctx) error {
	operatorID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.RejectReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	txID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction ID",
		})
	}

	tx, err := h.validation.Reject(c.Context(), operatorID, txID)
	if err != nil {
		switch err {
		case service.ErrTransactionNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Transaction not found",
			})
		case service.ErrTransactionClosed:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Transaction already resolved",
			})
		}
		h.logger.Error("Receipt rejection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reject receipt",
		})
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
