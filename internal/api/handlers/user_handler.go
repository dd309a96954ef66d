package handlers

import (
	"github.com/nubetechmdq-wq/crmcasino/internal/dto"
	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers godoc
// @Summary List users
// @Description List all players and operators, newest first
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list users",
		})
	}

	return c.JSON(dto.NewUserResponses(users))
}

// GetUser godoc
// @Summary Get a user
// @Description Get a single user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := h.userService.Get(c.Context(), id)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to get user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get user",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}

// CreateUser godoc
// @Summary Create a user
// @Description Register a player contact with a zero starting balance
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User request"
// @Security Bearer
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	role := models.RoleCashier
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	user, err := h.userService.Create(c.Context(), req.Name, req.Phone, role)
	if err != nil {
		switch err {
		case service.ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name and phone are required",
			})
		case service.ErrUserExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User already exists",
			})
		}
		h.logger.Error("Failed to create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

// ImportUsers godoc
// @Summary Import contacts in bulk
// @Description Upsert contacts keyed by phone. Existing users keep their balance; blank rows are skipped.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ImportUsersRequest true "Import request"
// @Security Bearer
// @Success 200 {object} dto.ImportUsersResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/users/import [post]
func (h *UserHandler) ImportUsers(c *fiber.Ctx) error {
	var req dto.ImportUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rows := make([]service.ImportedUser, len(req.Users))
	for i, row := range req.Users {
		rows[i] = service.ImportedUser{Name: row.Name, Phone: row.Phone}
	}

	applied, err := h.userService.Import(c.Context(), rows)
	if err != nil {
		h.logger.Error("User import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to import users",
		})
	}

	return c.JSON(dto.ImportUsersResponse{Applied: applied, Received: len(req.Users)})
}

// ToggleAutopilot godoc
// @Summary Toggle AI autopilot for a user
// @Description Flip the per-user automatic AI reply flag
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/users/{id}/autopilot [post]
func (h *UserHandler) ToggleAutopilot(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := h.userService.ToggleAutopilot(c.Context(), id)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to toggle autopilot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle autopilot",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}

// UpdateUserStatus godoc
// @Summary Block or unblock a user
// @Description Set a user's status to ACTIVE or BLOCKED
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "Status request"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/users/{id}/status [put]
func (h *UserHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	status := models.UserStatus(req.Status)
	if status != models.UserStatusActive && status != models.UserStatusBlocked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be ACTIVE or BLOCKED",
		})
	}

	user, err := h.userService.SetStatus(c.Context(), id, status)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to update user status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user status",
		})
	}

	return c.JSON(dto.NewUserResponse(user))
}
