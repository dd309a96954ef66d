package dto

import (
	"time"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
)

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role" validate:"omitempty,oneof=ADMIN CASHIER"`
}

type ImportUsersRequest struct {
	Users []ImportUserRow `json:"users" validate:"required,dive"`
}

type ImportUserRow struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ImportUsersResponse struct {
	Applied  int `json:"applied"`
	Received int `json:"received"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE BLOCKED"`
}

type UserResponse struct {
	ID               string  `json:"id"`
	Phone            string  `json:"phone"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Balance          float64 `json:"balance"`
	Status           string  `json:"status"`
	AutopilotEnabled bool    `json:"autopilot_enabled"`
	CreatedAt        string  `json:"created_at"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:               user.ID.String(),
		Phone:            user.Phone,
		Name:             user.Name,
		Role:             string(user.Role),
		Balance:          user.Balance,
		Status:           string(user.Status),
		AutopilotEnabled: user.AutopilotEnabled,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}

func NewUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = NewUserResponse(user)
	}
	return responses
}
