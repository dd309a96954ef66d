package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleCashier UserRole = "CASHIER"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

// User is both a back-office operator (admin/cashier) and a player contact.
// Phone is the unique WhatsApp contact key. Balance is mutated only through
// approved transactions.
type User struct {
	ID               uuid.UUID  `db:"id"`
	Phone            string     `db:"phone"`
	Name             string     `db:"name"`
	Password         string     `db:"password"`
	Role             UserRole   `db:"role"`
	Balance          float64    `db:"balance"`
	Status           UserStatus `db:"status"`
	AutopilotEnabled bool       `db:"autopilot_enabled"`
	CreatedAt        time.Time  `db:"created_at"`
}
