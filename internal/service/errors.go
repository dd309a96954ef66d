package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionClosed   = errors.New("transaction already resolved")

	ErrMissingApprovalData = errors.New("approval requires a valid result, an amount and a target phone")
	ErrMissingFields       = errors.New("required fields are missing")

	ErrEmptyBroadcastMessage = errors.New("broadcast message is empty")
	ErrNoRecipients          = errors.New("broadcast has no recipients")
)
