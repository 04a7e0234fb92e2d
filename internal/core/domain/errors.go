package domain

import "errors"

// Ledger and directory errors.
var (
	ErrInsufficientBalance = errors.New("insufficient connects balance")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrAssignmentFailed    = errors.New("directory id assignment failed")
	ErrStoreUnavailable    = errors.New("document store unavailable")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidRole         = errors.New("invalid role")
	ErrLedgerBusy          = errors.New("ledger update contended, retry")

	// ErrIdempotencyKeyReused is returned when a request key already recorded
	// for one mutation comes back with a different type or amount.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused for a different request")
)

// Account errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
)
