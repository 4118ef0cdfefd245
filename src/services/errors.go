package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError is a client-correctable rejection. The field mirrors the
// request attribute the caller has to fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

var (
	ErrMissingIdempotencyKey = &ValidationError{Field: "idempotency_key", Message: "Missing Idempotency-Key header."}
	ErrKycRequired           = &ValidationError{Field: "kyc", Message: "Please complete KYC verification before investing."}
	ErrOfferingNotOpen       = &ValidationError{Field: "offering", Message: "This offering is not currently active."}
	ErrInvalidAmount         = &ValidationError{Field: "amount", Message: "Amount must be greater than 0."}
	// ErrInvalidOfferingConfig flags inconsistent server data (non-positive
	// share price), not a caller mistake.
	ErrInvalidOfferingConfig = &ValidationError{Field: "offering", Message: "Offering share price is invalid."}

	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrOfferingNotFound = &NotFoundError{Entity: "offering"}
	ErrProjectNotFound  = &NotFoundError{Entity: "project"}
	ErrKycNotFound      = &NotFoundError{Entity: "kyc verification"}
)

// BelowMinimumError rejects amounts under the offering's minimum investment.
func BelowMinimumError(minimum decimal.Decimal) *ValidationError {
	return &ValidationError{
		Field:   "amount",
		Message: fmt.Sprintf("Minimum investment is %s.", minimum.StringFixed(2)),
	}
}

// InsufficientSharesError rejects requests that exceed the remaining capped
// shares. The message carries the amount still available.
func InsufficientSharesError(available decimal.Decimal) *ValidationError {
	return &ValidationError{
		Field:   "amount",
		Message: fmt.Sprintf("Not enough shares available. Available: %s.", available.String()),
	}
}
