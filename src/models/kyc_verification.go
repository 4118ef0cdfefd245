package models

import (
	"time"
)

const (
	KycStatusNotStarted = "not_started"
	KycStatusPending    = "pending"
	KycStatusVerified   = "verified"
	KycStatusFailed     = "failed"
)

type KycVerification struct {
	ID            int64                  `db:"id"`
	UserID        int64                  `db:"user_id"`
	Provider      string                 `db:"provider"`
	Status        string                 `db:"status"`
	ReferenceID   *string                `db:"reference_id"`
	FailureReason *string                `db:"failure_reason"`
	Metadata      map[string]interface{} `db:"metadata"`
	VerifiedAt    *time.Time             `db:"verified_at"`
	CreatedAt     time.Time              `db:"created_at"`
	UpdatedAt     time.Time              `db:"updated_at"`
}

func (k *KycVerification) IsVerified() bool {
	return k.Status == KycStatusVerified
}

func (k *KycVerification) IsPending() bool {
	return k.Status == KycStatusPending
}

func (k *KycVerification) HasFailed() bool {
	return k.Status == KycStatusFailed
}
