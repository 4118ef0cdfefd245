package schemas

import (
	"time"
)

type KycStatusResponse struct {
	Status        string     `json:"status"`
	IsVerified    bool       `json:"is_verified"`
	Provider      string     `json:"provider,omitempty"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	FailureReason *string    `json:"failure_reason,omitempty"`
}

type KycActionResponse struct {
	Message string             `json:"message"`
	Kyc     *KycStatusResponse `json:"kyc,omitempty"`
}
