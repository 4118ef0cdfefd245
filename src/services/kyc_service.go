package services

import (
	"context"
	"errors"

	"greenvest/src/models"
	"greenvest/src/repositories"
	"greenvest/src/schemas"

	"github.com/jackc/pgx/v5"
)

// KycProviderManual is the mocked verification provider. A real provider
// integration (stripe, persona, ...) would replace the mock-verify flow with
// provider webhooks.
const KycProviderManual = "manual"

type KycServiceI interface {
	KycVerifier
	Status(ctx context.Context, userID int64) (*schemas.KycStatusResponse, error)
	Start(ctx context.Context, userID int64) (*schemas.KycActionResponse, bool, error)
	MockVerify(ctx context.Context, userID int64) (*schemas.KycActionResponse, error)
}

type KycService struct {
	kycRepo repositories.KycRepository
}

func NewKycService(kycRepo repositories.KycRepository) *KycService {
	return &KycService{kycRepo: kycRepo}
}

func (s *KycService) IsVerified(ctx context.Context, userID int64) (bool, error) {
	return s.kycRepo.IsVerified(ctx, userID)
}

func (s *KycService) Status(ctx context.Context, userID int64) (*schemas.KycStatusResponse, error) {
	kyc, err := s.kycRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &schemas.KycStatusResponse{Status: models.KycStatusNotStarted, IsVerified: false}, nil
		}
		return nil, err
	}

	resp := &schemas.KycStatusResponse{
		Status:     kyc.Status,
		IsVerified: kyc.IsVerified(),
		Provider:   kyc.Provider,
		VerifiedAt: kyc.VerifiedAt,
	}
	// A stale reason from an earlier failed attempt stays private.
	if kyc.HasFailed() {
		resp.FailureReason = kyc.FailureReason
	}
	return resp, nil
}

// Start opens (or restarts) the user's verification. The second return value
// reports whether a new pending record was created, as opposed to the user
// already being verified.
func (s *KycService) Start(ctx context.Context, userID int64) (*schemas.KycActionResponse, bool, error) {
	existing, err := s.kycRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	if existing != nil && existing.IsVerified() {
		return &schemas.KycActionResponse{
			Message: "KYC already verified",
			Kyc: &schemas.KycStatusResponse{
				Status:     existing.Status,
				IsVerified: true,
				VerifiedAt: existing.VerifiedAt,
			},
		}, false, nil
	}

	if existing != nil && existing.IsPending() {
		return &schemas.KycActionResponse{
			Message: "KYC verification already in progress",
			Kyc: &schemas.KycStatusResponse{
				Status:   existing.Status,
				Provider: existing.Provider,
			},
		}, false, nil
	}

	// New users and failed attempts (re)enter the pending state.
	kyc, err := s.kycRepo.Upsert(ctx, userID, KycProviderManual, models.KycStatusPending)
	if err != nil {
		return nil, false, err
	}

	return &schemas.KycActionResponse{
		Message: "KYC verification started",
		Kyc: &schemas.KycStatusResponse{
			Status:   kyc.Status,
			Provider: kyc.Provider,
		},
	}, true, nil
}

// MockVerify marks the user's pending verification as verified. Handlers
// must keep this off production routes.
func (s *KycService) MockVerify(ctx context.Context, userID int64) (*schemas.KycActionResponse, error) {
	existing, err := s.kycRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKycNotFound
		}
		return nil, err
	}

	if existing.IsVerified() {
		return &schemas.KycActionResponse{Message: "KYC already verified"}, nil
	}

	kyc, err := s.kycRepo.MarkVerified(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &schemas.KycActionResponse{
		Message: "KYC verified successfully (mock)",
		Kyc: &schemas.KycStatusResponse{
			Status:     kyc.Status,
			IsVerified: true,
			VerifiedAt: kyc.VerifiedAt,
		},
	}, nil
}
