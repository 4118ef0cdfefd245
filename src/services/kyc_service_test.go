package services_test

import (
	"context"
	"testing"
	"time"

	"greenvest/src/models"
	"greenvest/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKycEnv() (*memStore, *services.KycService) {
	store := newMemStore()
	return store, services.NewKycService(&fakeKycRepo{store: store})
}

func TestKycStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user reads as not started", func(t *testing.T) {
		_, service := newKycEnv()

		status, err := service.Status(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.KycStatusNotStarted, status.Status)
		assert.False(t, status.IsVerified)
	})

	t.Run("failed verification carries the reason", func(t *testing.T) {
		store, service := newKycEnv()
		reason := "document unreadable"
		store.kyc[1] = &models.KycVerification{
			ID: 1, UserID: 1, Provider: services.KycProviderManual,
			Status: models.KycStatusFailed, FailureReason: &reason,
		}

		status, err := service.Status(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.KycStatusFailed, status.Status)
		require.NotNil(t, status.FailureReason)
		assert.Equal(t, reason, *status.FailureReason)
	})

	t.Run("verified verification omits any stale reason", func(t *testing.T) {
		store, service := newKycEnv()
		reason := "document unreadable"
		verifiedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		store.kyc[1] = &models.KycVerification{
			ID: 1, UserID: 1, Provider: services.KycProviderManual,
			Status: models.KycStatusVerified, FailureReason: &reason, VerifiedAt: &verifiedAt,
		}

		status, err := service.Status(ctx, 1)
		require.NoError(t, err)
		assert.True(t, status.IsVerified)
		assert.Nil(t, status.FailureReason)
		assert.Equal(t, &verifiedAt, status.VerifiedAt)
	})
}

func TestKycStart(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending verification", func(t *testing.T) {
		store, service := newKycEnv()

		result, created, err := service.Start(ctx, 1)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "KYC verification started", result.Message)
		assert.Equal(t, models.KycStatusPending, store.kyc[1].Status)
		assert.Equal(t, services.KycProviderManual, store.kyc[1].Provider)
	})

	t.Run("pending verification is not reset", func(t *testing.T) {
		store, service := newKycEnv()
		store.kyc[1] = &models.KycVerification{
			ID: 1, UserID: 1, Provider: services.KycProviderManual,
			Status: models.KycStatusPending,
		}

		result, created, err := service.Start(ctx, 1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "KYC verification already in progress", result.Message)
	})

	t.Run("verified user is not restarted", func(t *testing.T) {
		store, service := newKycEnv()
		store.kyc[1] = &models.KycVerification{
			ID: 1, UserID: 1, Status: models.KycStatusVerified,
		}

		result, created, err := service.Start(ctx, 1)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "KYC already verified", result.Message)
		assert.Equal(t, models.KycStatusVerified, store.kyc[1].Status)
	})

	t.Run("failed verification can be retried", func(t *testing.T) {
		store, service := newKycEnv()
		store.kyc[1] = &models.KycVerification{
			ID: 1, UserID: 1, Status: models.KycStatusFailed,
		}

		result, created, err := service.Start(ctx, 1)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "KYC verification started", result.Message)
		assert.Equal(t, models.KycStatusPending, store.kyc[1].Status)
	})
}

func TestKycMockVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a pending verification as verified", func(t *testing.T) {
		store, service := newKycEnv()
		_, _, err := service.Start(ctx, 1)
		require.NoError(t, err)

		result, err := service.MockVerify(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "KYC verified successfully (mock)", result.Message)
		require.NotNil(t, result.Kyc)
		assert.True(t, result.Kyc.IsVerified)

		verified, err := service.IsVerified(ctx, 1)
		require.NoError(t, err)
		assert.True(t, verified)
		assert.NotNil(t, store.kyc[1].VerifiedAt)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, service := newKycEnv()

		_, err := service.MockVerify(ctx, 1)
		assert.ErrorIs(t, err, services.ErrKycNotFound)
	})

	t.Run("already verified is idempotent", func(t *testing.T) {
		store, service := newKycEnv()
		store.kyc[1] = &models.KycVerification{
			ID: 1, UserID: 1, Status: models.KycStatusVerified,
		}

		result, err := service.MockVerify(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "KYC already verified", result.Message)
	})
}
