package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenvest/src/api/handlers"
	"greenvest/src/models"
	"greenvest/src/schemas"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubKycService struct {
	statusFn     func(ctx context.Context, userID int64) (*schemas.KycStatusResponse, error)
	startFn      func(ctx context.Context, userID int64) (*schemas.KycActionResponse, bool, error)
	mockVerifyFn func(ctx context.Context, userID int64) (*schemas.KycActionResponse, error)
}

func (s *stubKycService) IsVerified(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

func (s *stubKycService) Status(ctx context.Context, userID int64) (*schemas.KycStatusResponse, error) {
	return s.statusFn(ctx, userID)
}

func (s *stubKycService) Start(ctx context.Context, userID int64) (*schemas.KycActionResponse, bool, error) {
	return s.startFn(ctx, userID)
}

func (s *stubKycService) MockVerify(ctx context.Context, userID int64) (*schemas.KycActionResponse, error) {
	return s.mockVerifyFn(ctx, userID)
}

func newKycHandler(kyc *stubKycService, production bool) *handlers.Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return handlers.NewHandler(nil, nil, kyc, nil, logger, production)
}

func TestGetKycStatusHandler(t *testing.T) {
	service := &stubKycService{
		statusFn: func(_ context.Context, userID int64) (*schemas.KycStatusResponse, error) {
			assert.Equal(t, int64(3), userID)
			return &schemas.KycStatusResponse{Status: models.KycStatusNotStarted}, nil
		},
	}
	handler := newKycHandler(service, false)

	req := httptest.NewRequest(http.MethodGet, "/api/kyc/status", nil)
	req.Header.Set("X-User-ID", "3")
	rec := httptest.NewRecorder()
	handler.GetKycStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response schemas.KycStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, models.KycStatusNotStarted, response.Status)
	assert.False(t, response.IsVerified)
}

func TestStartKycHandler(t *testing.T) {
	t.Run("new verification is a 201", func(t *testing.T) {
		service := &stubKycService{
			startFn: func(_ context.Context, _ int64) (*schemas.KycActionResponse, bool, error) {
				return &schemas.KycActionResponse{Message: "KYC verification started"}, true, nil
			},
		}
		handler := newKycHandler(service, false)

		req := httptest.NewRequest(http.MethodPost, "/api/kyc/start", nil)
		req.Header.Set("X-User-ID", "3")
		rec := httptest.NewRecorder()
		handler.StartKyc(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("already verified is a 200", func(t *testing.T) {
		service := &stubKycService{
			startFn: func(_ context.Context, _ int64) (*schemas.KycActionResponse, bool, error) {
				return &schemas.KycActionResponse{Message: "KYC already verified"}, false, nil
			},
		}
		handler := newKycHandler(service, false)

		req := httptest.NewRequest(http.MethodPost, "/api/kyc/start", nil)
		req.Header.Set("X-User-ID", "3")
		rec := httptest.NewRecorder()
		handler.StartKyc(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMockVerifyKycHandler(t *testing.T) {
	t.Run("verifies outside production", func(t *testing.T) {
		service := &stubKycService{
			mockVerifyFn: func(_ context.Context, _ int64) (*schemas.KycActionResponse, error) {
				return &schemas.KycActionResponse{Message: "KYC verified successfully (mock)"}, nil
			},
		}
		handler := newKycHandler(service, false)

		req := httptest.NewRequest(http.MethodPost, "/api/kyc/mock-verify", nil)
		req.Header.Set("X-User-ID", "3")
		rec := httptest.NewRecorder()
		handler.MockVerifyKyc(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocked in production", func(t *testing.T) {
		handler := newKycHandler(&stubKycService{}, true)

		req := httptest.NewRequest(http.MethodPost, "/api/kyc/mock-verify", nil)
		req.Header.Set("X-User-ID", "3")
		rec := httptest.NewRecorder()
		handler.MockVerifyKyc(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
