package repositories

import (
	"context"
	"time"

	"greenvest/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type KycRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.KycVerification, error)
	IsVerified(ctx context.Context, userID int64) (bool, error)
	// Upsert creates the user's verification record or resets an existing one
	// to the given provider/status pair. One record per user.
	Upsert(ctx context.Context, userID int64, provider, status string) (*models.KycVerification, error)
	MarkVerified(ctx context.Context, userID int64) (*models.KycVerification, error)
}

type kycRepo struct {
	db *pgxpool.Pool
}

func NewKycRepository(db *pgxpool.Pool) KycRepository {
	return &kycRepo{db: db}
}

const kycColumns = `id, user_id, provider, status, reference_id, failure_reason, metadata,
		verified_at, created_at, updated_at`

func (r *kycRepo) scan(row interface{ Scan(dest ...any) error }, k *models.KycVerification) error {
	return row.Scan(&k.ID, &k.UserID, &k.Provider, &k.Status, &k.ReferenceID, &k.FailureReason,
		&k.Metadata, &k.VerifiedAt, &k.CreatedAt, &k.UpdatedAt)
}

func (r *kycRepo) GetByUserID(ctx context.Context, userID int64) (*models.KycVerification, error) {
	query := `SELECT ` + kycColumns + ` FROM kyc_verifications WHERE user_id = $1`

	var k models.KycVerification
	if err := r.scan(r.db.QueryRow(ctx, query, userID), &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *kycRepo) IsVerified(ctx context.Context, userID int64) (bool, error) {
	var verified bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM kyc_verifications WHERE user_id = $1 AND status = 'verified')`,
		userID,
	).Scan(&verified)
	return verified, err
}

func (r *kycRepo) Upsert(ctx context.Context, userID int64, provider, status string) (*models.KycVerification, error) {
	query := `
		INSERT INTO kyc_verifications (user_id, provider, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET provider = EXCLUDED.provider, status = EXCLUDED.status, updated_at = now()
		RETURNING ` + kycColumns

	var k models.KycVerification
	if err := r.scan(r.db.QueryRow(ctx, query, userID, provider, status), &k); err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *kycRepo) MarkVerified(ctx context.Context, userID int64) (*models.KycVerification, error) {
	query := `
		UPDATE kyc_verifications
		SET status = 'verified', verified_at = $2, updated_at = now()
		WHERE user_id = $1
		RETURNING ` + kycColumns

	var k models.KycVerification
	if err := r.scan(r.db.QueryRow(ctx, query, userID, time.Now()), &k); err != nil {
		return nil, err
	}
	return &k, nil
}
