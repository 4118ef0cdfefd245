package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greenvest/src/models"
	"greenvest/src/repositories"
	"greenvest/src/schemas"
	"greenvest/src/utils"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// KycVerifier is the identity-verification gate consulted before any money
// is committed. The engine treats its answer as authoritative.
type KycVerifier interface {
	IsVerified(ctx context.Context, userID int64) (bool, error)
}

type InvestmentServiceI interface {
	Preview(ctx context.Context, userID, offeringID int64, amount decimal.Decimal) (*schemas.InvestmentPreview, error)
	Confirm(ctx context.Context, userID, offeringID int64, amount decimal.Decimal, idempotencyKey string) (*models.Investment, error)
	GetUserInvestments(ctx context.Context, userID int64) ([]models.Investment, error)
}

type InvestmentService struct {
	txManager       repositories.TxManager
	userRepo        repositories.UserRepository
	kyc             KycVerifier
	projectRepo     repositories.ProjectRepository
	offeringRepo    repositories.OfferingRepository
	investmentRepo  repositories.InvestmentRepository
	transactionRepo repositories.TransactionRepository
	cache           OfferingCache
}

func NewInvestmentService(
	txManager repositories.TxManager,
	userRepo repositories.UserRepository,
	kyc KycVerifier,
	projectRepo repositories.ProjectRepository,
	offeringRepo repositories.OfferingRepository,
	investmentRepo repositories.InvestmentRepository,
	transactionRepo repositories.TransactionRepository,
	cache OfferingCache,
) *InvestmentService {
	return &InvestmentService{
		txManager:       txManager,
		userRepo:        userRepo,
		kyc:             kyc,
		projectRepo:     projectRepo,
		offeringRepo:    offeringRepo,
		investmentRepo:  investmentRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Preview runs the share calculator against the current offering snapshot
// without locking anything. The result is advisory: a concurrent
// confirmation may make it stale, and only Confirm's locked re-check is
// authoritative.
func (s *InvestmentService) Preview(ctx context.Context, userID, offeringID int64, amount decimal.Decimal) (*schemas.InvestmentPreview, error) {
	offering, err := s.loadOfferingSnapshot(ctx, offeringID)
	if err != nil {
		return nil, err
	}

	amount = amount.Round(AmountScale)
	shares, err := ComputeShares(offering, amount, time.Now())
	if err != nil {
		return nil, err
	}

	return &schemas.InvestmentPreview{
		Amount:                amount,
		Shares:                shares,
		SharePrice:            offering.SharePrice,
		ProjectName:           offering.Project.Name,
		ExpectedAnnualReturn:  offering.Project.ExpectedAnnualReturn,
		ExpectedMonthlyIncome: MonthlyIncome(amount, offering.Project.ExpectedAnnualReturn),
		Fees:                  decimal.Zero.Round(AmountScale),
		Total:                 amount,
	}, nil
}

// Confirm turns an investment intent into a durable, non-duplicated,
// share-accurate transaction:
//
//  1. The idempotency key is mandatory and checked first.
//  2. The user must be KYC-verified.
//  3. Inside one database transaction: the idempotency ledger is consulted,
//     the offering row is locked, shares are recomputed against the locked
//     state, and the investment, counter increments and audit transaction
//     are written together.
//
// Any failure rolls the whole scope back; the unique constraint on
// transactions.reference_number is the final backstop against two
// identical-key requests racing past the ledger lookup.
func (s *InvestmentService) Confirm(ctx context.Context, userID, offeringID int64, amount decimal.Decimal, idempotencyKey string) (*models.Investment, error) {
	if idempotencyKey == "" {
		return nil, ErrMissingIdempotencyKey
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	verified, err := s.kyc.IsVerified(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrKycRequired
	}

	amount = amount.Round(AmountScale)

	var investment *models.Investment
	err = s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		// Idempotency ledger: if this key already produced an investment,
		// return it without re-executing any write.
		existing, err := s.transactionRepo.GetByReference(ctx, idempotencyKey, models.TransactionTypeInvestment, tx)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if existing != nil && existing.InvestmentID != nil {
			investment, err = s.investmentRepo.GetByID(ctx, *existing.InvestmentID, tx)
			return err
		}

		offering, err := s.offeringRepo.GetByIDForUpdate(ctx, offeringID, tx)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrOfferingNotFound
			}
			return err
		}

		// Authoritative check, against the now-locked offering state.
		shares, err := ComputeShares(offering, amount, time.Now())
		if err != nil {
			return err
		}

		investment = &models.Investment{
			UserID:       userID,
			ProjectID:    offering.ProjectID,
			OfferingID:   offering.ID,
			Amount:       amount,
			Shares:       shares,
			SharePrice:   offering.SharePrice,
			CurrentValue: amount,
			Status:       models.InvestmentStatusActive,
			InvestedAt:   time.Now(),
		}
		if err := s.investmentRepo.Create(ctx, investment, tx); err != nil {
			return err
		}

		if err := s.offeringRepo.IncrementSharesSold(ctx, offering.ID, shares, tx); err != nil {
			return err
		}
		if err := s.projectRepo.IncrementFunding(ctx, offering.ProjectID, amount, tx); err != nil {
			return err
		}

		audit := &models.Transaction{
			UserID:          userID,
			InvestmentID:    &investment.ID,
			ProjectID:       &offering.ProjectID,
			Type:            models.TransactionTypeInvestment,
			Amount:          amount,
			Description:     fmt.Sprintf("Investment in %s", offering.Project.Name),
			Status:          models.TransactionStatusCompleted,
			ReferenceNumber: idempotencyKey,
			OccurredAt:      time.Now(),
			Metadata: map[string]interface{}{
				"offering_id": offering.ID,
				"shares":      shares.String(),
				"share_price": offering.SharePrice.String(),
			},
		}
		return s.transactionRepo.Create(ctx, audit, tx)
	})
	if err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).WithFields(logrus.Fields{
		"user":          user.Name(),
		"investment_id": investment.ID,
		"offering_id":   offeringID,
		"amount":        amount.String(),
	}).Info("investment confirmed")

	return investment, nil
}

func (s *InvestmentService) GetUserInvestments(ctx context.Context, userID int64) ([]models.Investment, error) {
	return s.investmentRepo.GetByUserID(ctx, userID)
}

func (s *InvestmentService) loadOfferingSnapshot(ctx context.Context, offeringID int64) (*models.Offering, error) {
	if s.cache != nil {
		if offering, ok := s.cache.Get(ctx, offeringID); ok {
			return offering, nil
		}
	}

	offering, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, offering)
	}
	return offering, nil
}
