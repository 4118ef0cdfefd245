package services

import (
	"context"

	"greenvest/src/models"
	"greenvest/src/repositories"
	"greenvest/src/schemas"

	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 5

type DashboardServiceI interface {
	Overview(ctx context.Context, userID int64) (*schemas.DashboardOverview, error)
	Transactions(ctx context.Context, userID int64, limit int) ([]schemas.TransactionResponse, error)
}

type DashboardService struct {
	investmentRepo  repositories.InvestmentRepository
	transactionRepo repositories.TransactionRepository
}

func NewDashboardService(investmentRepo repositories.InvestmentRepository, transactionRepo repositories.TransactionRepository) *DashboardService {
	return &DashboardService{investmentRepo: investmentRepo, transactionRepo: transactionRepo}
}

// Overview aggregates the user's portfolio. Pure read path: it never touches
// the funding counters owned by the confirmation engine.
func (s *DashboardService) Overview(ctx context.Context, userID int64) (*schemas.DashboardOverview, error) {
	investments, err := s.investmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalInvested := decimal.Zero
	currentValue := decimal.Zero
	monthlyIncome := decimal.Zero
	activeInvestments := 0
	for i := range investments {
		inv := &investments[i]
		totalInvested = totalInvested.Add(inv.Amount)
		currentValue = currentValue.Add(inv.CurrentValue)
		monthlyIncome = monthlyIncome.Add(inv.MonthlyIncome())
		if inv.Status == models.InvestmentStatusActive {
			activeInvestments++
		}
	}

	totalReturns := currentValue.Sub(totalInvested)
	returnPercentage := decimal.Zero
	if totalInvested.Sign() > 0 {
		returnPercentage = totalReturns.Div(totalInvested).Mul(decimal.NewFromInt(100)).Round(2)
	}

	transactions, err := s.transactionRepo.GetRecentByUserID(ctx, userID, recentTransactionsLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]schemas.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		recent = append(recent, schemas.NewTransactionResponse(&transactions[i]))
	}

	overview := &schemas.DashboardOverview{
		TotalInvested:      totalInvested,
		CurrentValue:       currentValue,
		TotalReturns:       totalReturns,
		ReturnPercentage:   returnPercentage,
		MonthlyIncome:      monthlyIncome,
		ActiveInvestments:  activeInvestments,
		RecentTransactions: recent,
	}
	return overview, nil
}

func (s *DashboardService) Transactions(ctx context.Context, userID int64, limit int) ([]schemas.TransactionResponse, error) {
	transactions, err := s.transactionRepo.GetRecentByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, schemas.NewTransactionResponse(&transactions[i]))
	}
	return responses, nil
}
