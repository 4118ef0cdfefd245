package schemas

import (
	"time"

	"greenvest/src/models"

	"github.com/shopspring/decimal"
)

type InvestmentPreviewRequest struct {
	OfferingID int64           `json:"offering_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type InvestmentConfirmRequest struct {
	OfferingID int64           `json:"offering_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type InvestmentPreview struct {
	Amount                decimal.Decimal `json:"amount"`
	Shares                decimal.Decimal `json:"shares"`
	SharePrice            decimal.Decimal `json:"share_price"`
	ProjectName           string          `json:"project_name"`
	ExpectedAnnualReturn  decimal.Decimal `json:"expected_annual_return"`
	ExpectedMonthlyIncome decimal.Decimal `json:"expected_monthly_income"`
	Fees                  decimal.Decimal `json:"fees"`
	Total                 decimal.Decimal `json:"total"`
}

type InvestmentResponse struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	ProjectID  int64           `json:"project_id"`
	OfferingID int64           `json:"offering_id"`
	Amount     decimal.Decimal `json:"amount"`
	Shares     decimal.Decimal `json:"shares"`
	SharePrice decimal.Decimal `json:"share_price"`
	Status     string          `json:"status"`
	InvestedAt time.Time       `json:"invested_at"`
}

func NewInvestmentResponse(i *models.Investment) *InvestmentResponse {
	return &InvestmentResponse{
		ID:         i.ID,
		UserID:     i.UserID,
		ProjectID:  i.ProjectID,
		OfferingID: i.OfferingID,
		Amount:     i.Amount,
		Shares:     i.Shares,
		SharePrice: i.SharePrice,
		Status:     i.Status,
		InvestedAt: i.InvestedAt,
	}
}

type TransactionResponse struct {
	ID              int64                  `json:"id"`
	InvestmentID    *int64                 `json:"investment_id"`
	ProjectID       *int64                 `json:"project_id"`
	Type            string                 `json:"type"`
	Direction       string                 `json:"direction"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	Status          string                 `json:"status"`
	ReferenceNumber string                 `json:"reference_number"`
	OccurredAt      time.Time              `json:"occurred_at"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		InvestmentID:    t.InvestmentID,
		ProjectID:       t.ProjectID,
		Type:            t.Type,
		Direction:       transactionDirection(t),
		Amount:          t.Amount,
		Description:     t.Description,
		Status:          t.Status,
		ReferenceNumber: t.ReferenceNumber,
		OccurredAt:      t.OccurredAt,
		Metadata:        t.Metadata,
	}
}

// transactionDirection labels the entry for display. The type CHECK
// constraint guarantees every row matches one of the two.
func transactionDirection(t *models.Transaction) string {
	switch {
	case t.IsCredit():
		return "credit"
	case t.IsDebit():
		return "debit"
	default:
		return ""
	}
}
