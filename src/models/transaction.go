package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeInvestment = "investment"
	TransactionTypeDividend   = "dividend"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeDeposit    = "deposit"
	TransactionTypeFee        = "fee"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction is an immutable audit ledger entry. For investment-type
// transactions the reference number is the caller-supplied idempotency key
// and is unique across the table.
type Transaction struct {
	ID              int64                  `db:"id"`
	UserID          int64                  `db:"user_id"`
	InvestmentID    *int64                 `db:"investment_id"`
	ProjectID       *int64                 `db:"project_id"`
	Type            string                 `db:"type"`
	Amount          decimal.Decimal        `db:"amount"`
	Description     string                 `db:"description"`
	Status          string                 `db:"status"`
	ReferenceNumber string                 `db:"reference_number"`
	OccurredAt      time.Time              `db:"occurred_at"`
	Metadata        map[string]interface{} `db:"metadata"`
	CreatedAt       time.Time              `db:"created_at"`
	UpdatedAt       time.Time              `db:"updated_at"`
}

func (t *Transaction) IsCredit() bool {
	return t.Type == TransactionTypeDeposit || t.Type == TransactionTypeDividend
}

func (t *Transaction) IsDebit() bool {
	return t.Type == TransactionTypeWithdrawal || t.Type == TransactionTypeFee || t.Type == TransactionTypeInvestment
}

// NewReferenceNumber generates a reference for transactions that do not carry
// a caller-supplied idempotency key (dividends, fees, ...).
func NewReferenceNumber() string {
	return "TXN-" + strings.ToUpper(uuid.NewString())
}
