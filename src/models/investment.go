package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvestmentStatusActive    = "active"
	InvestmentStatusCompleted = "completed"
	InvestmentStatusWithdrawn = "withdrawn"
)

// Investment is one user's committed stake in one offering. The amount,
// shares and share price are snapshots taken at confirmation time and are
// immutable afterwards.
type Investment struct {
	ID               int64           `db:"id"`
	UserID           int64           `db:"user_id"`
	ProjectID        int64           `db:"project_id"`
	OfferingID       int64           `db:"offering_id"`
	Amount           decimal.Decimal `db:"amount"`
	Shares           decimal.Decimal `db:"shares"`
	SharePrice       decimal.Decimal `db:"share_price"`
	CurrentValue     decimal.Decimal `db:"current_value"`
	TotalReturns     decimal.Decimal `db:"total_returns"`
	ReturnPercentage decimal.Decimal `db:"return_percentage"`
	Status           string          `db:"status"`
	InvestedAt       time.Time       `db:"invested_at"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`

	// Populated when loaded with its project.
	Project *Project `db:"-"`
}

// MonthlyIncome projects the monthly payout from the project's expected
// annual return over the investment's current value.
func (i *Investment) MonthlyIncome() decimal.Decimal {
	if i.Project == nil {
		return decimal.Zero
	}
	annual := i.CurrentValue.Mul(i.Project.ExpectedAnnualReturn).Div(decimal.NewFromInt(100))
	return annual.Div(decimal.NewFromInt(12)).Round(2)
}
