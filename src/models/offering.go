package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OfferingStatusOpen   = "open"
	OfferingStatusClosed = "closed"
	OfferingStatusPaused = "paused"
)

type Offering struct {
	ID            int64               `db:"id"`
	ProjectID     int64               `db:"project_id"`
	SharePrice    decimal.Decimal     `db:"share_price"`
	MinInvestment decimal.Decimal     `db:"min_investment"`
	OpensAt       *time.Time          `db:"opens_at"`
	ClosesAt      *time.Time          `db:"closes_at"`
	Status        string              `db:"status"`
	TotalShares   decimal.NullDecimal `db:"total_shares"`
	SharesSold    decimal.Decimal     `db:"shares_sold"`
	CreatedAt     time.Time           `db:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at"`

	// Populated when loaded with its project.
	Project *Project `db:"-"`
}

// IsOpen reports whether the offering accepts investments at the given time.
func (o *Offering) IsOpen(now time.Time) bool {
	return o.Status == OfferingStatusOpen &&
		(o.OpensAt == nil || !now.Before(*o.OpensAt)) &&
		(o.ClosesAt == nil || !now.After(*o.ClosesAt))
}

func (o *Offering) HasUnlimitedShares() bool {
	return !o.TotalShares.Valid
}

// SharesAvailable returns the remaining sellable shares, clamped at zero.
// Nil means the offering is uncapped.
func (o *Offering) SharesAvailable() *decimal.Decimal {
	if o.HasUnlimitedShares() {
		return nil
	}
	available := o.TotalShares.Decimal.Sub(o.SharesSold)
	if available.Sign() < 0 {
		available = decimal.Zero
	}
	return &available
}

// FundingProgress is the percentage of capped shares already sold.
func (o *Offering) FundingProgress() decimal.Decimal {
	if o.HasUnlimitedShares() || o.TotalShares.Decimal.IsZero() {
		return decimal.Zero
	}
	return o.SharesSold.Div(o.TotalShares.Decimal).Mul(decimal.NewFromInt(100)).Round(2)
}
