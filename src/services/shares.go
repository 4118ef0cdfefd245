package services

import (
	"time"

	"greenvest/src/models"

	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the decimal precision of money columns.
	AmountScale = 2
	// ShareScale is the decimal precision of share quantities. Finer than
	// money because the share price may not evenly divide the amount.
	ShareScale = 4
)

// ComputeShares validates an investment amount against an offering snapshot
// and converts it into a share count. It is deterministic and side-effect
// free so the locked confirmation path and the unlocked preview path cannot
// diverge. Rules run in order and the first failure wins.
//
// Shares are rounded half-up (away from zero) to four decimal places: a
// quotient ending in exactly .00005 rounds to .0001, not .0000.
func ComputeShares(offering *models.Offering, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !offering.IsOpen(now) {
		return decimal.Zero, ErrOfferingNotOpen
	}

	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.LessThan(offering.MinInvestment) {
		return decimal.Zero, BelowMinimumError(offering.MinInvestment)
	}

	if offering.SharePrice.Sign() <= 0 {
		return decimal.Zero, ErrInvalidOfferingConfig
	}

	shares := amount.Div(offering.SharePrice).Round(ShareScale)

	if available := offering.SharesAvailable(); available != nil && shares.GreaterThan(*available) {
		return decimal.Zero, InsufficientSharesError(*available)
	}

	return shares, nil
}

// MonthlyIncome projects the monthly payout of an amount at the project's
// expected annual return percentage.
func MonthlyIncome(amount, annualReturnPct decimal.Decimal) decimal.Decimal {
	annual := amount.Mul(annualReturnPct).Div(decimal.NewFromInt(100))
	return annual.Div(decimal.NewFromInt(12)).Round(AmountScale)
}
