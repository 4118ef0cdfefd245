package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProjectStatusFunding   = "funding"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusPaused    = "paused"
)

type Project struct {
	ID                     int64           `db:"id"`
	Name                   string          `db:"name"`
	Slug                   string          `db:"slug"`
	Type                   string          `db:"type"`
	Description            string          `db:"description"`
	Location               string          `db:"location"`
	LocationState          string          `db:"location_state"`
	Capacity               decimal.Decimal `db:"capacity"`
	TotalCost              decimal.Decimal `db:"total_cost"`
	FundingGoal            decimal.Decimal `db:"funding_goal"`
	CurrentFunding         decimal.Decimal `db:"current_funding"`
	ExpectedAnnualReturn   decimal.Decimal `db:"expected_annual_return"`
	MinimumInvestment      decimal.Decimal `db:"minimum_investment"`
	DurationMonths         int             `db:"duration_months"`
	Status                 string          `db:"status"`
	CompletionPercentage   int             `db:"completion_percentage"`
	FundingStartDate       *time.Time      `db:"funding_start_date"`
	FundingEndDate         *time.Time      `db:"funding_end_date"`
	ProjectStartDate       *time.Time      `db:"project_start_date"`
	ExpectedCompletionDate *time.Time      `db:"expected_completion_date"`
	ImageURL               *string         `db:"image_url"`
	Highlights             []string        `db:"highlights"`
	Documents              []string        `db:"documents"`
	CreatedAt              time.Time       `db:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at"`
}

// FundingProgress is the percentage of the funding goal already committed.
func (p *Project) FundingProgress() decimal.Decimal {
	if p.FundingGoal.IsZero() {
		return decimal.Zero
	}
	return p.CurrentFunding.Div(p.FundingGoal).Mul(decimal.NewFromInt(100)).Round(2)
}
