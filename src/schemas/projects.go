package schemas

import (
	"time"

	"greenvest/src/models"

	"github.com/shopspring/decimal"
)

type ProjectSummary struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	Slug                 string          `json:"slug"`
	Type                 string          `json:"type"`
	Description          string          `json:"description"`
	Location             string          `json:"location"`
	Capacity             decimal.Decimal `json:"capacity"`
	FundingGoal          decimal.Decimal `json:"funding_goal"`
	CurrentFunding       decimal.Decimal `json:"current_funding"`
	FundingProgress      decimal.Decimal `json:"funding_progress"`
	ExpectedReturn       decimal.Decimal `json:"expected_return"`
	DurationMonths       int             `json:"duration_months"`
	Status               string          `json:"status"`
	CompletionPercentage int             `json:"completion_percentage"`
	InvestorsCount       int             `json:"investors_count"`
	ImageURL             *string         `json:"image_url"`
	Highlights           []string        `json:"highlights"`
	HasActiveOffering    bool            `json:"has_active_offering"`
}

func NewProjectSummary(p *models.Project, investorsCount int, hasActiveOffering bool) ProjectSummary {
	return ProjectSummary{
		ID:                   p.ID,
		Name:                 p.Name,
		Slug:                 p.Slug,
		Type:                 p.Type,
		Description:          p.Description,
		Location:             p.Location + ", " + p.LocationState,
		Capacity:             p.Capacity,
		FundingGoal:          p.FundingGoal,
		CurrentFunding:       p.CurrentFunding,
		FundingProgress:      p.FundingProgress(),
		ExpectedReturn:       p.ExpectedAnnualReturn,
		DurationMonths:       p.DurationMonths,
		Status:               p.Status,
		CompletionPercentage: p.CompletionPercentage,
		InvestorsCount:       investorsCount,
		ImageURL:             p.ImageURL,
		Highlights:           p.Highlights,
		HasActiveOffering:    hasActiveOffering,
	}
}

type ProjectDetail struct {
	ProjectSummary
	LocationState          string          `json:"location_state"`
	TotalCost              decimal.Decimal `json:"total_cost"`
	ProjectStartDate       *time.Time      `json:"project_start_date"`
	ExpectedCompletionDate *time.Time      `json:"expected_completion_date"`
	Documents              []string        `json:"documents"`
}

func NewProjectDetail(p *models.Project, investorsCount int, hasActiveOffering bool) *ProjectDetail {
	summary := NewProjectSummary(p, investorsCount, hasActiveOffering)
	summary.Location = p.Location
	return &ProjectDetail{
		ProjectSummary:         summary,
		LocationState:          p.LocationState,
		TotalCost:              p.TotalCost,
		ProjectStartDate:       p.ProjectStartDate,
		ExpectedCompletionDate: p.ExpectedCompletionDate,
		Documents:              p.Documents,
	}
}

type OfferingResponse struct {
	ID              int64            `json:"id"`
	ProjectID       int64            `json:"project_id"`
	SharePrice      decimal.Decimal  `json:"share_price"`
	MinInvestment   decimal.Decimal  `json:"min_investment"`
	OpensAt         *time.Time       `json:"opens_at"`
	ClosesAt        *time.Time       `json:"closes_at"`
	Status          string           `json:"status"`
	TotalShares     *decimal.Decimal `json:"total_shares"`
	SharesSold      decimal.Decimal  `json:"shares_sold"`
	SharesAvailable *decimal.Decimal `json:"shares_available"`
	FundingProgress decimal.Decimal  `json:"funding_progress"`
	IsActive        bool             `json:"is_active"`
}

func NewOfferingResponse(o *models.Offering, now time.Time) *OfferingResponse {
	resp := &OfferingResponse{
		ID:              o.ID,
		ProjectID:       o.ProjectID,
		SharePrice:      o.SharePrice,
		MinInvestment:   o.MinInvestment,
		OpensAt:         o.OpensAt,
		ClosesAt:        o.ClosesAt,
		Status:          o.Status,
		SharesSold:      o.SharesSold,
		SharesAvailable: o.SharesAvailable(),
		FundingProgress: o.FundingProgress(),
		IsActive:        o.IsOpen(now) && (o.SharesAvailable() == nil || o.SharesAvailable().Sign() > 0),
	}
	if o.TotalShares.Valid {
		total := o.TotalShares.Decimal
		resp.TotalShares = &total
	}
	return resp
}
