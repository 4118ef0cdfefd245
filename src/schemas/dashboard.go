package schemas

import (
	"github.com/shopspring/decimal"
)

type DashboardOverview struct {
	TotalInvested      decimal.Decimal       `json:"total_invested"`
	CurrentValue       decimal.Decimal       `json:"current_value"`
	TotalReturns       decimal.Decimal       `json:"total_returns"`
	ReturnPercentage   decimal.Decimal       `json:"return_percentage"`
	MonthlyIncome      decimal.Decimal       `json:"monthly_income"`
	ActiveInvestments  int                   `json:"active_investments"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}
