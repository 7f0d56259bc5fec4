package models

import (
	"github.com/shopspring/decimal"
)

// PeriodSnapshot aggregates raw platform figures for one reporting period.
type PeriodSnapshot struct {
	Revenue      RevenueSnapshot
	Commission   decimal.Decimal
	Transactions TransactionSnapshot
	Vendors      VendorSnapshot
	Chargebacks  ChargebackSnapshot
}

// RevenueSnapshot holds gross revenue for the current and previous period.
type RevenueSnapshot struct {
	Total          decimal.Decimal
	PreviousPeriod decimal.Decimal
}

// TransactionSnapshot holds transaction volume and unit operating cost.
type TransactionSnapshot struct {
	Count              int64
	PerTransactionCost decimal.Decimal
}

// VendorSnapshot holds vendor population counts for the period.
type VendorSnapshot struct {
	Active   int64
	Departed int64
}

// ChargebackSnapshot holds the disputed-and-reversed transaction count.
type ChargebackSnapshot struct {
	Count int64
}

// FinancialMetrics are the derived money metrics of a period.
type FinancialMetrics struct {
	TotalRevenue     decimal.Decimal
	NetProfit        decimal.Decimal
	ProfitMargin     float64 // percent
	CommissionMargin float64 // percent
	RevenueGrowth    float64 // percent, rounded to 2 decimals
}

// OperationalMetrics are the derived volume metrics of a period.
type OperationalMetrics struct {
	TransactionCount  int64
	AverageOrderValue decimal.Decimal
	RevenuePerVendor  decimal.Decimal
	VendorCount       int64
}

// RiskMetrics are the derived exposure metrics of a period.
type RiskMetrics struct {
	ChargebackRate   float64 // percent
	VendorChurnRate  float64 // percent
	OperationalCosts decimal.Decimal
	RiskLevel        RiskLevel
}

// PerformanceAnalysis is the full derived view of a period snapshot.
// Recommendations is never empty. Error is set only for the degraded
// result produced when no snapshot was supplied.
type PerformanceAnalysis struct {
	Financials      FinancialMetrics
	Operations      OperationalMetrics
	Risks           RiskMetrics
	Recommendations []string
	Error           string
}
