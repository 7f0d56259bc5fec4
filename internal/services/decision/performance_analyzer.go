package decision

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/markethub/admin-decision-service/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// PerformanceAnalyzer derives financial, operational, and risk metrics
// from a period snapshot and produces prioritized recommendations.
type PerformanceAnalyzer struct {
	policy *Policy
}

// NewPerformanceAnalyzer creates a new PerformanceAnalyzer bound to the
// given policy.
func NewPerformanceAnalyzer(policy *Policy) *PerformanceAnalyzer {
	return &PerformanceAnalyzer{policy: policy}
}

// Analyze derives all metrics for one period. Any metric with a zero
// denominator reports 0. A nil snapshot yields a degraded result with the
// Error field set instead of a panic.
func (a *PerformanceAnalyzer) Analyze(snap *models.PeriodSnapshot) models.PerformanceAnalysis {
	if snap == nil {
		return models.PerformanceAnalysis{
			Risks:           models.RiskMetrics{RiskLevel: models.RiskLow},
			Recommendations: []string{"Unable to analyze platform performance: no snapshot data provided"},
			Error:           "period snapshot is missing or malformed",
		}
	}

	revenue := snap.Revenue.Total
	txCount := snap.Transactions.Count

	operationalCosts := snap.Transactions.PerTransactionCost.Mul(decimal.NewFromInt(txCount))
	netProfit := snap.Commission.Sub(operationalCosts)

	financials := models.FinancialMetrics{
		TotalRevenue:     revenue,
		NetProfit:        netProfit,
		ProfitMargin:     ratioPercent(netProfit, revenue),
		RevenueGrowth:    a.revenueGrowth(snap),
		CommissionMargin: 0,
	}
	if txCount > 0 {
		financials.CommissionMargin = ratioPercent(snap.Commission, revenue)
	}

	operations := models.OperationalMetrics{
		TransactionCount:  txCount,
		AverageOrderValue: safeDiv(revenue, txCount),
		RevenuePerVendor:  safeDiv(revenue, snap.Vendors.Active),
		VendorCount:       snap.Vendors.Active,
	}

	chargebackRate := countRatioPercent(snap.Chargebacks.Count, txCount)
	risks := models.RiskMetrics{
		ChargebackRate:   chargebackRate,
		VendorChurnRate:  countRatioPercent(snap.Vendors.Departed, snap.Vendors.Active),
		OperationalCosts: operationalCosts,
		RiskLevel:        a.riskLevel(chargebackRate),
	}

	return models.PerformanceAnalysis{
		Financials:      financials,
		Operations:      operations,
		Risks:           risks,
		Recommendations: a.recommendations(financials, risks),
	}
}

// revenueGrowth handles the zero-baseline cases explicitly: a dormant
// platform grows 0%, a platform starting from zero grows 100%.
func (a *PerformanceAnalyzer) revenueGrowth(snap *models.PeriodSnapshot) float64 {
	current := snap.Revenue.Total
	previous := snap.Revenue.PreviousPeriod

	switch {
	case previous.IsZero() && current.IsZero():
		return 0
	case previous.IsZero():
		return 100
	default:
		return current.Sub(previous).Div(previous).Mul(hundred).Round(2).InexactFloat64()
	}
}

func (a *PerformanceAnalyzer) riskLevel(chargebackRate float64) models.RiskLevel {
	p := a.policy.Performance
	switch {
	case chargebackRate > p.HighRiskChargebackRate:
		return models.RiskHigh
	case chargebackRate > p.MediumRiskChargebackRate:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// recommendations are generated independently per metric, in a fixed
// order, and can co-occur. The list is never empty.
func (a *PerformanceAnalyzer) recommendations(fin models.FinancialMetrics, risks models.RiskMetrics) []string {
	p := a.policy.Performance
	recs := make([]string, 0)

	if fin.RevenueGrowth < p.GrowthWarningBelow {
		recs = append(recs, fmt.Sprintf("Revenue growth is below %.0f%%; review marketing spend and vendor acquisition", p.GrowthWarningBelow))
	}
	if fin.ProfitMargin < p.MarginWarningBelow {
		recs = append(recs, fmt.Sprintf("Profit margin is below %.0f%%; review commission rates and operating costs", p.MarginWarningBelow))
	}
	if risks.ChargebackRate > p.ChargebackWarningAbove {
		recs = append(recs, fmt.Sprintf("Chargeback rate exceeds %.0f%%; tighten fraud screening on high-risk orders", p.ChargebackWarningAbove))
	}
	if risks.VendorChurnRate > p.ChurnWarningAbove {
		recs = append(recs, fmt.Sprintf("Vendor churn exceeds %.0f%%; investigate vendor satisfaction and fee structure", p.ChurnWarningAbove))
	}
	if len(recs) == 0 {
		recs = append(recs, "Platform performance is satisfactory; no action required")
	}
	return recs
}

// ratioPercent reports numerator/denominator as a percent, 0 when the
// denominator is zero.
func ratioPercent(numerator, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		return 0
	}
	return numerator.Div(denominator).Mul(hundred).InexactFloat64()
}

// countRatioPercent reports count/total as a percent, 0 when total is zero.
func countRatioPercent(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(count).Div(decimal.NewFromInt(total)).Mul(hundred).InexactFloat64()
}

// safeDiv divides an amount by a count, returning zero for a zero count.
func safeDiv(amount decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(count))
}
