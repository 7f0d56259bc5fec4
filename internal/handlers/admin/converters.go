package admin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/markethub/admin-decision-service/internal/domain/models"
	apperrors "github.com/markethub/admin-decision-service/pkg/errors"
	"github.com/markethub/admin-decision-service/pkg/timeutil"
)

const dateOnly = "2006-01-02"

func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewValidationError(field, "not a valid decimal amount")
	}
	return d, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := timeutil.ParseDate(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := timeutil.ParseDate(dateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "not an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	return t, nil
}

func vendorApplicationFromMsg(msg *VendorApplicationMsg) (models.VendorApplication, error) {
	revenue, err := parseAmount("expected_revenue", msg.ExpectedRevenue)
	if err != nil {
		return models.VendorApplication{}, err
	}
	return models.VendorApplication{
		BusinessLicense:  msg.BusinessLicense,
		TaxID:            msg.TaxID,
		AddressProof:     msg.AddressProof,
		BackgroundIssues: msg.BackgroundIssues,
		SampleProducts:   msg.SampleProducts,
		ExpectedRevenue:  revenue,
	}, nil
}

func couponFromMsg(msg *CouponRequestMsg) (*models.CouponRequest, error) {
	if msg == nil {
		return nil, nil
	}

	value, err := parseAmount("value", msg.Value)
	if err != nil {
		return nil, err
	}
	minPurchase, err := parseAmount("min_purchase", msg.MinPurchase)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate("start_date", msg.StartDate)
	if err != nil {
		return nil, err
	}
	expiryDate, err := parseDate("expiry_date", msg.ExpiryDate)
	if err != nil {
		return nil, err
	}

	req := &models.CouponRequest{
		DiscountType: models.DiscountType(msg.DiscountType),
		Value:        value,
		MaxUses:      int(msg.MaxUses),
		MinPurchase:  minPurchase,
		StartDate:    startDate,
		ExpiryDate:   expiryDate,
		Category:     msg.Category,
	}
	if msg.EstimatedAvgOrderValue != "" {
		avg, err := parseAmount("estimated_avg_order_value", msg.EstimatedAvgOrderValue)
		if err != nil {
			return nil, err
		}
		req.EstimatedAvgOrderValue = &avg
	}
	return req, nil
}

func snapshotFromMsg(msg *PeriodSnapshotMsg) (*models.PeriodSnapshot, error) {
	if msg == nil {
		return nil, nil
	}

	total, err := parseAmount("total_revenue", msg.TotalRevenue)
	if err != nil {
		return nil, err
	}
	previous, err := parseAmount("previous_period_revenue", msg.PreviousPeriodRevenue)
	if err != nil {
		return nil, err
	}
	commission, err := parseAmount("commission", msg.Commission)
	if err != nil {
		return nil, err
	}
	perTxCost, err := parseAmount("per_transaction_cost", msg.PerTransactionCost)
	if err != nil {
		return nil, err
	}

	return &models.PeriodSnapshot{
		Revenue: models.RevenueSnapshot{
			Total:          total,
			PreviousPeriod: previous,
		},
		Commission: commission,
		Transactions: models.TransactionSnapshot{
			Count:              msg.TransactionCount,
			PerTransactionCost: perTxCost,
		},
		Vendors: models.VendorSnapshot{
			Active:   msg.ActiveVendors,
			Departed: msg.DepartedVendors,
		},
		Chargebacks: models.ChargebackSnapshot{
			Count: msg.ChargebackCount,
		},
	}, nil
}

func disputeFromMsg(msg *DisputeRecordMsg) (*models.DisputeRecord, error) {
	if msg == nil {
		return nil, nil
	}

	orderValue, err := parseAmount("order_value", msg.OrderValue)
	if err != nil {
		return nil, err
	}

	return &models.DisputeRecord{
		Type:                        models.DisputeType(msg.Type),
		OrderValue:                  orderValue,
		DaysSinceOrder:              int(msg.DaysSinceOrder),
		CustomerHasMultipleDisputes: msg.CustomerHasMultipleDisputes,
		CustomerAccountNew:          msg.CustomerAccountNew,
		PhotoEvidenceProvided:       msg.PhotoEvidenceProvided,
		ThirdPartyVerification:      msg.ThirdPartyVerification,
		VendorHasNoPriorComplaints:  msg.VendorHasNoPriorComplaints,
	}, nil
}

func applicationResultToMsg(result models.ApplicationResult) *ScoreVendorApplicationResponse {
	return &ScoreVendorApplicationResponse{
		Score:           int32(result.Score),
		IsApproved:      result.IsApproved,
		RiskLevel:       string(result.RiskLevel),
		Issues:          result.Issues,
		Recommendations: result.Recommendations,
	}
}

func couponValidationToMsg(result models.CouponValidation) *ValidateCouponResponse {
	return &ValidateCouponResponse{
		IsValid: result.IsValid,
		Issues:  result.Issues,
		RiskAssessment: &CouponRiskAssessmentMsg{
			Category:               result.RiskAssessment.Category,
			PotentialSavingsPerUse: result.RiskAssessment.PotentialSavingsPerUse.String(),
			EstimatedTotalBenefit:  result.RiskAssessment.EstimatedTotalBenefit.String(),
			RecommendedApproval:    string(result.RiskAssessment.RecommendedApproval),
		},
	}
}

func performanceAnalysisToMsg(analysis models.PerformanceAnalysis) *AnalyzePerformanceResponse {
	return &AnalyzePerformanceResponse{
		Financials: &FinancialMetricsMsg{
			TotalRevenue:     analysis.Financials.TotalRevenue.String(),
			NetProfit:        analysis.Financials.NetProfit.String(),
			ProfitMargin:     analysis.Financials.ProfitMargin,
			CommissionMargin: analysis.Financials.CommissionMargin,
			RevenueGrowth:    analysis.Financials.RevenueGrowth,
		},
		Operations: &OperationalMetricsMsg{
			TransactionCount:  analysis.Operations.TransactionCount,
			AverageOrderValue: analysis.Operations.AverageOrderValue.String(),
			RevenuePerVendor:  analysis.Operations.RevenuePerVendor.String(),
			VendorCount:       analysis.Operations.VendorCount,
		},
		Risks: &RiskMetricsMsg{
			ChargebackRate:   analysis.Risks.ChargebackRate,
			VendorChurnRate:  analysis.Risks.VendorChurnRate,
			OperationalCosts: analysis.Risks.OperationalCosts.String(),
			RiskLevel:        string(analysis.Risks.RiskLevel),
		},
		Recommendations: analysis.Recommendations,
		Error:           analysis.Error,
	}
}

func fraudAssessmentToMsg(assessment models.FraudAssessment) *FraudAssessmentMsg {
	return &FraudAssessmentMsg{
		Score:                 int32(assessment.Score),
		RiskLevel:             string(assessment.RiskLevel),
		RequiresInvestigation: assessment.RequiresInvestigation,
		AutomaticDenial:       assessment.AutomaticDenial,
	}
}

func disputeResolutionToMsg(resolution models.DisputeResolution) *ResolveDisputeResponse {
	return &ResolveDisputeResponse{
		RecommendedAction:   string(resolution.RecommendedAction),
		RefundAmount:        resolution.RefundAmount.String(),
		Priority:            string(resolution.Priority),
		ResolutionTimeframe: resolution.ResolutionTimeframe,
		FraudRisk:           fraudAssessmentToMsg(resolution.FraudRisk),
		EscalationRequired:  resolution.EscalationRequired,
	}
}
