package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/markethub/admin-decision-service/internal/handlers/admin"
	"github.com/markethub/admin-decision-service/internal/services/decision"
)

func newHandler() *admin.Handler {
	policy := decision.DefaultPolicy()
	return admin.NewHandler(decision.NewEngine(&policy), zap.NewNop())
}

func TestScoreVendorApplication_CompleteApplication(t *testing.T) {
	h := newHandler()

	resp, err := h.ScoreVendorApplication(context.Background(), &admin.ScoreVendorApplicationRequest{
		Application: &admin.VendorApplicationMsg{
			BusinessLicense: true,
			TaxID:           true,
			AddressProof:    true,
			SampleProducts:  []string{"a", "b", "c"},
			ExpectedRevenue: "80000",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(100), resp.Score)
	assert.True(t, resp.IsApproved)
	assert.Equal(t, "low", resp.RiskLevel)
	assert.Empty(t, resp.Issues)
}

func TestScoreVendorApplication_MissingApplication(t *testing.T) {
	h := newHandler()

	_, err := h.ScoreVendorApplication(context.Background(), &admin.ScoreVendorApplicationRequest{})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestScoreVendorApplication_MalformedRevenue(t *testing.T) {
	h := newHandler()

	_, err := h.ScoreVendorApplication(context.Background(), &admin.ScoreVendorApplicationRequest{
		Application: &admin.VendorApplicationMsg{ExpectedRevenue: "not-a-number"},
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidateCoupon_ValidPercentageCoupon(t *testing.T) {
	h := newHandler()

	resp, err := h.ValidateCoupon(context.Background(), &admin.ValidateCouponRequest{
		Coupon: &admin.CouponRequestMsg{
			DiscountType:           "percentage",
			Value:                  "25",
			MaxUses:                100,
			MinPurchase:            "100",
			StartDate:              "2026-03-01T00:00:00Z",
			ExpiryDate:             "2026-03-31T00:00:00Z",
			EstimatedAvgOrderValue: "4000",
			Category:               "electronics",
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.IsValid)
	assert.Empty(t, resp.Issues)
	require.NotNil(t, resp.RiskAssessment)
	// 25% of 4000 = 1000 per use, 100 uses = 100000 total
	assert.Equal(t, "1000", resp.RiskAssessment.PotentialSavingsPerUse)
	assert.Equal(t, "100000", resp.RiskAssessment.EstimatedTotalBenefit)
	assert.Equal(t, "auto", resp.RiskAssessment.RecommendedApproval)
}

func TestValidateCoupon_DateOnlyFormatAccepted(t *testing.T) {
	h := newHandler()

	resp, err := h.ValidateCoupon(context.Background(), &admin.ValidateCouponRequest{
		Coupon: &admin.CouponRequestMsg{
			DiscountType: "percentage",
			Value:        "10",
			MaxUses:      50,
			StartDate:    "2026-03-01",
			ExpiryDate:   "2026-03-15",
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.IsValid)
}

func TestValidateCoupon_MissingCouponDegrades(t *testing.T) {
	h := newHandler()

	resp, err := h.ValidateCoupon(context.Background(), &admin.ValidateCouponRequest{})

	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	assert.Equal(t, "deny", resp.RiskAssessment.RecommendedApproval)
}

func TestValidateCoupon_MalformedDate(t *testing.T) {
	h := newHandler()

	_, err := h.ValidateCoupon(context.Background(), &admin.ValidateCouponRequest{
		Coupon: &admin.CouponRequestMsg{
			DiscountType: "percentage",
			Value:        "10",
			MaxUses:      10,
			StartDate:    "next tuesday",
			ExpiryDate:   "2026-03-15",
		},
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAnalyzePerformance_DerivesMetrics(t *testing.T) {
	h := newHandler()

	resp, err := h.AnalyzePerformance(context.Background(), &admin.AnalyzePerformanceRequest{
		Snapshot: &admin.PeriodSnapshotMsg{
			TotalRevenue:          "500000",
			PreviousPeriodRevenue: "400000",
			Commission:            "100000",
			TransactionCount:      5000,
			PerTransactionCost:    "2",
			ActiveVendors:         200,
			DepartedVendors:       20,
			ChargebackCount:       15,
		},
	})

	require.NoError(t, err)
	assert.InDelta(t, 25.0, resp.Financials.RevenueGrowth, 0.001)
	assert.Equal(t, "100", resp.Operations.AverageOrderValue)
	assert.Equal(t, "2500", resp.Operations.RevenuePerVendor)
	assert.Equal(t, "low", resp.Risks.RiskLevel)
	assert.NotEmpty(t, resp.Recommendations)
	assert.Empty(t, resp.Error)
}

func TestAnalyzePerformance_MissingSnapshotDegrades(t *testing.T) {
	h := newHandler()

	resp, err := h.AnalyzePerformance(context.Background(), &admin.AnalyzePerformanceRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Error)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestAssessFraudRisk_SuspiciousDispute(t *testing.T) {
	h := newHandler()

	resp, err := h.AssessFraudRisk(context.Background(), &admin.AssessFraudRiskRequest{
		Dispute: &admin.DisputeRecordMsg{
			Type:                        "quality",
			OrderValue:                  "1500",
			DaysSinceOrder:              2,
			CustomerHasMultipleDisputes: true,
		},
	})

	require.NoError(t, err)
	// 25 (multiple disputes) + 15 (filed within 2 days) = 40
	assert.Equal(t, int32(40), resp.Assessment.Score)
	assert.Equal(t, "medium", resp.Assessment.RiskLevel)
	assert.True(t, resp.Assessment.RequiresInvestigation)
	assert.False(t, resp.Assessment.AutomaticDenial)
}

func TestAssessFraudRisk_MissingDispute(t *testing.T) {
	h := newHandler()

	_, err := h.AssessFraudRisk(context.Background(), &admin.AssessFraudRiskRequest{})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestResolveDispute_HighValueQuality(t *testing.T) {
	h := newHandler()

	resp, err := h.ResolveDispute(context.Background(), &admin.ResolveDisputeRequest{
		Dispute: &admin.DisputeRecordMsg{
			Type:                  "quality",
			OrderValue:            "5000",
			DaysSinceOrder:        5,
			PhotoEvidenceProvided: true,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "partial_refund", resp.RecommendedAction)
	assert.Equal(t, "2500", resp.RefundAmount)
	assert.Equal(t, "high", resp.Priority)
	assert.Equal(t, "24 hours", resp.ResolutionTimeframe)
	assert.True(t, resp.EscalationRequired)
	require.NotNil(t, resp.FraudRisk)
}

func TestResolveDispute_MissingDisputeInvestigates(t *testing.T) {
	h := newHandler()

	resp, err := h.ResolveDispute(context.Background(), &admin.ResolveDisputeRequest{})

	require.NoError(t, err)
	assert.Equal(t, "investigate", resp.RecommendedAction)
	assert.Equal(t, "0", resp.RefundAmount)
}

func TestResolveDispute_MalformedOrderValue(t *testing.T) {
	h := newHandler()

	_, err := h.ResolveDispute(context.Background(), &admin.ResolveDisputeRequest{
		Dispute: &admin.DisputeRecordMsg{Type: "quality", OrderValue: "5,000"},
	})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
