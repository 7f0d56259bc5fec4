package decision

import (
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/markethub/admin-decision-service/pkg/errors"
)

// Policy is the rule-constant table shared by all evaluators: every
// threshold, penalty, and weight the engine applies. It is loaded once at
// startup and passed by reference; evaluators never mutate it. Tests may
// construct alternate policies to exercise different thresholds.
type Policy struct {
	Vendor      VendorPolicy      `yaml:"vendor"`
	Coupon      CouponPolicy      `yaml:"coupon"`
	Performance PerformancePolicy `yaml:"performance"`
	Fraud       FraudPolicy       `yaml:"fraud"`
	Dispute     DisputePolicy     `yaml:"dispute"`
}

// VendorPolicy tunes vendor application scoring.
type VendorPolicy struct {
	LicensePenalty      int     `yaml:"license_penalty"`
	TaxIDPenalty        int     `yaml:"tax_id_penalty"`
	AddressProofPenalty int     `yaml:"address_proof_penalty"`
	SamplePenalty       int     `yaml:"sample_penalty"`
	RevenuePenalty      int     `yaml:"revenue_penalty"`
	BackgroundPenalty   int     `yaml:"background_penalty"`
	MinSampleProducts   int     `yaml:"min_sample_products"`
	MinExpectedRevenue  float64 `yaml:"min_expected_revenue"`
	ApprovalMinScore    int     `yaml:"approval_min_score"`
	ApprovalMaxIssues   int     `yaml:"approval_max_issues"`
	LowRiskMinScore     int     `yaml:"low_risk_min_score"`
	HighRiskMaxScore    int     `yaml:"high_risk_max_score"`
}

// CouponPolicy tunes coupon request validation.
type CouponPolicy struct {
	MaxPercentageDiscount float64 `yaml:"max_percentage_discount"`
	MaxFixedDiscount      float64 `yaml:"max_fixed_discount"`
	MaxMinPurchase        float64 `yaml:"max_min_purchase"`
	MaxDurationDays       int     `yaml:"max_duration_days"`
	MinDurationDays       int     `yaml:"min_duration_days"`
	DefaultAvgOrderValue  float64 `yaml:"default_avg_order_value"`
	AutoApproveMaxUses    int     `yaml:"auto_approve_max_uses"`
	ManualReviewMaxUses   int     `yaml:"manual_review_max_uses"`
}

// PerformancePolicy tunes period analysis thresholds. Rates are percents.
type PerformancePolicy struct {
	HighRiskChargebackRate   float64 `yaml:"high_risk_chargeback_rate"`
	MediumRiskChargebackRate float64 `yaml:"medium_risk_chargeback_rate"`
	GrowthWarningBelow       float64 `yaml:"growth_warning_below"`
	MarginWarningBelow       float64 `yaml:"margin_warning_below"`
	ChargebackWarningAbove   float64 `yaml:"chargeback_warning_above"`
	ChurnWarningAbove        float64 `yaml:"churn_warning_above"`
}

// FraudPolicy tunes dispute fraud scoring.
type FraudPolicy struct {
	MultipleDisputesWeight int `yaml:"multiple_disputes_weight"`
	CleanVendorWeight      int `yaml:"clean_vendor_weight"`
	RecentDisputeWeight    int `yaml:"recent_dispute_weight"`
	NewAccountWeight       int `yaml:"new_account_weight"`
	PhotoEvidenceCredit    int `yaml:"photo_evidence_credit"`
	VerificationCredit     int `yaml:"verification_credit"`
	RecentDisputeMaxDays   int `yaml:"recent_dispute_max_days"`
	HighRiskMinScore       int `yaml:"high_risk_min_score"`
	MediumRiskMinScore     int `yaml:"medium_risk_min_score"`
	InvestigateAboveScore  int `yaml:"investigate_above_score"`
	DenyAboveScore         int `yaml:"deny_above_score"`
}

// DisputePolicy tunes dispute resolution. Refund rates are fractions of
// the disputed order value.
type DisputePolicy struct {
	HighValueOrder          float64 `yaml:"high_value_order"`
	HighValueQualityRefund  float64 `yaml:"high_value_quality_refund"`
	QualityRefund           float64 `yaml:"quality_refund"`
	ShippingRefund          float64 `yaml:"shipping_refund"`
	ShippingRefundCap       float64 `yaml:"shipping_refund_cap"`
	DelayedShippingDays     int     `yaml:"delayed_shipping_days"`
	MissingItemRefund       float64 `yaml:"missing_item_refund"`
	EscalateAboveFraudScore int     `yaml:"escalate_above_fraud_score"`
}

// DefaultPolicy returns the platform's standard rule table.
func DefaultPolicy() Policy {
	return Policy{
		Vendor: VendorPolicy{
			LicensePenalty:      25,
			TaxIDPenalty:        20,
			AddressProofPenalty: 15,
			SamplePenalty:       10,
			RevenuePenalty:      15,
			BackgroundPenalty:   50,
			MinSampleProducts:   3,
			MinExpectedRevenue:  50000,
			ApprovalMinScore:    70,
			ApprovalMaxIssues:   3,
			LowRiskMinScore:     85,
			HighRiskMaxScore:    50,
		},
		Coupon: CouponPolicy{
			MaxPercentageDiscount: 30,
			MaxFixedDiscount:      10000,
			MaxMinPurchase:        50000,
			MaxDurationDays:       365,
			MinDurationDays:       1,
			DefaultAvgOrderValue:  2000,
			AutoApproveMaxUses:    100,
			ManualReviewMaxUses:   1000,
		},
		Performance: PerformancePolicy{
			HighRiskChargebackRate:   1.5,
			MediumRiskChargebackRate: 0.8,
			GrowthWarningBelow:       5,
			MarginWarningBelow:       15,
			ChargebackWarningAbove:   1,
			ChurnWarningAbove:        20,
		},
		Fraud: FraudPolicy{
			MultipleDisputesWeight: 25,
			CleanVendorWeight:      20,
			RecentDisputeWeight:    15,
			NewAccountWeight:       10,
			PhotoEvidenceCredit:    30,
			VerificationCredit:     20,
			RecentDisputeMaxDays:   2,
			HighRiskMinScore:       70,
			MediumRiskMinScore:     40,
			InvestigateAboveScore:  30,
			DenyAboveScore:         80,
		},
		Dispute: DisputePolicy{
			HighValueOrder:          5000,
			HighValueQualityRefund:  0.50,
			QualityRefund:           0.30,
			ShippingRefund:          0.10,
			ShippingRefundCap:       200,
			DelayedShippingDays:     7,
			MissingItemRefund:       0.20,
			EscalateAboveFraudScore: 60,
		},
	}
}

// LoadPolicyFile reads YAML policy overrides from path on top of the
// default policy. Fields absent from the file keep their defaults.
func LoadPolicyFile(path string) (Policy, error) {
	policy := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, apperrors.NewPolicyError(path, "read policy file", err)
	}

	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, apperrors.NewPolicyError(path, "parse policy file", err)
	}

	return policy, nil
}
