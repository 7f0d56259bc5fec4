package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType distinguishes percentage coupons from fixed-amount coupons
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// ApprovalRoute is the recommended handling for a coupon request
type ApprovalRoute string

const (
	ApprovalAuto   ApprovalRoute = "auto"
	ApprovalManual ApprovalRoute = "manual"
	ApprovalDeny   ApprovalRoute = "deny"
)

// CouponRequest is a proposed promotional coupon submitted for review.
type CouponRequest struct {
	DiscountType DiscountType
	Value        decimal.Decimal
	MaxUses      int
	MinPurchase  decimal.Decimal

	// Validity window
	StartDate  time.Time
	ExpiryDate time.Time

	// Optional context for savings estimation
	EstimatedAvgOrderValue *decimal.Decimal
	Category               string
}

// CouponRiskAssessment estimates the financial exposure of a coupon.
type CouponRiskAssessment struct {
	Category               string
	PotentialSavingsPerUse decimal.Decimal
	EstimatedTotalBenefit  decimal.Decimal
	RecommendedApproval    ApprovalRoute
}

// CouponValidation is the outcome of validating a coupon request against
// platform limits. IsValid is true iff Issues is empty.
type CouponValidation struct {
	IsValid        bool
	Issues         []string
	RiskAssessment CouponRiskAssessment
}
