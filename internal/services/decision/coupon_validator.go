package decision

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/markethub/admin-decision-service/internal/domain/models"
	"github.com/markethub/admin-decision-service/pkg/timeutil"
)

// CouponValidator checks proposed promotional coupons against platform
// limits and estimates their financial exposure.
type CouponValidator struct {
	policy *Policy
}

// NewCouponValidator creates a new CouponValidator bound to the given policy.
func NewCouponValidator(policy *Policy) *CouponValidator {
	return &CouponValidator{policy: policy}
}

// Validate applies every limit rule independently; rules are not mutually
// exclusive and each appends its own issue. A nil request yields an invalid
// result with a single issue rather than a panic.
func (v *CouponValidator) Validate(req *models.CouponRequest) models.CouponValidation {
	if req == nil {
		return models.CouponValidation{
			IsValid: false,
			Issues:  []string{"Coupon request is missing or malformed"},
			RiskAssessment: models.CouponRiskAssessment{
				RecommendedApproval: models.ApprovalDeny,
			},
		}
	}

	p := v.policy.Coupon
	issues := make([]string, 0)

	switch req.DiscountType {
	case models.DiscountPercentage:
		if req.Value.GreaterThan(decimal.NewFromFloat(p.MaxPercentageDiscount)) {
			issues = append(issues, fmt.Sprintf("Percentage discount exceeds maximum allowed (%.0f%%)", p.MaxPercentageDiscount))
		}
	case models.DiscountFixed:
		if req.Value.GreaterThan(decimal.NewFromFloat(p.MaxFixedDiscount)) {
			issues = append(issues, "Fixed discount amount too high")
		}
	}

	if req.MaxUses < 1 {
		issues = append(issues, "Maximum uses must be at least 1")
	}
	if req.MinPurchase.GreaterThan(decimal.NewFromFloat(p.MaxMinPurchase)) {
		issues = append(issues, "Minimum purchase requirement too high")
	}

	if req.StartDate.IsZero() || req.ExpiryDate.IsZero() {
		issues = append(issues, "Coupon start and expiry dates are required")
	} else {
		days := timeutil.WholeDaysCeil(req.StartDate, req.ExpiryDate)
		if days > p.MaxDurationDays {
			issues = append(issues, "Coupon duration too long (max 1 year)")
		}
		if days < p.MinDurationDays {
			issues = append(issues, "Coupon duration too short (minimum 1 day)")
		}
		// A zero or negative duration also flags the reversed range; both
		// messages co-occur and are kept distinct for consumers matching
		// on message text.
		if days <= 0 {
			issues = append(issues, "Coupon expiry must be after start")
		}
	}

	valid := len(issues) == 0
	savings := v.savingsPerUse(req)

	return models.CouponValidation{
		IsValid: valid,
		Issues:  issues,
		RiskAssessment: models.CouponRiskAssessment{
			Category:               req.Category,
			PotentialSavingsPerUse: savings,
			EstimatedTotalBenefit:  savings.Mul(decimal.NewFromInt(int64(req.MaxUses))),
			RecommendedApproval:    v.approvalRoute(valid, req.MaxUses),
		},
	}
}

// savingsPerUse estimates the discount granted by one redemption.
func (v *CouponValidator) savingsPerUse(req *models.CouponRequest) decimal.Decimal {
	switch req.DiscountType {
	case models.DiscountPercentage:
		avgOrder := decimal.NewFromFloat(v.policy.Coupon.DefaultAvgOrderValue)
		if req.EstimatedAvgOrderValue != nil {
			avgOrder = *req.EstimatedAvgOrderValue
		}
		return avgOrder.Mul(req.Value).Div(decimal.NewFromInt(100))
	case models.DiscountFixed:
		return req.Value
	default:
		return decimal.Zero
	}
}

func (v *CouponValidator) approvalRoute(valid bool, maxUses int) models.ApprovalRoute {
	p := v.policy.Coupon
	switch {
	case valid && maxUses <= p.AutoApproveMaxUses:
		return models.ApprovalAuto
	case valid && maxUses <= p.ManualReviewMaxUses:
		return models.ApprovalManual
	default:
		return models.ApprovalDeny
	}
}
