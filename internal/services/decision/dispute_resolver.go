package decision

import (
	"github.com/shopspring/decimal"

	"github.com/markethub/admin-decision-service/internal/domain/models"
)

// DisputeResolver decides a recommended remedy and refund amount for an
// order dispute. It composes the FraudAssessor: a high fraud score
// overrides the type-based decision with a denial.
type DisputeResolver struct {
	policy   *Policy
	assessor *FraudAssessor
}

// NewDisputeResolver creates a new DisputeResolver bound to the given
// policy and fraud assessor.
func NewDisputeResolver(policy *Policy, assessor *FraudAssessor) *DisputeResolver {
	return &DisputeResolver{policy: policy, assessor: assessor}
}

// Resolve picks the base remedy from the dispute type, then applies the
// fraud override and clamps the refund to the order value. A nil record
// yields a neutral investigate result with a zero refund.
func (r *DisputeResolver) Resolve(record *models.DisputeRecord) models.DisputeResolution {
	if record == nil {
		return models.DisputeResolution{
			RecommendedAction:   models.ActionInvestigate,
			RefundAmount:        decimal.Zero,
			Priority:            models.PriorityMedium,
			ResolutionTimeframe: timeframeFor(models.PriorityMedium),
			FraudRisk:           models.FraudAssessment{RiskLevel: models.RiskLow},
		}
	}

	p := r.policy.Dispute

	var action models.ResolutionAction
	refund := decimal.Zero
	priority := models.PriorityMedium

	switch record.Type {
	case models.DisputeQuality:
		action = models.ActionPartialRefund
		if record.OrderValue.GreaterThanOrEqual(decimal.NewFromFloat(p.HighValueOrder)) {
			priority = models.PriorityHigh
			refund = refundFraction(record.OrderValue, p.HighValueQualityRefund)
		} else {
			refund = refundFraction(record.OrderValue, p.QualityRefund)
		}

	case models.DisputeShippingDelayed:
		priority = models.PriorityLow
		refund = decimal.Min(
			refundFraction(record.OrderValue, p.ShippingRefund),
			decimal.NewFromFloat(p.ShippingRefundCap),
		)
		if record.DaysSinceOrder > p.DelayedShippingDays {
			action = models.ActionSmallRefund
		} else {
			action = models.ActionShippingCredit
		}

	case models.DisputeProductMismatch:
		action = models.ActionFullRefund
		refund = record.OrderValue
		priority = models.PriorityHigh

	case models.DisputeMissingItem:
		action = models.ActionPartialRefundReship
		refund = refundFraction(record.OrderValue, p.MissingItemRefund)

	default:
		action = models.ActionEscalate
		priority = models.PriorityHigh
	}

	fraud := r.assessor.Assess(*record)
	if fraud.Score > r.policy.Fraud.DenyAboveScore {
		action = models.ActionDeny
		refund = decimal.Zero
	}

	if refund.GreaterThan(record.OrderValue) {
		refund = record.OrderValue
	}

	return models.DisputeResolution{
		RecommendedAction:   action,
		RefundAmount:        refund,
		Priority:            priority,
		ResolutionTimeframe: timeframeFor(priority),
		FraudRisk:           fraud,
		EscalationRequired:  priority == models.PriorityHigh || fraud.Score > p.EscalateAboveFraudScore,
	}
}

// refundFraction returns fraction of the order value rounded to cents.
func refundFraction(orderValue decimal.Decimal, fraction float64) decimal.Decimal {
	return orderValue.Mul(decimal.NewFromFloat(fraction)).Round(2)
}

func timeframeFor(priority models.Priority) string {
	switch priority {
	case models.PriorityHigh:
		return "24 hours"
	case models.PriorityLow:
		return "7 business days"
	default:
		return "3-5 business days"
	}
}
