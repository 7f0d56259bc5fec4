package decision

import (
	"github.com/markethub/admin-decision-service/internal/domain/models"
)

// FraudAssessor scores the likelihood that an order dispute is fraudulent
// from weighted behavioral signals. Evidence reduces the score.
type FraudAssessor struct {
	policy *Policy
}

// NewFraudAssessor creates a new FraudAssessor bound to the given policy.
func NewFraudAssessor(policy *Policy) *FraudAssessor {
	return &FraudAssessor{policy: policy}
}

// Assess accumulates signal weights from zero, subtracts evidence credits,
// and clamps the result to [0, 100] before classification. Partial records
// are fine; absent flags simply contribute nothing.
func (a *FraudAssessor) Assess(record models.DisputeRecord) models.FraudAssessment {
	p := a.policy.Fraud

	score := 0
	if record.CustomerHasMultipleDisputes {
		score += p.MultipleDisputesWeight
	}
	if record.VendorHasNoPriorComplaints {
		score += p.CleanVendorWeight
	}
	if record.DaysSinceOrder <= p.RecentDisputeMaxDays {
		score += p.RecentDisputeWeight
	}
	if record.CustomerAccountNew {
		score += p.NewAccountWeight
	}

	if record.PhotoEvidenceProvided {
		score -= p.PhotoEvidenceCredit
	}
	if record.ThirdPartyVerification {
		score -= p.VerificationCredit
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return models.FraudAssessment{
		Score:                 score,
		RiskLevel:             a.riskLevel(score),
		RequiresInvestigation: score > p.InvestigateAboveScore,
		AutomaticDenial:       score > p.DenyAboveScore,
	}
}

func (a *FraudAssessor) riskLevel(score int) models.RiskLevel {
	p := a.policy.Fraud
	switch {
	case score >= p.HighRiskMinScore:
		return models.RiskHigh
	case score >= p.MediumRiskMinScore:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
