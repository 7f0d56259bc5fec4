package decision

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/markethub/admin-decision-service/internal/domain/models"
)

// VendorScorer evaluates vendor onboarding applications against the
// platform's documentation and revenue requirements.
type VendorScorer struct {
	policy *Policy
}

// NewVendorScorer creates a new VendorScorer bound to the given policy.
func NewVendorScorer(policy *Policy) *VendorScorer {
	return &VendorScorer{policy: policy}
}

// Score evaluates an application. The score starts at 100 and each failing
// requirement subtracts a fixed penalty and appends one issue. The score is
// floored at 0; the issue list always enumerates every violated rule, even
// past the floor.
func (s *VendorScorer) Score(app models.VendorApplication) models.ApplicationResult {
	p := s.policy.Vendor

	score := 100
	issues := make([]string, 0)

	if !app.BusinessLicense {
		score -= p.LicensePenalty
		issues = append(issues, "Business license not provided")
	}
	if !app.TaxID {
		score -= p.TaxIDPenalty
		issues = append(issues, "Tax ID not provided")
	}
	if !app.AddressProof {
		score -= p.AddressProofPenalty
		issues = append(issues, "Address proof not provided")
	}
	if len(app.SampleProducts) < p.MinSampleProducts {
		score -= p.SamplePenalty
		issues = append(issues, fmt.Sprintf("Fewer than %d sample products submitted", p.MinSampleProducts))
	}
	if app.ExpectedRevenue.LessThan(decimal.NewFromFloat(p.MinExpectedRevenue)) {
		score -= p.RevenuePenalty
		issues = append(issues, fmt.Sprintf("Expected revenue below the %.0f minimum", p.MinExpectedRevenue))
	}
	// Background issues are penalized after all document checks.
	if app.BackgroundIssues {
		score -= p.BackgroundPenalty
		issues = append(issues, "Background check issues found")
	}
	if score < 0 {
		score = 0
	}

	riskLevel := s.riskLevel(app, score)
	approved := score >= p.ApprovalMinScore && len(issues) < p.ApprovalMaxIssues

	return models.ApplicationResult{
		Score:           score,
		IsApproved:      approved,
		RiskLevel:       riskLevel,
		Issues:          issues,
		Recommendations: s.recommendations(approved),
	}
}

func (s *VendorScorer) riskLevel(app models.VendorApplication, score int) models.RiskLevel {
	p := s.policy.Vendor
	switch {
	case app.BackgroundIssues:
		return models.RiskHigh
	case score >= p.LowRiskMinScore:
		return models.RiskLow
	case score > p.HighRiskMaxScore:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

func (s *VendorScorer) recommendations(approved bool) []string {
	if approved {
		return []string{
			"Approve with a standard 90-day probation period",
			"Schedule the first product quality review within 30 days",
			"Monitor first-month sales and dispute metrics",
		}
	}
	return []string{
		"Request the missing documentation from the vendor",
		"Ask for at least three representative sample products",
		"Re-evaluate once the outstanding issues are resolved",
	}
}
