package decision_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/markethub/admin-decision-service/internal/domain/models"
	"github.com/markethub/admin-decision-service/internal/services/decision"
)

func newVendorScorer() *decision.VendorScorer {
	policy := decision.DefaultPolicy()
	return decision.NewVendorScorer(&policy)
}

func completeApplication() models.VendorApplication {
	return models.VendorApplication{
		BusinessLicense: true,
		TaxID:           true,
		AddressProof:    true,
		SampleProducts:  []string{"desk lamp", "bookshelf", "side table"},
		ExpectedRevenue: decimal.NewFromInt(80000),
	}
}

func TestVendorScorer_CompleteApplication(t *testing.T) {
	result := newVendorScorer().Score(completeApplication())

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.True(t, result.IsApproved)
	assert.Empty(t, result.Issues)
	assert.NotEmpty(t, result.Recommendations)
}

func TestVendorScorer_MissingTaxIDSamplesAndRevenue(t *testing.T) {
	app := completeApplication()
	app.TaxID = false
	app.SampleProducts = []string{"desk lamp", "bookshelf"}
	app.ExpectedRevenue = decimal.NewFromInt(45000)

	result := newVendorScorer().Score(app)

	// 100 - tax 20 - samples 10 - revenue 15 = 55
	assert.Equal(t, 55, result.Score)
	assert.Equal(t, models.RiskMedium, result.RiskLevel)
	assert.False(t, result.IsApproved)
	assert.Len(t, result.Issues, 3)
}

func TestVendorScorer_BackgroundIssuesAlwaysHighRisk(t *testing.T) {
	app := completeApplication()
	app.BackgroundIssues = true

	result := newVendorScorer().Score(app)

	// 100 - background 50 = 50
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.False(t, result.IsApproved)
	assert.Contains(t, result.Issues, "Background check issues found")
}

func TestVendorScorer_ScoreFlooredAtZero(t *testing.T) {
	app := models.VendorApplication{} // everything missing or failing
	app.BackgroundIssues = true

	result := newVendorScorer().Score(app)

	// Raw total 100 - 25 - 20 - 15 - 10 - 15 - 50 = -35, floored to 0.
	// The floor clamps only the score; every violated rule is still listed.
	assert.Equal(t, 0, result.Score)
	assert.Len(t, result.Issues, 6)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.False(t, result.IsApproved)
}

func TestVendorScorer_IssueOrderIsFixed(t *testing.T) {
	app := models.VendorApplication{BackgroundIssues: true}

	result := newVendorScorer().Score(app)

	expected := []string{
		"Business license not provided",
		"Tax ID not provided",
		"Address proof not provided",
		"Fewer than 3 sample products submitted",
		"Expected revenue below the 50000 minimum",
		"Background check issues found",
	}
	assert.Equal(t, expected, result.Issues)
}

func TestVendorScorer_SingleMinorIssueStillApproved(t *testing.T) {
	app := completeApplication()
	app.SampleProducts = []string{"desk lamp"}

	result := newVendorScorer().Score(app)

	// 100 - samples 10 = 90, one issue: approved with low risk
	assert.Equal(t, 90, result.Score)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.True(t, result.IsApproved)
	assert.Len(t, result.Issues, 1)
}

func TestVendorScorer_TwoIssuesAtApprovalFloor(t *testing.T) {
	app := completeApplication()
	app.AddressProof = false
	app.ExpectedRevenue = decimal.NewFromInt(40000)

	result := newVendorScorer().Score(app)

	// 100 - address 15 - revenue 15 = 70, two issues: still approved
	assert.Equal(t, 70, result.Score)
	assert.Equal(t, models.RiskMedium, result.RiskLevel)
	assert.True(t, result.IsApproved)
}

func TestVendorScorer_ThreeIssuesBlockApproval(t *testing.T) {
	app := completeApplication()
	app.AddressProof = false
	app.SampleProducts = nil
	app.ExpectedRevenue = decimal.NewFromInt(40000)

	result := newVendorScorer().Score(app)

	// 100 - 15 - 10 - 15 = 60 and three issues: rejected on both counts
	assert.Equal(t, 60, result.Score)
	assert.False(t, result.IsApproved)
	assert.Len(t, result.Issues, 3)
}

func TestVendorScorer_ScoreAlwaysWithinBounds(t *testing.T) {
	scorer := newVendorScorer()

	apps := []models.VendorApplication{
		{},
		{BackgroundIssues: true},
		completeApplication(),
		{BusinessLicense: true, BackgroundIssues: true},
	}
	for _, app := range apps {
		result := scorer.Score(app)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		if result.IsApproved {
			assert.GreaterOrEqual(t, result.Score, 70)
			assert.Less(t, len(result.Issues), 3)
		}
	}
}

func TestVendorScorer_RejectedGetsRemediationChecklist(t *testing.T) {
	approved := newVendorScorer().Score(completeApplication())
	rejected := newVendorScorer().Score(models.VendorApplication{})

	assert.NotEmpty(t, approved.Recommendations)
	assert.NotEmpty(t, rejected.Recommendations)
	assert.NotEqual(t, approved.Recommendations, rejected.Recommendations)
}

func TestVendorScorer_PolicyOverride(t *testing.T) {
	policy := decision.DefaultPolicy()
	policy.Vendor.TaxIDPenalty = 40
	scorer := decision.NewVendorScorer(&policy)

	app := completeApplication()
	app.TaxID = false

	result := scorer.Score(app)

	// 100 - overridden tax penalty 40 = 60
	assert.Equal(t, 60, result.Score)
	assert.False(t, result.IsApproved)
}
