package decision_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markethub/admin-decision-service/internal/services/decision"
)

func TestDefaultPolicy(t *testing.T) {
	policy := decision.DefaultPolicy()

	assert.Equal(t, 25, policy.Vendor.LicensePenalty)
	assert.Equal(t, 50, policy.Vendor.BackgroundPenalty)
	assert.Equal(t, float64(30), policy.Coupon.MaxPercentageDiscount)
	assert.Equal(t, 365, policy.Coupon.MaxDurationDays)
	assert.Equal(t, 1.5, policy.Performance.HighRiskChargebackRate)
	assert.Equal(t, 80, policy.Fraud.DenyAboveScore)
	assert.Equal(t, float64(5000), policy.Dispute.HighValueOrder)
}

func TestLoadPolicyFile_OverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `
coupon:
  max_percentage_discount: 50
vendor:
  license_penalty: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	policy, err := decision.LoadPolicyFile(path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, float64(50), policy.Coupon.MaxPercentageDiscount)
	assert.Equal(t, 40, policy.Vendor.LicensePenalty)
	// Untouched fields keep their defaults
	assert.Equal(t, 20, policy.Vendor.TaxIDPenalty)
	assert.Equal(t, 100, policy.Coupon.AutoApproveMaxUses)
}

func TestLoadPolicyFile_MissingFile(t *testing.T) {
	_, err := decision.LoadPolicyFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadPolicyFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("coupon: ["), 0o600))

	_, err := decision.LoadPolicyFile(path)

	assert.Error(t, err)
}

func TestNewEngine_SharesOneFraudAssessor(t *testing.T) {
	policy := decision.DefaultPolicy()
	engine := decision.NewEngine(&policy)

	assert.NotNil(t, engine.Vendors)
	assert.NotNil(t, engine.Coupons)
	assert.NotNil(t, engine.Performance)
	assert.NotNil(t, engine.Fraud)
	assert.NotNil(t, engine.Disputes)
}
