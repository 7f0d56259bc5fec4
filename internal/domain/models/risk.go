package models

// RiskLevel classifies an evaluated record by the attention it needs
// from a platform operator.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)
