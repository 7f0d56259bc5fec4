package models

import (
	"github.com/shopspring/decimal"
)

// VendorApplication is a vendor's onboarding application as submitted
// through the marketplace. Zero values are safe: a missing document flag
// reads as not provided and a zero revenue estimate is scored as such.
type VendorApplication struct {
	// Documentation
	BusinessLicense bool
	TaxID           bool
	AddressProof    bool

	// Background check outcome
	BackgroundIssues bool

	// Catalog readiness; only the number of samples matters
	SampleProducts []string

	// Projected first-year revenue
	ExpectedRevenue decimal.Decimal
}

// ApplicationResult is the scored outcome of a vendor application review.
type ApplicationResult struct {
	Score           int // 0..100
	IsApproved      bool
	RiskLevel       RiskLevel
	Issues          []string
	Recommendations []string
}
