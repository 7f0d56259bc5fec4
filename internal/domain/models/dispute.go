package models

import (
	"github.com/shopspring/decimal"
)

// DisputeType categorizes an order dispute filed by a customer
type DisputeType string

const (
	DisputeQuality         DisputeType = "quality"
	DisputeShippingDelayed DisputeType = "shipping_delayed"
	DisputeProductMismatch DisputeType = "product_mismatch"
	DisputeMissingItem     DisputeType = "missing_item"
	DisputeOther           DisputeType = "other"
)

// ResolutionAction is the recommended remedy for a dispute
type ResolutionAction string

const (
	ActionPartialRefund       ResolutionAction = "partial_refund"
	ActionSmallRefund         ResolutionAction = "small_refund"
	ActionShippingCredit      ResolutionAction = "shipping_credit"
	ActionFullRefund          ResolutionAction = "full_refund"
	ActionPartialRefundReship ResolutionAction = "partial_refund_reship"
	ActionEscalate            ResolutionAction = "escalate_to_management"
	ActionDeny                ResolutionAction = "deny"
	ActionInvestigate         ResolutionAction = "investigate"
)

// Priority is the handling urgency of a resolution
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DisputeRecord is an order dispute as filed, enriched with the behavioral
// flags the caller resolved from order and account history. Partial records
// are allowed; absent flags read as false.
type DisputeRecord struct {
	Type           DisputeType
	OrderValue     decimal.Decimal
	DaysSinceOrder int

	// Customer behavior signals
	CustomerHasMultipleDisputes bool
	CustomerAccountNew          bool

	// Evidence
	PhotoEvidenceProvided  bool
	ThirdPartyVerification bool

	// Vendor history
	VendorHasNoPriorComplaints bool
}

// FraudAssessment is the scored fraud likelihood of a dispute.
type FraudAssessment struct {
	Score                 int // clamped to 0..100
	RiskLevel             RiskLevel
	RequiresInvestigation bool
	AutomaticDenial       bool
}

// DisputeResolution is the recommended remedy for a dispute, including the
// fraud assessment that informed it. RefundAmount never exceeds the
// disputed order's value.
type DisputeResolution struct {
	RecommendedAction   ResolutionAction
	RefundAmount        decimal.Decimal
	Priority            Priority
	ResolutionTimeframe string
	FraudRisk           FraudAssessment
	EscalationRequired  bool
}
