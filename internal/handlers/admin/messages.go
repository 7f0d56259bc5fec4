package admin

// Proto-aligned request/response message types. Monetary fields travel as
// decimal strings; dates use RFC 3339.

// VendorApplicationMsg represents the proto VendorApplication message.
type VendorApplicationMsg struct {
	BusinessLicense  bool     `json:"business_license"`
	TaxID            bool     `json:"tax_id"`
	AddressProof     bool     `json:"address_proof"`
	BackgroundIssues bool     `json:"background_issues"`
	SampleProducts   []string `json:"sample_products"`
	ExpectedRevenue  string   `json:"expected_revenue"`
}

// ScoreVendorApplicationRequest represents the proto ScoreVendorApplicationRequest message.
type ScoreVendorApplicationRequest struct {
	Application *VendorApplicationMsg `json:"application"`
}

// ScoreVendorApplicationResponse represents the proto ScoreVendorApplicationResponse message.
type ScoreVendorApplicationResponse struct {
	Score           int32    `json:"score"`
	IsApproved      bool     `json:"is_approved"`
	RiskLevel       string   `json:"risk_level"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// CouponRequestMsg represents the proto CouponRequest message.
type CouponRequestMsg struct {
	DiscountType           string `json:"discount_type"`
	Value                  string `json:"value"`
	MaxUses                int32  `json:"max_uses"`
	MinPurchase            string `json:"min_purchase"`
	StartDate              string `json:"start_date"`
	ExpiryDate             string `json:"expiry_date"`
	EstimatedAvgOrderValue string `json:"estimated_avg_order_value,omitempty"`
	Category               string `json:"category"`
}

// ValidateCouponRequest represents the proto ValidateCouponRequest message.
type ValidateCouponRequest struct {
	Coupon *CouponRequestMsg `json:"coupon"`
}

// CouponRiskAssessmentMsg represents the proto CouponRiskAssessment message.
type CouponRiskAssessmentMsg struct {
	Category               string `json:"category"`
	PotentialSavingsPerUse string `json:"potential_savings_per_use"`
	EstimatedTotalBenefit  string `json:"estimated_total_benefit"`
	RecommendedApproval    string `json:"recommended_approval"`
}

// ValidateCouponResponse represents the proto ValidateCouponResponse message.
type ValidateCouponResponse struct {
	IsValid        bool                     `json:"is_valid"`
	Issues         []string                 `json:"issues"`
	RiskAssessment *CouponRiskAssessmentMsg `json:"risk_assessment"`
}

// PeriodSnapshotMsg represents the proto PeriodSnapshot message.
type PeriodSnapshotMsg struct {
	TotalRevenue          string `json:"total_revenue"`
	PreviousPeriodRevenue string `json:"previous_period_revenue"`
	Commission            string `json:"commission"`
	TransactionCount      int64  `json:"transaction_count"`
	PerTransactionCost    string `json:"per_transaction_cost"`
	ActiveVendors         int64  `json:"active_vendors"`
	DepartedVendors       int64  `json:"departed_vendors"`
	ChargebackCount       int64  `json:"chargeback_count"`
}

// AnalyzePerformanceRequest represents the proto AnalyzePerformanceRequest message.
type AnalyzePerformanceRequest struct {
	Snapshot *PeriodSnapshotMsg `json:"snapshot"`
}

// FinancialMetricsMsg represents the proto FinancialMetrics message.
type FinancialMetricsMsg struct {
	TotalRevenue     string  `json:"total_revenue"`
	NetProfit        string  `json:"net_profit"`
	ProfitMargin     float64 `json:"profit_margin"`
	CommissionMargin float64 `json:"commission_margin"`
	RevenueGrowth    float64 `json:"revenue_growth"`
}

// OperationalMetricsMsg represents the proto OperationalMetrics message.
type OperationalMetricsMsg struct {
	TransactionCount  int64  `json:"transaction_count"`
	AverageOrderValue string `json:"average_order_value"`
	RevenuePerVendor  string `json:"revenue_per_vendor"`
	VendorCount       int64  `json:"vendor_count"`
}

// RiskMetricsMsg represents the proto RiskMetrics message.
type RiskMetricsMsg struct {
	ChargebackRate   float64 `json:"chargeback_rate"`
	VendorChurnRate  float64 `json:"vendor_churn_rate"`
	OperationalCosts string  `json:"operational_costs"`
	RiskLevel        string  `json:"risk_level"`
}

// AnalyzePerformanceResponse represents the proto AnalyzePerformanceResponse message.
type AnalyzePerformanceResponse struct {
	Financials      *FinancialMetricsMsg   `json:"financials"`
	Operations      *OperationalMetricsMsg `json:"operations"`
	Risks           *RiskMetricsMsg        `json:"risks"`
	Recommendations []string               `json:"recommendations"`
	Error           string                 `json:"error,omitempty"`
}

// DisputeRecordMsg represents the proto DisputeRecord message.
type DisputeRecordMsg struct {
	Type                        string `json:"type"`
	OrderValue                  string `json:"order_value"`
	DaysSinceOrder              int32  `json:"days_since_order"`
	CustomerHasMultipleDisputes bool   `json:"customer_has_multiple_disputes"`
	CustomerAccountNew          bool   `json:"customer_account_new"`
	PhotoEvidenceProvided       bool   `json:"photo_evidence_provided"`
	ThirdPartyVerification      bool   `json:"third_party_verification"`
	VendorHasNoPriorComplaints  bool   `json:"vendor_has_no_prior_complaints"`
}

// AssessFraudRiskRequest represents the proto AssessFraudRiskRequest message.
type AssessFraudRiskRequest struct {
	Dispute *DisputeRecordMsg `json:"dispute"`
}

// FraudAssessmentMsg represents the proto FraudAssessment message.
type FraudAssessmentMsg struct {
	Score                 int32  `json:"score"`
	RiskLevel             string `json:"risk_level"`
	RequiresInvestigation bool   `json:"requires_investigation"`
	AutomaticDenial       bool   `json:"automatic_denial"`
}

// AssessFraudRiskResponse represents the proto AssessFraudRiskResponse message.
type AssessFraudRiskResponse struct {
	Assessment *FraudAssessmentMsg `json:"assessment"`
}

// ResolveDisputeRequest represents the proto ResolveDisputeRequest message.
type ResolveDisputeRequest struct {
	Dispute *DisputeRecordMsg `json:"dispute"`
}

// ResolveDisputeResponse represents the proto ResolveDisputeResponse message.
type ResolveDisputeResponse struct {
	RecommendedAction   string              `json:"recommended_action"`
	RefundAmount        string              `json:"refund_amount"`
	Priority            string              `json:"priority"`
	ResolutionTimeframe string              `json:"resolution_timeframe"`
	FraudRisk           *FraudAssessmentMsg `json:"fraud_risk"`
	EscalationRequired  bool                `json:"escalation_required"`
}
