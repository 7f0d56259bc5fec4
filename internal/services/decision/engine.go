package decision

// Engine bundles the five evaluators behind one constructor so callers
// wire a single dependency. Every evaluator is pure and stateless beyond
// the shared read-only policy, so an Engine is safe for concurrent use.
type Engine struct {
	Vendors     *VendorScorer
	Coupons     *CouponValidator
	Performance *PerformanceAnalyzer
	Fraud       *FraudAssessor
	Disputes    *DisputeResolver
}

// NewEngine creates an Engine over the given policy. The dispute resolver
// shares the engine's fraud assessor.
func NewEngine(policy *Policy) *Engine {
	fraud := NewFraudAssessor(policy)
	return &Engine{
		Vendors:     NewVendorScorer(policy),
		Coupons:     NewCouponValidator(policy),
		Performance: NewPerformanceAnalyzer(policy),
		Fraud:       fraud,
		Disputes:    NewDisputeResolver(policy, fraud),
	}
}
