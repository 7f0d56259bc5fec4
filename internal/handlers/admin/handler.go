package admin

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/markethub/admin-decision-service/internal/services/decision"
	"github.com/markethub/admin-decision-service/pkg/observability"
)

// Metric labels for the evaluators exposed by this service.
const (
	evaluatorVendor      = "vendor_application"
	evaluatorCoupon      = "coupon_request"
	evaluatorPerformance = "platform_performance"
	evaluatorFraud       = "fraud_risk"
	evaluatorDispute     = "dispute_resolution"
)

// Compile-time assertion that Handler implements AdminDecisionServiceServer.
var _ AdminDecisionServiceServer = (*Handler)(nil)

// Handler implements the gRPC AdminDecisionServiceServer interface over the
// decision engine.
type Handler struct {
	UnimplementedAdminDecisionServiceServer
	engine *decision.Engine
	logger *zap.Logger
}

// NewHandler creates a new gRPC handler.
func NewHandler(engine *decision.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// ScoreVendorApplication scores a vendor onboarding application.
func (h *Handler) ScoreVendorApplication(ctx context.Context, req *ScoreVendorApplicationRequest) (*ScoreVendorApplicationResponse, error) {
	if req == nil || req.Application == nil {
		return nil, status.Error(codes.InvalidArgument, "application is required")
	}

	app, err := vendorApplicationFromMsg(req.Application)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result := h.engine.Vendors.Score(app)

	outcome := "rejected"
	if result.IsApproved {
		outcome = "approved"
	}
	observability.RecordEvaluation(evaluatorVendor, outcome)
	observability.RecordEvaluationScore(evaluatorVendor, result.Score)
	observability.RecordEvaluationIssues(evaluatorVendor, len(result.Issues))

	h.logger.Info("scored vendor application",
		zap.Int("score", result.Score),
		zap.Bool("approved", result.IsApproved),
		zap.String("risk_level", string(result.RiskLevel)),
	)

	return applicationResultToMsg(result), nil
}

// ValidateCoupon validates a proposed coupon against platform limits.
func (h *Handler) ValidateCoupon(ctx context.Context, req *ValidateCouponRequest) (*ValidateCouponResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	// A missing coupon message produces the validator's degraded result
	// rather than a transport error.
	coupon, err := couponFromMsg(req.Coupon)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result := h.engine.Coupons.Validate(coupon)

	outcome := "invalid"
	if result.IsValid {
		outcome = "valid"
	}
	observability.RecordEvaluation(evaluatorCoupon, outcome)
	observability.RecordEvaluationIssues(evaluatorCoupon, len(result.Issues))

	h.logger.Info("validated coupon request",
		zap.Bool("valid", result.IsValid),
		zap.Int("issues", len(result.Issues)),
		zap.String("approval", string(result.RiskAssessment.RecommendedApproval)),
	)

	return couponValidationToMsg(result), nil
}

// AnalyzePerformance derives platform metrics from a period snapshot.
func (h *Handler) AnalyzePerformance(ctx context.Context, req *AnalyzePerformanceRequest) (*AnalyzePerformanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	snapshot, err := snapshotFromMsg(req.Snapshot)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	analysis := h.engine.Performance.Analyze(snapshot)

	observability.RecordEvaluation(evaluatorPerformance, string(analysis.Risks.RiskLevel))

	h.logger.Info("analyzed platform performance",
		zap.Float64("revenue_growth", analysis.Financials.RevenueGrowth),
		zap.Float64("chargeback_rate", analysis.Risks.ChargebackRate),
		zap.String("risk_level", string(analysis.Risks.RiskLevel)),
	)

	return performanceAnalysisToMsg(analysis), nil
}

// AssessFraudRisk scores the fraud likelihood of a dispute.
func (h *Handler) AssessFraudRisk(ctx context.Context, req *AssessFraudRiskRequest) (*AssessFraudRiskResponse, error) {
	if req == nil || req.Dispute == nil {
		return nil, status.Error(codes.InvalidArgument, "dispute is required")
	}

	record, err := disputeFromMsg(req.Dispute)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	assessment := h.engine.Fraud.Assess(*record)

	observability.RecordEvaluation(evaluatorFraud, string(assessment.RiskLevel))
	observability.RecordEvaluationScore(evaluatorFraud, assessment.Score)

	h.logger.Info("assessed fraud risk",
		zap.Int("score", assessment.Score),
		zap.String("risk_level", string(assessment.RiskLevel)),
		zap.Bool("automatic_denial", assessment.AutomaticDenial),
	)

	return &AssessFraudRiskResponse{Assessment: fraudAssessmentToMsg(assessment)}, nil
}

// ResolveDispute recommends a remedy for an order dispute.
func (h *Handler) ResolveDispute(ctx context.Context, req *ResolveDisputeRequest) (*ResolveDisputeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	// A missing dispute message produces the resolver's investigate result
	// rather than a transport error.
	record, err := disputeFromMsg(req.Dispute)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resolution := h.engine.Disputes.Resolve(record)

	observability.RecordEvaluation(evaluatorDispute, string(resolution.RecommendedAction))

	h.logger.Info("resolved dispute",
		zap.String("action", string(resolution.RecommendedAction)),
		zap.String("refund", resolution.RefundAmount.String()),
		zap.String("priority", string(resolution.Priority)),
		zap.Bool("escalation", resolution.EscalationRequired),
	)

	return disputeResolutionToMsg(resolution), nil
}
