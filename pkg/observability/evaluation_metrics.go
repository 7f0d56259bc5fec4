package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Decision engine metrics
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_evaluations_total",
		Help: "Total number of decision engine evaluations",
	}, []string{
		"evaluator", // vendor_application, coupon_request, platform_performance, fraud_risk, dispute_resolution
		"outcome",   // evaluator-specific: approved/rejected, valid/invalid, risk level, action
	})

	evaluationScores = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_evaluation_score",
		Help:    "Score distribution of scoring evaluators (0-100)",
		Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{
		"evaluator",
	})

	evaluationIssues = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "admin_evaluation_issues",
		Help:    "Number of issues flagged per evaluation",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6},
	}, []string{
		"evaluator",
	})
)

// RecordEvaluation records one engine evaluation outcome.
func RecordEvaluation(evaluator, outcome string) {
	evaluationsTotal.WithLabelValues(evaluator, outcome).Inc()
}

// RecordEvaluationScore records the numeric score an evaluator produced.
func RecordEvaluationScore(evaluator string, score int) {
	evaluationScores.WithLabelValues(evaluator).Observe(float64(score))
}

// RecordEvaluationIssues records how many issues an evaluation flagged.
func RecordEvaluationIssues(evaluator string, issueCount int) {
	evaluationIssues.WithLabelValues(evaluator).Observe(float64(issueCount))
}
