package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/markethub/admin-decision-service/internal/handlers/admin"
	"github.com/markethub/admin-decision-service/pkg/timeutil"
)

// Handler exposes the decision endpoints as a JSON HTTP API. It reuses the
// gRPC handler's request and response messages, so both surfaces stay in
// lockstep.
type Handler struct {
	decisions *admin.Handler
	logger    *zap.Logger
}

// NewHandler creates a new HTTP handler over the gRPC decision handler.
func NewHandler(decisions *admin.Handler, logger *zap.Logger) *Handler {
	return &Handler{
		decisions: decisions,
		logger:    logger,
	}
}

// Register adds the decision routes to the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/admin/vendor-applications/score", h.scoreVendorApplication)
	mux.HandleFunc("POST /api/v1/admin/coupons/validate", h.validateCoupon)
	mux.HandleFunc("POST /api/v1/admin/performance/analyze", h.analyzePerformance)
	mux.HandleFunc("POST /api/v1/admin/disputes/assess-fraud", h.assessFraudRisk)
	mux.HandleFunc("POST /api/v1/admin/disputes/resolve", h.resolveDispute)
}

// evaluationEnvelope wraps every decision response with a traceable ID and
// the evaluation timestamp.
type evaluationEnvelope struct {
	EvaluationID string      `json:"evaluation_id"`
	EvaluatedAt  string      `json:"evaluated_at"`
	Result       interface{} `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) scoreVendorApplication(w http.ResponseWriter, r *http.Request) {
	var req admin.ScoreVendorApplicationRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.decisions.ScoreVendorApplication(r.Context(), &req)
	if err != nil {
		h.writeRPCError(w, err)
		return
	}
	h.writeResult(w, resp)
}

func (h *Handler) validateCoupon(w http.ResponseWriter, r *http.Request) {
	var req admin.ValidateCouponRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.decisions.ValidateCoupon(r.Context(), &req)
	if err != nil {
		h.writeRPCError(w, err)
		return
	}
	h.writeResult(w, resp)
}

func (h *Handler) analyzePerformance(w http.ResponseWriter, r *http.Request) {
	var req admin.AnalyzePerformanceRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.decisions.AnalyzePerformance(r.Context(), &req)
	if err != nil {
		h.writeRPCError(w, err)
		return
	}
	h.writeResult(w, resp)
}

func (h *Handler) assessFraudRisk(w http.ResponseWriter, r *http.Request) {
	var req admin.AssessFraudRiskRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.decisions.AssessFraudRisk(r.Context(), &req)
	if err != nil {
		h.writeRPCError(w, err)
		return
	}
	h.writeResult(w, resp)
}

func (h *Handler) resolveDispute(w http.ResponseWriter, r *http.Request) {
	var req admin.ResolveDisputeRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.decisions.ResolveDispute(r.Context(), &req)
	if err != nil {
		h.writeRPCError(w, err)
		return
	}
	h.writeResult(w, resp)
}

// decode reads the JSON request body into dst, writing a 400 on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

// writeRPCError maps a gRPC status error to an HTTP response.
func (h *Handler) writeRPCError(w http.ResponseWriter, err error) {
	st, _ := status.FromError(err)

	httpStatus := http.StatusInternalServerError
	if st.Code() == codes.InvalidArgument {
		httpStatus = http.StatusBadRequest
	}

	h.writeJSON(w, httpStatus, errorResponse{Error: st.Message()})
}

func (h *Handler) writeResult(w http.ResponseWriter, result interface{}) {
	h.writeJSON(w, http.StatusOK, evaluationEnvelope{
		EvaluationID: uuid.New().String(),
		EvaluatedAt:  timeutil.Now().Format(time.RFC3339),
		Result:       result,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
