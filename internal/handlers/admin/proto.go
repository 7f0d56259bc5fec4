package admin

// proto.go defines the gRPC server interface derived from
// markethub/admin/v1/admin_decision.proto. This file serves as a stand-in
// for buf-generated code; once `buf generate` is run, replace it with the
// import from github.com/markethub/admin-decision-service/api/gen/go/markethub/admin/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AdminDecisionServiceServer is the server API for AdminDecisionService.
type AdminDecisionServiceServer interface {
	ScoreVendorApplication(context.Context, *ScoreVendorApplicationRequest) (*ScoreVendorApplicationResponse, error)
	ValidateCoupon(context.Context, *ValidateCouponRequest) (*ValidateCouponResponse, error)
	AnalyzePerformance(context.Context, *AnalyzePerformanceRequest) (*AnalyzePerformanceResponse, error)
	AssessFraudRisk(context.Context, *AssessFraudRiskRequest) (*AssessFraudRiskResponse, error)
	ResolveDispute(context.Context, *ResolveDisputeRequest) (*ResolveDisputeResponse, error)
	mustEmbedUnimplementedAdminDecisionServiceServer()
}

// UnimplementedAdminDecisionServiceServer provides forward-compatible default implementations.
type UnimplementedAdminDecisionServiceServer struct{}

func (UnimplementedAdminDecisionServiceServer) ScoreVendorApplication(context.Context, *ScoreVendorApplicationRequest) (*ScoreVendorApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreVendorApplication not implemented")
}
func (UnimplementedAdminDecisionServiceServer) ValidateCoupon(context.Context, *ValidateCouponRequest) (*ValidateCouponResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateCoupon not implemented")
}
func (UnimplementedAdminDecisionServiceServer) AnalyzePerformance(context.Context, *AnalyzePerformanceRequest) (*AnalyzePerformanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzePerformance not implemented")
}
func (UnimplementedAdminDecisionServiceServer) AssessFraudRisk(context.Context, *AssessFraudRiskRequest) (*AssessFraudRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessFraudRisk not implemented")
}
func (UnimplementedAdminDecisionServiceServer) ResolveDispute(context.Context, *ResolveDisputeRequest) (*ResolveDisputeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveDispute not implemented")
}
func (UnimplementedAdminDecisionServiceServer) mustEmbedUnimplementedAdminDecisionServiceServer() {}

// RegisterAdminDecisionServiceServer registers the AdminDecisionServiceServer with the gRPC server.
func RegisterAdminDecisionServiceServer(s *grpclib.Server, srv AdminDecisionServiceServer) {
	s.RegisterService(&_AdminDecisionService_serviceDesc, srv)
}

var _AdminDecisionService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "markethub.admin.v1.AdminDecisionService",
	HandlerType: (*AdminDecisionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreVendorApplication", Handler: _AdminDecisionService_ScoreVendorApplication_Handler},
		{MethodName: "ValidateCoupon", Handler: _AdminDecisionService_ValidateCoupon_Handler},
		{MethodName: "AnalyzePerformance", Handler: _AdminDecisionService_AnalyzePerformance_Handler},
		{MethodName: "AssessFraudRisk", Handler: _AdminDecisionService_AssessFraudRisk_Handler},
		{MethodName: "ResolveDispute", Handler: _AdminDecisionService_ResolveDispute_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _AdminDecisionService_ScoreVendorApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ScoreVendorApplicationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AdminDecisionServiceServer).ScoreVendorApplication(ctx, req)
}

func _AdminDecisionService_ValidateCoupon_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ValidateCouponRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AdminDecisionServiceServer).ValidateCoupon(ctx, req)
}

func _AdminDecisionService_AnalyzePerformance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AnalyzePerformanceRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AdminDecisionServiceServer).AnalyzePerformance(ctx, req)
}

func _AdminDecisionService_AssessFraudRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AssessFraudRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AdminDecisionServiceServer).AssessFraudRisk(ctx, req)
}

func _AdminDecisionService_ResolveDispute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ResolveDisputeRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(AdminDecisionServiceServer).ResolveDispute(ctx, req)
}
