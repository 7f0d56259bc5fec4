package main

// evaluate runs a single decision engine evaluation from the command line.
// The input file holds the JSON request body for the chosen evaluator, in
// the same shape the HTTP API accepts.
//
// Usage:
//
//	evaluate -evaluator vendor -input application.json
//	evaluate -evaluator dispute -input dispute.json -policy policy.yaml

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/markethub/admin-decision-service/internal/handlers/admin"
	"github.com/markethub/admin-decision-service/internal/services/decision"
)

func main() {
	var (
		evaluator  = flag.String("evaluator", "", "one of: vendor, coupon, performance, fraud, dispute")
		inputPath  = flag.String("input", "-", "path to the JSON request body, or - for stdin")
		policyPath = flag.String("policy", "", "optional YAML file with policy overrides")
	)
	flag.Parse()

	if err := run(*evaluator, *inputPath, *policyPath); err != nil {
		fmt.Fprintf(os.Stderr, "evaluate: %v\n", err)
		os.Exit(1)
	}
}

func run(evaluator, inputPath, policyPath string) error {
	input, err := readInput(inputPath)
	if err != nil {
		return err
	}

	policy := decision.DefaultPolicy()
	if policyPath != "" {
		policy, err = decision.LoadPolicyFile(policyPath)
		if err != nil {
			return err
		}
	}

	handler := admin.NewHandler(decision.NewEngine(&policy), zap.NewNop())
	ctx := context.Background()

	var result interface{}
	switch evaluator {
	case "vendor":
		req := new(admin.ScoreVendorApplicationRequest)
		if err := json.Unmarshal(input, req); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		result, err = handler.ScoreVendorApplication(ctx, req)
	case "coupon":
		req := new(admin.ValidateCouponRequest)
		if err := json.Unmarshal(input, req); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		result, err = handler.ValidateCoupon(ctx, req)
	case "performance":
		req := new(admin.AnalyzePerformanceRequest)
		if err := json.Unmarshal(input, req); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		result, err = handler.AnalyzePerformance(ctx, req)
	case "fraud":
		req := new(admin.AssessFraudRiskRequest)
		if err := json.Unmarshal(input, req); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		result, err = handler.AssessFraudRisk(ctx, req)
	case "dispute":
		req := new(admin.ResolveDisputeRequest)
		if err := json.Unmarshal(input, req); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		result, err = handler.ResolveDispute(ctx, req)
	default:
		return fmt.Errorf("unknown evaluator %q (want vendor, coupon, performance, fraud or dispute)", evaluator)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
