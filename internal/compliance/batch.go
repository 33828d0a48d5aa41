// Package compliance orchestrates linguistic analysis and rule evaluation.
package compliance

import (
	"context"

	"github.com/jonathan/brandguard/internal/types"
	"github.com/jonathan/brandguard/internal/worker"
)

// BatchValidate validates every item concurrently under a bounded concurrency
// ceiling and returns one result per item in input order. A single item's
// failure never aborts its siblings.
func (v *Validator) BatchValidate(ctx context.Context, items []types.BatchItem, brand *types.BrandSnapshot, cfg *types.ComplianceConfig) ([]types.BatchResult, error) {
	if brand == nil || brand.ID == "" {
		return nil, &InvalidInputError{Message: "brand snapshot is empty"}
	}
	if cfg == nil {
		cfg = &types.ComplianceConfig{}
	}

	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = DefaultMaxConcurrency
	}

	processor := worker.NewBatchProcessor(func(jobCtx context.Context, content string) (*types.ComplianceResult, error) {
		return v.ValidateContent(jobCtx, content, brand, cfg)
	}, concurrency)

	return processor.Process(ctx, items), nil
}
