package worker

import (
	"context"

	"github.com/jonathan/brandguard/internal/types"
)

// ValidateFunc validates a single piece of content.
type ValidateFunc func(ctx context.Context, content string) (*types.ComplianceResult, error)

// validateJob is one batch item bound to its validator and the request
// context of the batch call.
type validateJob struct {
	ctx      context.Context
	index    int
	item     types.BatchItem
	validate ValidateFunc
}

// Execute executes the validation job under the batch request context.
func (j *validateJob) Execute(_ context.Context) Result {
	result, err := j.validate(j.ctx, j.item.Content)
	return &validateResult{index: j.index, id: j.item.ID, result: result, err: err}
}

// validateResult carries one item's outcome plus its input position.
type validateResult struct {
	index  int
	id     string
	result *types.ComplianceResult
	err    error
}

// GetError returns the error from the validation result.
func (r *validateResult) GetError() error {
	return r.err
}

// BatchProcessor validates multiple content items concurrently with a
// bounded concurrency ceiling. Each item's failure is isolated: the output
// always has one entry per input, in input order.
type BatchProcessor struct {
	validate    ValidateFunc
	concurrency int
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(validate ValidateFunc, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		validate:    validate,
		concurrency: concurrency,
	}
}

// Process validates all items concurrently and returns one result per item
// in input order.
func (b *BatchProcessor) Process(ctx context.Context, items []types.BatchItem) []types.BatchResult {
	if len(items) == 0 {
		return []types.BatchResult{}
	}

	// Queues sized to the batch so every job can be submitted up front.
	pool := NewPoolSized(b.concurrency, len(items))
	pool.Start()

	for i, item := range items {
		pool.Submit(&validateJob{ctx: ctx, index: i, item: item, validate: b.validate})
	}
	results := pool.Wait()

	out := make([]types.BatchResult, len(items))
	for i, item := range items {
		out[i] = types.BatchResult{ID: item.ID, Error: "validation did not complete"}
	}
	for _, r := range results {
		vr := r.(*validateResult)
		br := types.BatchResult{ID: vr.id, Result: vr.result}
		if vr.err != nil {
			br.Result = nil
			br.Error = vr.err.Error()
		}
		out[vr.index] = br
	}
	return out
}
