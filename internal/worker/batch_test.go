package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brandguard/internal/types"
)

func TestBatchProcessor_PreservesInputOrder(t *testing.T) {
	validate := func(_ context.Context, content string) (*types.ComplianceResult, error) {
		return &types.ComplianceResult{IsCompliant: true, Score: float64(len(content))}, nil
	}
	processor := NewBatchProcessor(validate, 3)

	items := make([]types.BatchItem, 10)
	for i := range items {
		items[i] = types.BatchItem{
			ID:      fmt.Sprintf("item-%d", i),
			Content: strings.Repeat("x", i+1),
		}
	}

	results := processor.Process(context.Background(), items)
	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, items[i].ID, r.ID)
		require.NotNil(t, r.Result)
		assert.Equal(t, float64(i+1), r.Result.Score)
	}
}

func TestBatchProcessor_IsolatesItemFailures(t *testing.T) {
	validate := func(_ context.Context, content string) (*types.ComplianceResult, error) {
		if content == "bad" {
			return nil, errors.New("malformed content")
		}
		return &types.ComplianceResult{IsCompliant: true}, nil
	}
	processor := NewBatchProcessor(validate, 2)

	items := []types.BatchItem{
		{ID: "a", Content: "good"},
		{ID: "b", Content: "bad"},
		{ID: "c", Content: "good"},
	}

	results := processor.Process(context.Background(), items)
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Result)
	assert.Empty(t, results[0].Error)

	assert.Nil(t, results[1].Result)
	assert.Equal(t, "malformed content", results[1].Error)

	assert.NotNil(t, results[2].Result)
	assert.Empty(t, results[2].Error)
}

func TestBatchProcessor_PassesRequestContext(t *testing.T) {
	type ctxKey struct{}
	validate := func(ctx context.Context, _ string) (*types.ComplianceResult, error) {
		if v, _ := ctx.Value(ctxKey{}).(string); v != "marker" {
			return nil, errors.New("request context not propagated")
		}
		return &types.ComplianceResult{IsCompliant: true}, nil
	}
	processor := NewBatchProcessor(validate, 2)

	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")
	results := processor.Process(ctx, []types.BatchItem{{ID: "a", Content: "x"}})
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Error)
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(func(context.Context, string) (*types.ComplianceResult, error) {
		return nil, nil
	}, 2)

	results := processor.Process(context.Background(), nil)
	assert.Empty(t, results)
}
