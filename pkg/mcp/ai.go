package mcp

import (
	"context"
	"net/http"
)

// AnalyzeCode performs AI-assisted code analysis. The result shape is
// task-specific and left as an open map.
func (c *Client) AnalyzeCode(ctx context.Context, req CodeAnalysisRequest) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, http.MethodPost, "/ai/analyze", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateCode generates code from a natural-language description.
func (c *Client) GenerateCode(ctx context.Context, req CodeGenerationRequest) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, http.MethodPost, "/ai/generate", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// PredictPerformance predicts performance metrics from the supplied inputs.
func (c *Client) PredictPerformance(ctx context.Context, metrics map[string]any) (map[string]any, error) {
	var result map[string]any
	if err := c.call(ctx, http.MethodPost, "/ai/predict", metrics, &result); err != nil {
		return nil, err
	}
	return result, nil
}
