package clients

import (
	"context"
)

// AnalysisClient defines the interface for the external analysis service
type AnalysisClient interface {
	Analyze(ctx context.Context, input string) (*AnalysisResult, error)
}

// AnalysisResult is the outcome of one analysis call. Transport and
// parse failures are reported through Success/Error, not as a panic
type AnalysisResult struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	ExtractedText string `json:"extracted_text,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Langflow API request/response types
type langflowRequest struct {
	InputValue string `json:"input_value"`
	OutputType string `json:"output_type"`
	InputType  string `json:"input_type"`
}

type langflowResponse struct {
	Outputs []struct {
		Outputs []struct {
			Results struct {
				Message struct {
					Data struct {
						Text string `json:"text"`
					} `json:"data"`
				} `json:"message"`
			} `json:"results"`
		} `json:"outputs"`
	} `json:"outputs"`
}
