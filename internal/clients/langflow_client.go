package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type langflowClient struct {
	apiURL string
	client *http.Client
}

func NewLangflowClient(apiURL string, timeout time.Duration) AnalysisClient {
	if apiURL == "" {
		apiURL = os.Getenv("LANGFLOW_API_URL")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &langflowClient{
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Analyze は整形済みの質問票テキストをLangflowに送信し、分析レポートを受け取る。
// ネットワーク・パース失敗はAnalysisResultのSuccess/Errorに畳み込む
func (c *langflowClient) Analyze(ctx context.Context, input string) (*AnalysisResult, error) {
	requestData := langflowRequest{
		InputValue: input,
		OutputType: "chat",
		InputType:  "chat",
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		var clientErr *CustomError
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			clientErr = NewTimeoutError(err.Error())
		} else {
			clientErr = NewUnavailableError(err.Error())
		}
		return &AnalysisResult{
			Success: false,
			Error:   clientErr.Error(),
		}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &AnalysisResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      NewBadResponseError(err.Error()).Error(),
		}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return &AnalysisResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, string(body)),
		}, nil
	}

	var response langflowResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return &AnalysisResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      NewBadResponseError(err.Error()).Error(),
		}, nil
	}

	// ネストされた応答構造からテキストを抽出する
	if len(response.Outputs) == 0 || len(response.Outputs[0].Outputs) == 0 {
		return &AnalysisResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      NewBadResponseError("missing outputs in response structure").Error(),
		}, nil
	}

	text := response.Outputs[0].Outputs[0].Results.Message.Data.Text
	if text == "" {
		return &AnalysisResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      NewBadResponseError("empty message text in response").Error(),
		}, nil
	}

	return &AnalysisResult{
		Success:       true,
		StatusCode:    resp.StatusCode,
		ExtractedText: text,
	}, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
