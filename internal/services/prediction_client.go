package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aqarBack/internal/models"
)

// PredictionClient talks to the external price estimator service, which takes
// a property feature vector and returns a raw price estimate.
type PredictionClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewPredictionClient(httpClient *http.Client, baseURL string) *PredictionClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &PredictionClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (c *PredictionClient) Estimate(ctx context.Context, req models.PredictionRequest) (float64, error) {
	if c == nil || strings.TrimSpace(c.baseURL) == "" {
		return 0, errors.New("prediction client is not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/predict", strings.TrimRight(c.baseURL, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return 0, fmt.Errorf("estimator error: status %d: %s", resp.StatusCode, string(data))
	}

	var parsed struct {
		PredictedPrice float64 `json:"predicted_price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	return parsed.PredictedPrice, nil
}
