// Package finmind implements the HTTP client for the FinMind data API
// (https://api.finmindtrade.com/api/v4/data).
package finmind

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	v1 "github.com/ariel055132/stockinfo/internal/domain/stock/v1"
	"github.com/ariel055132/stockinfo/pkg/config"
	"github.com/ariel055132/stockinfo/pkg/errors"
	"github.com/ariel055132/stockinfo/pkg/logger"
)

// Response is the envelope every FinMind endpoint answers with: status 200
// plus data on success, a non-200 status plus msg on failure.
type Response struct {
	Status int         `json:"status"`
	Msg    string      `json:"msg"`
	Data   []v1.Record `json:"data"`
}

// APIClient issues GET requests against the FinMind data endpoint.
type APIClient struct {
	baseURL string
	client  *http.Client
	logger  logger.Interface
}

// NewClient creates a new FinMind API client. The timeout from the config
// bounds the whole request, connect included.
func NewClient(cfg config.FinMindConfig, logger logger.Interface) *APIClient {
	return &APIClient{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger,
	}
}

// FetchDataset issues one GET for the given dataset window and returns the
// envelope's data verbatim. Every failure mode folds into an error carrying
// one of the finmind_* error codes; callers decide the policy.
func (c *APIClient) FetchDataset(ctx context.Context, query v1.DatasetQuery) ([]v1.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("build request: %v", err), errors.FinmindTransportError, "base_url")
	}

	params := url.Values{}
	params.Set("dataset", query.Dataset)
	params.Set("data_id", query.DataID)
	params.Set("start_date", query.StartDate)
	params.Set("end_date", query.EndDate)
	req.URL.RawQuery = params.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		details := errors.NewErrorDetails(
			fmt.Sprintf("request %s: %v", query.Dataset, err), errors.FinmindTransportError, "")
		c.logger.ErrorContext(ctx, details,
			logger.NewField("dataset", query.Dataset),
			logger.NewField("data_id", query.DataID),
		)
		return nil, details
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// FinMind ships its JSON error envelope with non-200 transport
		// codes, so the body is still decoded below.
		c.logger.WarnContext(ctx, "unexpected transport status",
			logger.NewField("status_code", resp.StatusCode),
			logger.NewField("dataset", query.Dataset),
		)
	}

	var envelope Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		details := errors.NewErrorDetails(
			fmt.Sprintf("decode response: %v", err), errors.FinmindDecodeError, "")
		c.logger.ErrorContext(ctx, details,
			logger.NewField("status_code", resp.StatusCode),
		)
		return nil, details
	}

	if envelope.Status != http.StatusOK {
		details := errors.NewErrorDetails(envelope.Msg, errors.FinmindAPIStatusError, "status")
		c.logger.ErrorContext(ctx, details,
			logger.NewField("api_status", envelope.Status),
		)
		return nil, details
	}

	return envelope.Data, nil
}
