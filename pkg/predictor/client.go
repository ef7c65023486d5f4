// Package predictor is the HTTP client of the price prediction service.
package predictor

import (
	"Skyline/config"
	"Skyline/pkg/errs"
	"Skyline/types"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/tidwall/gjson"
)

var (
	ErrUnavailable = fmt.Errorf("ML service unavailable: %w", errs.ErrCollaboratorUnavailable)
	ErrTimeout     = fmt.Errorf("ML service timeout: %w", errs.ErrCollaboratorTimeout)
	ErrBadResponse = errors.New("ML service returned an invalid prediction")
)

// UpstreamError a non-2xx answer from the prediction service
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ML service returned %d: %s", e.Status, e.Message)
}

// Unwrap classifies 4xx answers as caller mistakes.
func (e *UpstreamError) Unwrap() error {
	if e.Status >= 400 && e.Status < 500 {
		return errs.ErrValidation
	}
	return nil
}

type Client struct {
	baseURL string
	conf    *config.Prediction
	http    *http.Client
}

func NewClient(conf *config.Prediction) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.URL, "/"),
		conf:    conf,
		http:    &http.Client{},
	}
}

// HTTPClient exposes the transport so tests can mock it.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Predict POSTs req to /predict and decodes the prediction.
func (c *Client) Predict(ctx context.Context, req *types.PredictPriceRequest) (*types.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, c.conf.RequestTimeout())
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	raw, err := c.do(ctx, httpReq)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(raw, "predicted_price").Exists() {
		return nil, ErrBadResponse
	}

	var p types.Prediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return &p, nil
}

// Health returns the service's /health document.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.conf.HealthRequestTimeout())
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, httpReq)
	if err != nil {
		return nil, err
	}

	status := make(map[string]any)
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return status, nil
}

func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(raw, "error").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: msg}
	}
	return raw, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
