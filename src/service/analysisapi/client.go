package analysisapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"javasmells/src/config"
	"javasmells/src/model"
	"javasmells/src/util"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody caps how much of a failed response is kept for diagnostics
const maxErrorBody = 64 << 10

// RequestIDHeader carries the submission's request ID to the service
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID attaches a request ID that Analyze forwards to the service
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored in ctx, if any
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Client provides access to the analysis service
type Client struct {
	baseURL     string
	analyzePath string
	httpClient  *http.Client
	retryConf   config.RetryConfig
}

// NewClient creates a new analysis service client
func NewClient(cfg config.BackendConfig) *Client {
	path := cfg.AnalyzePath
	if path == "" {
		path = "/analyze"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.URL, "/"),
		analyzePath: path,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryConf: cfg.Retry,
	}
}

// BaseURL returns the service base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Analyze submits source code and returns the service's report
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*model.AnalysisReport, error) {
	util.Debug("Submitting %d bytes for analysis to %s%s", len(req.SourceCode), c.baseURL, c.analyzePath)

	var report model.AnalysisReport
	if err := c.do(ctx, http.MethodPost, c.analyzePath, req, &report); err != nil {
		return nil, err
	}

	if report.Error != "" {
		util.Debug("Analysis service rejected the submission: %s", report.Error)
		return &report, &ReportError{Message: report.Error}
	}

	util.Debug("Analysis returned %d smells over %d lines", len(report.Smells), report.Summary.TotalLines)
	return &report, nil
}

// Health queries the service root
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt <= c.retryConf.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying request to %s (attempt %d/%d) after %v", path, attempt+1, c.retryConf.MaxAttempts+1, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doOnce(ctx, method, path, body, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return &TransportError{Op: "executing request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Detail:     extractDetail(respBody),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &TransportError{Op: "decoding response", Err: err, responded: true}
	}

	return nil
}

// extractDetail pulls the detail field out of an error body. Non-string
// details are re-encoded as JSON so they can still be displayed.
func extractDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Detail == nil {
		return ""
	}
	if s, ok := eb.Detail.(string); ok {
		return s
	}
	encoded, err := json.Marshal(eb.Detail)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if c.retryConf.MaxDelay > 0 && delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Client) shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, code := range c.retryConf.RetryOnStatus {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}
