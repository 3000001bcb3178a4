package talentflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the TalentFlow API. Transient failures (408, 500, 503) are retried;
// the API guarantees they leave the data untouched.
type Client struct {
	baseURL     string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	attempts    int
	retryDelay  time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		attempts:   3,
		retryDelay: 200 * time.Millisecond,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// SetRetry sets how many times a request is attempted in total and the pause between attempts.
func (c *Client) SetRetry(attempts int, delay time.Duration) {
	c.attempts = max(attempts, 1)
	c.retryDelay = delay
}

func (c *Client) sendRequest(ctx context.Context, method string, path string, payload any) ([]byte, error) {

	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("error encoding request: %v", err)
		}
	}

	var result []byte
	var lastErr error
	lo.AttemptWhileWithDelay(c.attempts, c.retryDelay, func(attempt int, _ time.Duration) (error, bool) {
		result, lastErr = c.send(ctx, method, path, body)
		if lastErr != nil && IsTransient(lastErr) && ctx.Err() == nil {
			log.Debugf("%s %s attempt %d failed: %v", method, path, attempt+1, lastErr)
			return lastErr, true
		}
		return lastErr, false
	})
	return result, lastErr
}

func (c *Client) send(ctx context.Context, method string, path string, body []byte) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

func decode[T any](body []byte, err error) (T, error) {
	var value T
	if err != nil {
		return value, err
	}
	if err = json.NewDecoder(bytes.NewReader(body)).Decode(&value); err != nil {
		return value, fmt.Errorf("error decoding JSON response: %v", err)
	}
	return value, nil
}
