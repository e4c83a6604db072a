// internal/gateway/client.go

// Package gateway is the typed wrapper over the remote interview API. It
// does request/response marshaling and uniform failure mapping, nothing
// else: retries and timeouts beyond the transport's are the callers'
// concern.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "quickq/internal/common/errors"
	httpclient "quickq/internal/common/http"
	"quickq/internal/common/metrics"
)

// DefaultSearchLimit is the job count requested from POST /jobs.
const DefaultSearchLimit = 6

// Client calls the three remote endpoints.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, http *httpclient.Client) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    http,
	}
}

// SearchJobs calls POST /jobs.
func (c *Client) SearchJobs(ctx context.Context, req JobSearchRequest) (*JobSearchResponse, error) {
	if req.Limit == 0 {
		req.Limit = DefaultSearchLimit
	}
	var out JobSearchResponse
	if err := c.post(ctx, "jobs", req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		metrics.RemoteCalls.WithLabelValues("jobs", "failure").Inc()
		return nil, apperrors.NewRemoteFailure("API call failed: job search unsuccessful", nil)
	}
	metrics.RemoteCalls.WithLabelValues("jobs", "success").Inc()
	return &out, nil
}

// GenerateQuestions calls POST /questions.
func (c *Client) GenerateQuestions(ctx context.Context, req QuestionRequest) (*QuestionResponse, error) {
	var out QuestionResponse
	if err := c.post(ctx, "questions", req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		metrics.RemoteCalls.WithLabelValues("questions", "failure").Inc()
		return nil, apperrors.NewRemoteFailure("API call failed: question generation unsuccessful", nil)
	}
	metrics.RemoteCalls.WithLabelValues("questions", "success").Inc()
	return &out, nil
}

// GetFeedback calls POST /feedback.
func (c *Client) GetFeedback(ctx context.Context, req FeedbackRequest) (*FeedbackResponse, error) {
	var out FeedbackResponse
	if err := c.post(ctx, "feedback", req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		metrics.RemoteCalls.WithLabelValues("feedback", "failure").Inc()
		return nil, apperrors.NewRemoteFailure("API call failed: feedback unsuccessful", nil)
	}
	metrics.RemoteCalls.WithLabelValues("feedback", "success").Inc()
	return &out, nil
}

// post sends the request and decodes a 2xx JSON body into out. Non-2xx,
// transport errors and empty/undecodable bodies all map to the remote
// failure taxonomy.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	url := c.baseURL + "/" + path

	resp, err := c.http.PostJSON(ctx, url, body)
	if err != nil {
		metrics.RemoteCalls.WithLabelValues(path, "error").Inc()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return apperrors.NewRemoteTimeout("Search request timed out. Please check your connection and try again.")
		}
		return apperrors.NewRemoteFailure(fmt.Sprintf("API call failed: %v", err), err)
	}

	payload, err := httpclient.ReadBody(resp)
	if err != nil {
		metrics.RemoteCalls.WithLabelValues(path, "error").Inc()
		return apperrors.NewRemoteFailure(fmt.Sprintf("API call failed: %v", err), err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RemoteCalls.WithLabelValues(path, "failure").Inc()
		msg := strings.TrimSpace(string(payload))
		if msg == "" {
			msg = "Unknown API error"
		}
		return apperrors.NewRemoteFailure(fmt.Sprintf("API call failed: %s", msg), nil)
	}

	if len(payload) == 0 {
		metrics.RemoteCalls.WithLabelValues(path, "failure").Inc()
		return apperrors.New(apperrors.ErrCodeEmptyResponse, "API returned an empty response body")
	}

	if err := json.Unmarshal(payload, out); err != nil {
		metrics.RemoteCalls.WithLabelValues(path, "failure").Inc()
		return apperrors.NewRemoteFailure(fmt.Sprintf("API call failed: malformed response: %v", err), err)
	}

	return nil
}
