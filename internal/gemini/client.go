package gemini

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
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// ErrNoAPIKey indicates a missing credential. This is a deployment problem,
// not a transient upstream failure, and callers must not retry it.
var ErrNoAPIKey = errors.New("gemini: GEMINI_API_KEY is not configured")

// UpstreamError covers transport failures and non-2xx statuses from the
// generation endpoint.
type UpstreamError struct {
	StatusCode int // 0 for transport-level failures
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gemini: upstream error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gemini: upstream call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// SamplingConfig maps onto the generationConfig block of a generateContent
// request. Values differ per source-item kind to trade determinism against
// variety.
type SamplingConfig struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint, used to point the client at a test
// server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.client = h }
}

func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Contents         []content      `json:"contents"`
	GenerationConfig SamplingConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type response struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Complete issues exactly one generateContent call carrying the prompt as a
// single user turn and returns the concatenated text parts of the first
// candidate. Retry decisions belong to the caller.
func (c *Client) Complete(ctx context.Context, prompt string, cfg SamplingConfig) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(request{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var apiResp response
		if json.Unmarshal(respBody, &apiResp) == nil && apiResp.Error != nil {
			return "", &UpstreamError{StatusCode: resp.StatusCode, Message: apiResp.Error.Message}
		}
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: "unparseable response body", Err: err}
	}
	if apiResp.Error != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: apiResp.Error.Message}
	}
	if len(apiResp.Candidates) == 0 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: "no candidates in response"}
	}

	// A single logical payload can arrive split across parts; merge them.
	var sb strings.Builder
	for _, p := range apiResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
