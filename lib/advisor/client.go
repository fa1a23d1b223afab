package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/p1xelfault/guesslab/simstate"
)

const (
	// DefaultBaseURL is the endpoint of the hosted text-generation service.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	// DefaultModel is the model identifier requested when none is configured.
	DefaultModel = "gemini-pro"

	defaultTimeout = 30 * time.Second
	retryBaseDelay = 500 * time.Millisecond
)

// Compile-time interface compliance check.
var _ Service = (*Client)(nil)

// Client talks to a Gemini-style generateContent endpoint over HTTP.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	maxRetries int
	httpClient *http.Client
}

// NewClient builds a Client. Empty baseURL and model fall back to the hosted
// defaults; a zero timeout falls back to 30 seconds.
func NewClient(baseURL, model, apiKey string, timeout time.Duration, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if model == "" {
		model = DefaultModel
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		maxRetries: maxRetries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// generateRequest is the wire shape of a generateContent call.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the response the client consumes.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateStructured requests an Analysis. Service failures return
// ErrUnavailable; a reachable service with unparseable output yields
// DefaultAnalysis and no error.
func (c *Client) GenerateStructured(ctx context.Context, prompt string) (Analysis, error) {
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return Analysis{}, err
	}

	return ParseAnalysis(text), nil
}

// GenerateList requests a candidate list, one candidate per line.
func (c *Client) GenerateList(ctx context.Context, prompt string) ([]string, error) {
	text, err := c.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseCandidateList(text), nil
}

// generateText performs the generateContent call with retries. Every failure
// mode (transport error, non-2xx status, empty candidate set) is mapped to
// ErrUnavailable so callers can treat the service uniformly.
func (c *Client) generateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encoding request: %w", ErrUnavailable, err)
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			simstate.Logger.Debug("Retrying advisor call", "attempt", attempt)

			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
			case <-time.After(retryBaseDelay * time.Duration(attempt)):
			}
		}

		text, err := c.doRequest(ctx, body)
		if err == nil {
			return text, nil
		}

		lastErr = err
	}

	return "", fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // Best-effort close on read path

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned status %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decoding advisor response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("advisor response contained no content")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
