// Package classifier provides a minimal HTTP client for the external
// prediction/classification service that turns inventory tallies and grade
// sheets into a dominant career-area label.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orienta-pe/orienta_backend/config"
)

var (
	ErrUnavailable        = errors.New("classifier: service unavailable")
	ErrUnexpectedResponse = errors.New("classifier: unexpected response from service")
)

// Client is a lightweight classification service HTTP client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client from config.
func New(cfg config.ClassifierConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// PredictPsychological submits the six category yes-counts and returns the
// dominant-category label. The service responds with a JSON object whose
// first value is the label; remaining keys, if any, are ignored.
func (c *Client) PredictPsychological(ctx context.Context, scores map[string]int) (string, error) {
	return c.predict(ctx, "/prediccion/psicologica/", scores)
}

// PredictAcademic submits per-subject letter grades and returns the
// career-area label.
func (c *Client) PredictAcademic(ctx context.Context, grades map[string]string) (string, error) {
	return c.predict(ctx, "/prediccion/academica/", grades)
}

func (c *Client) predict(ctx context.Context, path string, body any) (string, error) {
	raw, err := c.post(ctx, path, body)
	if err != nil {
		return "", err
	}
	return firstValue(raw)
}

// firstValue extracts the first string value of a JSON object in document
// order. Decoding into a map would lose the key order the service contract
// relies on.
func firstValue(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return "", fmt.Errorf("%w: expected JSON object", ErrUnexpectedResponse)
	}

	// First key.
	if _, err := dec.Token(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	// First value.
	tok, err = dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	label, ok := tok.(string)
	if !ok || label == "" {
		return "", fmt.Errorf("%w: first value is not a non-empty string", ErrUnexpectedResponse)
	}
	return label, nil
}

// post sends a JSON POST to baseURL+path and returns the raw response body.
// Non-2xx statuses and transport failures map to ErrUnavailable so callers
// can surface a single "service unavailable" message.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return raw, nil
}
