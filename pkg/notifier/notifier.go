// Package notifier provides an HTTP client for the outbound notification
// service (welcome, access-code, approval and rejection emails). Every call
// is best-effort from the caller's perspective: workflows log failures and
// carry on, they never roll back on a notification error.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orienta-pe/orienta_backend/config"
)

var ErrSendFailed = errors.New("notifier: send failed")

// Client posts flat JSON payloads to the notification service endpoints.
// If disabled, all operations are no-ops.
type Client struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
}

// New creates a Client from config. When cfg.Enabled is false the client
// no-ops on every send, which is useful for development.
func New(cfg config.NotifierConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		enabled:    cfg.Enabled,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// IsEnabled returns whether outbound notifications are enabled.
func (c *Client) IsEnabled() bool { return c.enabled }

// SendWelcome sends the account-welcome email.
func (c *Client) SendWelcome(ctx context.Context, email, name string) error {
	return c.send(ctx, "/enviar-bienvenida/", map[string]string{
		"correo": email,
		"nombre": name,
	})
}

// SendAccessCode delivers a join/access code to a user.
func (c *Client) SendAccessCode(ctx context.Context, email, name, code string) error {
	return c.send(ctx, "/enviar-codigo/", map[string]string{
		"correo": email,
		"nombre": name,
		"codigo": code,
	})
}

// SendAccountApproved notifies a tutor that their request was approved.
func (c *Client) SendAccountApproved(ctx context.Context, email, name string) error {
	return c.send(ctx, "/enviar-aprobacion/", map[string]string{
		"correo": email,
		"nombre": name,
	})
}

// SendAccountRejected notifies a tutor that their request was rejected,
// including the reviewer's reason.
func (c *Client) SendAccountRejected(ctx context.Context, email, name, reason string) error {
	return c.send(ctx, "/enviar-rechazo/", map[string]string{
		"correo": email,
		"nombre": name,
		"motivo": reason,
	})
}

// SendGroupAssignment notifies a director that a new tutor group was created.
func (c *Client) SendGroupAssignment(ctx context.Context, directorEmail, tutorName, groupCode string) error {
	return c.send(ctx, "/enviar-asignacion/", map[string]string{
		"correo":       directorEmail,
		"nombre_tutor": tutorName,
		"codigo_grupo": groupCode,
	})
}

func (c *Client) send(ctx context.Context, path string, payload map[string]string) error {
	if !c.enabled {
		return nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", ErrSendFailed, path, res.StatusCode)
	}
	return nil
}
