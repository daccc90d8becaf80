package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orienta-pe/orienta_backend/config"
)

func TestDisabledClientNoOps(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(config.NotifierConfig{BaseURL: srv.URL, Enabled: false})
	if err := c.SendWelcome(context.Background(), "ana@example.com", "Ana"); err != nil {
		t.Errorf("disabled client returned error: %v", err)
	}
	if called {
		t.Error("disabled client must not hit the service")
	}
	if c.IsEnabled() {
		t.Error("IsEnabled = true for disabled client")
	}
}

func TestSendEndpointsAndPayloads(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPayload = map[string]string{}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
	}))
	defer srv.Close()

	c := New(config.NotifierConfig{BaseURL: srv.URL, Enabled: true, TimeoutSeconds: 5})
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func() error
		wantPath string
		wantKeys map[string]string
	}{
		{
			"welcome",
			func() error { return c.SendWelcome(ctx, "ana@example.com", "Ana") },
			"/enviar-bienvenida/",
			map[string]string{"correo": "ana@example.com", "nombre": "Ana"},
		},
		{
			"access code",
			func() error { return c.SendAccessCode(ctx, "ana@example.com", "Ana", "AB12CD") },
			"/enviar-codigo/",
			map[string]string{"codigo": "AB12CD"},
		},
		{
			"approved",
			func() error { return c.SendAccountApproved(ctx, "tutor@example.com", "Luis") },
			"/enviar-aprobacion/",
			map[string]string{"correo": "tutor@example.com"},
		},
		{
			"rejected",
			func() error { return c.SendAccountRejected(ctx, "tutor@example.com", "Luis", "datos incompletos") },
			"/enviar-rechazo/",
			map[string]string{"motivo": "datos incompletos"},
		},
		{
			"group assignment",
			func() error { return c.SendGroupAssignment(ctx, "director@example.com", "Luis", "XY98ZW") },
			"/enviar-asignacion/",
			map[string]string{"codigo_grupo": "XY98ZW"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("send failed: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
			for k, want := range tt.wantKeys {
				if gotPayload[k] != want {
					t.Errorf("payload[%q] = %q, want %q", k, gotPayload[k], want)
				}
			}
		})
	}
}

func TestSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(config.NotifierConfig{BaseURL: srv.URL, Enabled: true})
	err := c.SendWelcome(context.Background(), "ana@example.com", "Ana")
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("expected ErrSendFailed, got %v", err)
	}
}

func TestSendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(config.NotifierConfig{BaseURL: srv.URL, Enabled: true})
	err := c.SendWelcome(context.Background(), "ana@example.com", "Ana")
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("expected ErrSendFailed, got %v", err)
	}
}
