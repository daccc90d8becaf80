package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orienta-pe/orienta_backend/config"
)

func newTestClient(url string) *Client {
	return New(config.ClassifierConfig{BaseURL: url, TimeoutSeconds: 5})
}

func TestPredictPsychological(t *testing.T) {
	var gotPath string
	var gotBody map[string]int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediccion": "social", "confianza": "alta"}`))
	}))
	defer srv.Close()

	scores := map[string]int{
		"realista": 1, "investigador": 1, "artistico": 1,
		"social": 2, "emprendedor": 1, "convencional": 1,
	}
	label, err := newTestClient(srv.URL).PredictPsychological(context.Background(), scores)
	if err != nil {
		t.Fatalf("PredictPsychological failed: %v", err)
	}
	if label != "social" {
		t.Errorf("label = %q, want %q", label, "social")
	}
	if gotPath != "/prediccion/psicologica/" {
		t.Errorf("path = %q, want /prediccion/psicologica/", gotPath)
	}
	if gotBody["social"] != 2 {
		t.Errorf("request body social = %d, want 2", gotBody["social"])
	}
}

func TestPredictAcademic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prediccion/academica/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"area": "ciencias de la salud"}`))
	}))
	defer srv.Close()

	label, err := newTestClient(srv.URL).PredictAcademic(context.Background(), map[string]string{"matematica": "A"})
	if err != nil {
		t.Fatalf("PredictAcademic failed: %v", err)
	}
	if label != "ciencias de la salud" {
		t.Errorf("label = %q", label)
	}
}

func TestPredictNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PredictPsychological(context.Background(), map[string]int{"realista": 1})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestPredictUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	_, err := newTestClient(srv.URL).PredictPsychological(context.Background(), map[string]int{"realista": 1})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestPredictMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "this is not json"},
		{"array", `["social"]`},
		{"empty object", `{}`},
		{"non-string first value", `{"prediccion": 42}`},
		{"empty label", `{"prediccion": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).PredictPsychological(context.Background(), map[string]int{"realista": 1})
			if !errors.Is(err, ErrUnexpectedResponse) {
				t.Errorf("expected ErrUnexpectedResponse, got %v", err)
			}
		})
	}
}

func TestFirstValueDocumentOrder(t *testing.T) {
	label, err := firstValue([]byte(`{"zzz": "first", "aaa": "second"}`))
	if err != nil {
		t.Fatalf("firstValue failed: %v", err)
	}
	if label != "first" {
		t.Errorf("label = %q, want first value in document order", label)
	}
}
