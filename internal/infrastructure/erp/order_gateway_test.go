package erp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewHTTPOrderGateway(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		_, err := NewHTTPOrderGateway("   ")
		if !errors.Is(err, ErrMissingOrdersURL) {
			t.Fatalf("expected ErrMissingOrdersURL, got %v", err)
		}
	})

	t.Run("mock mode needs no url", func(t *testing.T) {
		t.Setenv("ERP_GATEWAY_MOCK", "true")
		g, err := NewHTTPOrderGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestHTTPOrderGateway_SubmitOrder(t *testing.T) {
	payload := json.RawMessage(`{"quote_id":"q-1","status":"Approved"}`)

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected json content type, got %s", ct)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"order_id":"ord-9"}`))
		}))
		defer srv.Close()

		g, err := NewHTTPOrderGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := g.SubmitOrder(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(resp, &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body["order_id"] != "ord-9" {
			t.Fatalf("unexpected response: %v", body)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		}))
		defer srv.Close()

		g, err := NewHTTPOrderGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = g.SubmitOrder(context.Background(), payload)
		if err == nil || !strings.Contains(err.Error(), "erp returned status 502") {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		g, err := NewHTTPOrderGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := g.SubmitOrder(ctx, payload); err == nil {
			t.Fatalf("expected context error")
		}
	})

	t.Run("mock mode fabricates a response", func(t *testing.T) {
		t.Setenv("ERP_GATEWAY_MOCK", "on")
		g, err := NewHTTPOrderGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := g.SubmitOrder(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(resp, &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body["message"] != "Order received by ERP mock!" || body["quote_id"] != "q-1" {
			t.Fatalf("unexpected mock response: %v", body)
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *HTTPOrderGateway
		if _, err := g.SubmitOrder(context.Background(), payload); !errors.Is(err, ErrOrderGatewayNotConfigured) {
			t.Fatalf("expected ErrOrderGatewayNotConfigured, got %v", err)
		}
	})
}
