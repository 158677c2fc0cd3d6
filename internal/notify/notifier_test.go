package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifier_Send(t *testing.T) {
	var got message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(srv.URL)
	if err := n.Send(context.Background(), "order placed"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got.Text != "order placed" {
		t.Errorf("text = %q, want %q", got.Text, "order placed")
	}
}

func TestNotifier_SendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := New(srv.URL)
	if err := n.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestNotifier_SendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	n := New(srv.URL)
	if err := n.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}
}
