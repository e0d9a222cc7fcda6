package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "claude-sonnet-4-20250514")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.apiURL = srv.URL
	return client
}

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "model"); err == nil {
		t.Fatalf("expected error for empty api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatalf("expected error for empty model")
	}
}

func TestCompleteReturnsText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != apiVersion {
			t.Errorf("unexpected version header: %q", got)
		}

		var req messagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.MaxTokens != 3000 {
			t.Errorf("expected max_tokens 3000, got %d", req.MaxTokens)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "msg_1",
			"model":   req.Model,
			"content": []map[string]string{{"type": "text", "text": "  generated text  "}},
			"usage":   map[string]int{"input_tokens": 10, "output_tokens": 20},
		})
	})

	got, err := client.Complete(context.Background(), "prompt", 3000)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "generated text" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"rate limited"}}`))
	})

	_, err := client.Complete(context.Background(), "prompt", 100)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected api error message, got %v", err)
	}
}

func TestCompleteRejectsEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"msg_1","content":[]}`))
	})

	_, err := client.Complete(context.Background(), "prompt", 100)
	if err == nil || !strings.Contains(err.Error(), "missing content") {
		t.Fatalf("expected missing content error, got %v", err)
	}
}

func TestCompleteRejectsNonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream proxy error"))
	})

	_, err := client.Complete(context.Background(), "prompt", 100)
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected status error, got %v", err)
	}
}
