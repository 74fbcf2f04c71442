package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestChatServiceRelaysAnswer(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/query" {
			t.Errorf("upstream path = %q, want /api/query", r.URL.Path)
		}
		var body struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad upstream payload: %v", err)
		}
		if body.Question != "total spend per vendor" {
			t.Errorf("question = %q", body.Question)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"question":"total spend per vendor","sql":"SELECT 1","results":[{"x":1}],"error":null}`))
	}))
	defer upstream.Close()

	svc := NewChatService(upstream.URL)
	answer, err := svc.Ask(context.Background(), "total spend per vendor")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if answer.Query != "total spend per vendor" {
		t.Errorf("query = %q", answer.Query)
	}
	if answer.SQL == nil || *answer.SQL != "SELECT 1" {
		t.Errorf("sql = %v, want SELECT 1", answer.SQL)
	}
	if string(answer.Results) != `[{"x":1}]` {
		t.Errorf("results = %s", answer.Results)
	}
	if answer.Error != nil {
		t.Errorf("error = %v, want nil", answer.Error)
	}
}

func TestChatServiceRelaysUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"could not generate SQL"}`))
	}))
	defer upstream.Close()

	svc := NewChatService(upstream.URL)
	_, err := svc.Ask(context.Background(), "gibberish")

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", upErr.StatusCode)
	}
	if upErr.Message != "could not generate SQL" {
		t.Errorf("message = %q", upErr.Message)
	}
}

func TestChatServiceUpstreamFailureWithoutBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewChatService(upstream.URL)
	_, err := svc.Ask(context.Background(), "anything")

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.Message != "Failed to process query" {
		t.Errorf("message = %q, want generic fallback", upErr.Message)
	}
}

func TestChatServiceTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer upstream.Close()

	svc := &chatService{
		baseURL: upstream.URL,
		client:  &http.Client{Timeout: 50 * time.Millisecond},
	}

	_, err := svc.Ask(context.Background(), "slow question")
	if !errors.Is(err, ErrChatTimeout) {
		t.Fatalf("expected ErrChatTimeout, got %v", err)
	}
}

func TestChatServiceUnavailable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstream.Close() // nothing listening anymore

	svc := NewChatService(upstream.URL)
	_, err := svc.Ask(context.Background(), "anything")
	if !errors.Is(err, ErrChatUnavailable) {
		t.Fatalf("expected ErrChatUnavailable, got %v", err)
	}
}
