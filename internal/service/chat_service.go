package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultChatTimeout bounds the upstream natural-language-to-SQL request. The
// upstream call is the only one in the system with unbounded latency.
const DefaultChatTimeout = 30 * time.Second

// ErrChatTimeout reports that the upstream answered too slowly.
var ErrChatTimeout = errors.New("chat upstream timed out")

// ErrChatUnavailable reports that the upstream could not be reached at all.
var ErrChatUnavailable = errors.New("chat upstream unavailable")

// UpstreamError carries a non-2xx upstream status so the handler can relay it.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat upstream returned %d: %s", e.StatusCode, e.Message)
}

// ChatAnswer relays the upstream answer verbatim. Results is kept untyped:
// its shape depends entirely on the generated SQL.
type ChatAnswer struct {
	Query   string          `json:"query"`
	SQL     *string         `json:"sql"`
	Results json.RawMessage `json:"results"`
	Error   *string         `json:"error"`
}

type ChatService interface {
	Ask(ctx context.Context, query string) (ChatAnswer, error)
}

type chatService struct {
	baseURL string
	client  *http.Client
}

func NewChatService(baseURL string) ChatService {
	return &chatService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultChatTimeout},
	}
}

// Ask forwards the question to the upstream query endpoint and relays its
// structured answer.
func (s *chatService) Ask(ctx context.Context, query string) (ChatAnswer, error) {
	payload, err := json.Marshal(map[string]string{"question": query})
	if err != nil {
		return ChatAnswer{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/query", bytes.NewReader(payload))
	if err != nil {
		return ChatAnswer{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ChatAnswer{}, ErrChatTimeout
		}
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return ChatAnswer{}, ErrChatTimeout
		}
		return ChatAnswer{}, fmt.Errorf("%w: %v", ErrChatUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatAnswer{}, fmt.Errorf("%w: %v", ErrChatUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var upstream struct {
			Error string `json:"error"`
		}
		msg := "Failed to process query"
		if json.Unmarshal(body, &upstream) == nil && upstream.Error != "" {
			msg = upstream.Error
		}
		return ChatAnswer{}, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var upstream struct {
		SQL     *string         `json:"sql"`
		Results json.RawMessage `json:"results"`
		Error   *string         `json:"error"`
	}
	if err := json.Unmarshal(body, &upstream); err != nil {
		return ChatAnswer{}, fmt.Errorf("%w: malformed upstream response: %v", ErrChatUnavailable, err)
	}

	return ChatAnswer{
		Query:   query,
		SQL:     upstream.SQL,
		Results: upstream.Results,
		Error:   upstream.Error,
	}, nil
}
