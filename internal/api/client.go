package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
)

// Header names sent on every request
const (
	HeaderAccessCode  = "X-Access-Code"
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"

	ContentTypeJSON = "application/json"
)

// DefaultTimeout bounds a single request when no http.Client is supplied
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

// Client talks to the board server on behalf of one access code
type Client struct {
	baseURL    string
	accessCode string
	httpClient *http.Client
	headers    http.Header
	log        func() *logrus.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHeader adds a header sent with every request. It never replaces the
// access-code or content-type headers.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Add(key, value)
	}
}

// WithLogger routes client logs to the given logger
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = func() *logrus.Logger { return logger }
		}
	}
}

// NewClient creates a client for the server at baseURL
func NewClient(baseURL, accessCode string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessCode: accessCode,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		headers:    make(http.Header),
		log:        func() *logrus.Logger { return logging.Log },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessCode returns the credential this client sends
func (c *Client) AccessCode() string {
	return c.accessCode
}

// Call performs one request and returns the raw JSON body.
// It returns nil without error when the response is empty or not JSON.
// Non-success statuses and network failures yield a *RequestError.
func (c *Client) Call(ctx context.Context, method, path string, body any, headers ...http.Header) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Message: err.Error()}
	}

	// Caller headers first, mandatory ones last so they always win
	for _, extra := range append([]http.Header{c.headers}, headers...) {
		for key, values := range extra {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderAccessCode, c.accessCode)
	req.Header.Set(HeaderRequestID, requestID)

	entry := c.log().WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Debug("request failed before response")
		return nil, &RequestError{Method: method, Path: path, Message: err.Error()}
	}
	defer resp.Body.Close()

	entry = entry.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(started).Round(time.Millisecond),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: genericMessage(resp.StatusCode),
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			reqErr.Message = errBody.Error
		}
		entry.WithField("error", reqErr.Message).Debug("request rejected")
		return nil, reqErr
	}

	if !strings.Contains(resp.Header.Get(HeaderContentType), ContentTypeJSON) {
		entry.Debug("request ok, no JSON payload")
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Status: resp.StatusCode, Message: err.Error()}
	}
	entry.Debug("request ok")
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

// callInto performs a call and decodes a JSON payload into out when present
func (c *Client) callInto(ctx context.Context, method, path string, body, out any) (bool, error) {
	raw, err := c.Call(ctx, method, path, body)
	if err != nil {
		return false, err
	}
	if raw == nil || out == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return true, nil
}

// Join registers the participant on the board
func (c *Client) Join(ctx context.Context, name string, isOrganizer bool) (*model.Participant, error) {
	var participant model.Participant
	ok, err := c.callInto(ctx, http.MethodPost, "/api/join", map[string]any{
		"name":         name,
		"is_organizer": isOrganizer,
	}, &participant)
	if err != nil || !ok {
		return nil, err
	}
	return &participant, nil
}

// Board fetches the current snapshot
func (c *Client) Board(ctx context.Context) (*model.Snapshot, error) {
	var snap model.Snapshot
	ok, err := c.callInto(ctx, http.MethodGet, "/api/board", nil, &snap)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RequestError{Method: http.MethodGet, Path: "/api/board", Status: http.StatusOK, Message: "empty board response"}
	}
	return &snap, nil
}

// CreateSticky posts a new note at the given position
func (c *Client) CreateSticky(ctx context.Context, name, text string, x, y float64) (*model.Sticky, error) {
	var note model.Sticky
	ok, err := c.callInto(ctx, http.MethodPost, "/api/stickies", map[string]any{
		"name": name,
		"text": text,
		"x":    x,
		"y":    y,
	}, &note)
	if err != nil || !ok {
		return nil, err
	}
	return &note, nil
}

// MoveSticky persists a new note position
func (c *Client) MoveSticky(ctx context.Context, stickyID, name string, x, y float64) error {
	_, err := c.Call(ctx, http.MethodPost, "/api/stickies/"+url.PathEscape(stickyID)+"/move", map[string]any{
		"name": name,
		"x":    x,
		"y":    y,
	})
	return err
}

// DeleteSticky removes a note authored by name
func (c *Client) DeleteSticky(ctx context.Context, stickyID, name string) error {
	_, err := c.Call(ctx, http.MethodDelete, "/api/stickies/"+url.PathEscape(stickyID), map[string]any{
		"name": name,
	})
	return err
}

// SetVote stores the absolute allocation of name for one note
func (c *Client) SetVote(ctx context.Context, name, stickyID string, points int) error {
	_, err := c.Call(ctx, http.MethodPost, "/api/votes", map[string]any{
		"name":      name,
		"sticky_id": stickyID,
		"points":    points,
	})
	return err
}

// SetPhase requests a phase transition
func (c *Client) SetPhase(ctx context.Context, name string, phase model.Phase) error {
	_, err := c.Call(ctx, http.MethodPost, "/api/phase", map[string]any{
		"name":  name,
		"phase": phase,
	})
	return err
}

// Reset clears the board
func (c *Client) Reset(ctx context.Context, name string) error {
	_, err := c.Call(ctx, http.MethodPost, "/api/reset", map[string]any{
		"name": name,
	})
	return err
}

// Status fetches the board summary counters
func (c *Client) Status(ctx context.Context) (*model.BoardStatus, error) {
	var status model.BoardStatus
	ok, err := c.callInto(ctx, http.MethodGet, "/api/status", nil, &status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RequestError{Method: http.MethodGet, Path: "/api/status", Status: http.StatusOK, Message: "empty status response"}
	}
	return &status, nil
}
