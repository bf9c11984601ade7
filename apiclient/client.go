// File: apiclient/client.go
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/FADHEEL1234/Online-Medical/session"
	"github.com/FADHEEL1234/Online-Medical/utils"
)

// Client is the single request pipeline to the remote appointments API.
// Every outgoing request picks up the bearer token stored for the calling
// session; every 401 coming back clears that session before the error is
// propagated. No retry, no timeout beyond the transport default.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	logger   *zap.Logger
}

func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		sessions: sessions,
		logger:   utils.GetLogger(),
	}
}

// Do issues one request against the backend. path is relative to the
// configured base URL; body (if non-nil) is sent as JSON and the response
// body (if out is non-nil) decoded into out.
func (c *Client) Do(ctx context.Context, sid, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Outgoing interception: attach the bearer token when the session holds
	// one, otherwise send unauthenticated.
	sess, err := c.sessions.Get(ctx, sid)
	if err != nil {
		c.logger.Warn("session lookup failed, sending unauthenticated",
			zap.String("path", path), zap.Error(err))
	} else if sess.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	// Incoming interception: a 401 means the token is expired or invalid.
	// Drop the session, then still hand the original error to the caller.
	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.sessions.Clear(ctx, sid); clearErr != nil {
			c.logger.Error("failed to clear session after 401",
				zap.String("path", path), zap.Error(clearErr))
		}
		return decodeError(resp.StatusCode, data)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeError lifts a structured error body into an APIError. The backend
// reports either {"detail": "..."} or per-field message lists.
func decodeError(status int, body []byte) error {
	apiErr := &APIError{Status: status}
	var payload map[string]json.RawMessage
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return apiErr
	}
	for field, raw := range payload {
		var msg string
		if json.Unmarshal(raw, &msg) == nil {
			if field == "detail" {
				apiErr.Detail = msg
			} else {
				apiErr.addField(field, msg)
			}
			continue
		}
		var msgs []string
		if json.Unmarshal(raw, &msgs) == nil {
			apiErr.addField(field, msgs...)
		}
	}
	return apiErr
}
