// Package api wraps the ticketing backend's REST endpoints in typed
// methods.  The wrappers are deliberately thin: build the request,
// decode the response, classify the failure.  Authentication is not
// handled here; the http.Client passed in carries a session transport
// that attaches the bearer token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the ticketing backend.  Methods are grouped by
// collaborator: auth.go, trips.go and sales.go.
type Client struct {
	base string
	http *http.Client
}

// New builds a Client for the given base URL ("http://host:port/api").
// When hc is nil a default client with a 10 second timeout is used.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), http: hc}
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST request with a JSON body and decodes the
// response into out (which may be nil for empty responses).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindConnection, Message: "cannot encode request", cause: err}
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return &Error{Kind: KindConnection, Message: "cannot build request", cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindConnection, Message: "cannot reach the ticketing service", cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return classify(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindConnection, Message: "malformed response from the ticketing service", cause: err}
	}
	return nil
}

// classify turns an error response into a typed *Error.  The backend
// reports failures either as {"error": "..."} / {"general": "..."} or
// as a field->messages object for validation problems.  Seat
// conflicts come back as 409 or with a message naming the seat.
func classify(resp *http.Response) *Error {
	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	msg := generalMessage(payload)
	fields := fieldMessages(payload)
	e := &Error{Status: resp.StatusCode, Message: msg, Fields: fields}

	switch {
	case resp.StatusCode == http.StatusConflict || mentionsSeatConflict(msg):
		e.Kind = KindConflict
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		e.Kind = KindAuth
	case resp.StatusCode == http.StatusBadRequest && len(fields) > 0:
		e.Kind = KindValidation
	default:
		e.Kind = KindServer
	}
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}

// generalMessage pulls the top-level message out of an error payload.
func generalMessage(payload map[string]any) string {
	for _, key := range []string{"error", "general", "detail", "message"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// fieldMessages flattens field-level validation detail into strings.
func fieldMessages(payload map[string]any) map[string]string {
	fields := make(map[string]string)
	for k, v := range payload {
		switch k {
		case "error", "general", "detail", "message":
			continue
		}
		switch t := v.(type) {
		case string:
			fields[k] = t
		case []any:
			parts := make([]string, 0, len(t))
			for _, p := range t {
				parts = append(parts, fmt.Sprint(p))
			}
			fields[k] = strings.Join(parts, "; ")
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// mentionsSeatConflict checks the backend's message text, so
// conflicts are still recognized when the status code is a plain 400.
func mentionsSeatConflict(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "conflicto") || strings.Contains(lower, "asiento")
}
