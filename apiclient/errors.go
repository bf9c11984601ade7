package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrUnauthorized marks a 401 from the backend. By the time a caller sees it
// the client has already cleared the session; the view layer turns it into a
// navigation to the login view.
var ErrUnauthorized = errors.New("unauthorized")

// ErrBackendUnreachable marks transport failures where no response was
// received at all.
var ErrBackendUnreachable = errors.New("backend unreachable")

// APIError is a non-2xx response from the backend, carrying whatever
// structured detail the response body held.
type APIError struct {
	Status int
	Detail string
	// Fields maps form field names to validation messages, the way the
	// backend's serializers report them.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

func (e *APIError) addField(field string, msgs ...string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msgs...)
}

// Message returns text suitable for inline display in the originating form:
// the detail message when present, otherwise the field errors verbatim, and
// a generic fallback for anything else.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		var parts []string
		for _, name := range names {
			msg := strings.Join(e.Fields[name], " ")
			if name == "non_field_errors" {
				parts = append(parts, msg)
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", name, msg))
		}
		return strings.Join(parts, "; ")
	}
	return "The server reported an unexpected error. Please try again."
}
