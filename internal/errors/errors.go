// Package errors provides error handling for bioseek.
// Every public client operation that fails returns a *ClientError carrying
// a user-facing message and an actionable suggestion, so callers (CLI, REST,
// MCP) can render a consistent {error, suggestion} shape without type
// switching on transport internals.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op represents an operation name for error context, e.g. "ena.Search".
type Op string

// Kind represents the category of error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNetwork
	KindRemote
	KindNotFound
	KindValidation
	KindParse
	KindConfig
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRemote:
		return "remote"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ClientError is the single error type crossing client boundaries.
type ClientError struct {
	Op         Op     `json:"-"`
	Kind       Kind   `json:"-"`
	Message    string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(string(e.Op))
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Network reports a transport-level failure (DNS, refused connection,
// timeout). The suggestion names the remote host that must be reachable.
func Network(op Op, host string, err error) *ClientError {
	return &ClientError{
		Op:         op,
		Kind:       KindNetwork,
		Message:    fmt.Sprintf("Network error: %v", err),
		Suggestion: fmt.Sprintf("Check network settings and ensure %s is reachable", host),
		Err:        err,
	}
}

// Remote reports an unexpected HTTP status from the remote service.
func Remote(op Op, status int, statusText string) *ClientError {
	return &ClientError{
		Op:         op,
		Kind:       KindRemote,
		Message:    fmt.Sprintf("HTTP error %d: %s", status, statusText),
		Suggestion: "Try a different search term or check the query syntax",
	}
}

// NotFound reports a graceful absence the caller asked for by name.
func NotFound(op Op, msg, suggestion string) *ClientError {
	return &ClientError{Op: op, Kind: KindNotFound, Message: msg, Suggestion: suggestion}
}

// Usage reports a caller input error rejected before any network call.
func Usage(op Op, msg string) *ClientError {
	return &ClientError{Op: op, Kind: KindValidation, Message: msg}
}

// Parse reports a remote response body that could not be decoded.
func Parse(op Op, err error) *ClientError {
	return &ClientError{
		Op:      op,
		Kind:    KindParse,
		Message: fmt.Sprintf("Unexpected response format: %v", err),
		Err:     err,
	}
}

// Config reports an invalid configuration value.
func Config(op Op, msg string, err error) *ClientError {
	return &ClientError{Op: op, Kind: KindConfig, Message: msg, Err: err}
}

// IsKind checks whether err is a *ClientError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == kind
}

// GetKind returns the kind of err, or KindUnknown for foreign errors.
func GetKind(err error) Kind {
	var ce *ClientError
	if !errors.As(err, &ce) {
		return KindUnknown
	}
	return ce.Kind
}

// AsClient converts err to a *ClientError, wrapping foreign errors so
// presentation layers always have a message and (possibly empty) suggestion.
func AsClient(err error) *ClientError {
	if err == nil {
		return nil
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce
	}
	return &ClientError{Message: err.Error(), Err: err}
}
