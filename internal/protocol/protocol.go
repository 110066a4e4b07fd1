// Package protocol implements the pipe-delimited request/reply line format
// and dispatches requests to per-command handlers.
package protocol

import (
	"context"
	"errors"
	"strings"
)

// Separator splits fields of requests and replies.
const Separator = "|"

// Reply status words.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Error reply messages sent to clients. Internal diagnostics never leave the server.
const (
	MsgInvalidCommand     = "Invalid Command"
	MsgInvalidArguments   = "Invalid arguments"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserExists         = "Username or email already exists"
	MsgTokenExpired       = "Token expired"
	MsgInvalidToken       = "Invalid token"
	MsgInvalidScore       = "Invalid score"
	MsgProfileNotFound    = "Profile not found"
	MsgInternalError      = "Internal server error"
)

// ErrEmptyRequest is returned by Parse for a blank line.
var ErrEmptyRequest = errors.New("empty request")

// Request is a parsed request line.
type Request struct {
	Command string
	Args    []string
}

// Parse splits line into a command and its arguments.
// A trailing line ending is dropped; fields are otherwise kept verbatim.
func Parse(line string) (Request, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Request{}, ErrEmptyRequest
	}

	parts := strings.Split(line, Separator)
	return Request{Command: parts[0], Args: parts[1:]}, nil
}

// Encode joins a status (or reply prefix) and its fields.
func Encode(status string, fields ...string) string {
	return strings.Join(append([]string{status}, fields...), Separator)
}

// Success builds "SUCCESS|msg".
func Success(msg string) string {
	return Encode(StatusSuccess, msg)
}

// Error builds "ERROR|msg".
func Error(msg string) string {
	return Encode(StatusError, msg)
}

// Status returns the first field of a reply.
func Status(reply string) string {
	status, _, _ := strings.Cut(reply, Separator)
	return status
}

type requestKey struct{}

// WithRequest stores the request being served in ctx.
func WithRequest(ctx context.Context, req Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// RequestFromContext returns the request stored by the router.
func RequestFromContext(ctx context.Context) (Request, bool) {
	req, ok := ctx.Value(requestKey{}).(Request)
	return req, ok
}
