package acapy

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Kind discriminates the failure domain of an *Error.
type Kind int

// Error kinds. KindAgent is the root kind: every *Error is an agent error.
const (
	KindAgent Kind = iota
	KindConnection
	KindCredential
	KindProof
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindCredential:
		return "credential"
	case KindProof:
		return "proof"
	default:
		return "agent"
	}
}

// Sentinels for errors.Is. ErrAgent matches every *Error.
var (
	ErrAgent      = &Error{Kind: KindAgent}
	ErrConnection = &Error{Kind: KindConnection}
	ErrCredential = &Error{Kind: KindCredential}
	ErrProof      = &Error{Kind: KindProof}
)

// Error is returned by every failing Client operation.
type Error struct {
	Kind    Kind
	Message string
	// StatusCode is the HTTP status of the agent's answer, 0 when no answer
	// was received or it could not be decoded.
	StatusCode int
	// Response is the raw body of the agent's answer, if any. Bodies of
	// failed calls are kept up to 1 MiB; Truncated reports a longer answer
	// that was cut.
	Response  []byte
	Truncated bool

	cause error
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("acapy %s error", e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (%d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the transport failure behind the error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is matches sentinels by kind; ErrAgent matches any kind.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == KindAgent || t.Kind == e.Kind
}

// DecodeResponse unmarshals the raw response body into v.
func (e *Error) DecodeResponse(v any) error {
	if e == nil || len(e.Response) == 0 {
		return stdErrors.New("acapy: error carries no response body")
	}
	return json.Unmarshal(e.Response, v)
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var target *Error
	if stdErrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// KindOf returns the kind of err, KindAgent when err is not an *Error.
func KindOf(err error) Kind {
	if e, ok := From(err); ok {
		return e.Kind
	}
	return KindAgent
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	if e, ok := From(err); ok {
		return e.StatusCode
	}
	return 0
}

// IsNotFound reports whether the agent answered 404.
func IsNotFound(err error) bool {
	return StatusCodeOf(err) == http.StatusNotFound
}
