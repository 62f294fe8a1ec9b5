package transport

import "fmt"

// Error is the uniform failure produced for every request that did not end
// in a decodable 2xx response. StatusCode is 0 when no response arrived.
type Error struct {
	StatusCode int
	// Body holds at most MaxErrorBody bytes of the response.
	Body      []byte
	Truncated bool
	Message   string
	cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unwrap exposes the underlying network or decode error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}
