package acapy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindsMatchSentinels(t *testing.T) {
	cases := []struct {
		kind    Kind
		matches []error
		misses  []error
	}{
		{KindAgent, []error{ErrAgent}, []error{ErrConnection, ErrCredential, ErrProof}},
		{KindConnection, []error{ErrAgent, ErrConnection}, []error{ErrCredential, ErrProof}},
		{KindCredential, []error{ErrAgent, ErrCredential}, []error{ErrConnection, ErrProof}},
		{KindProof, []error{ErrAgent, ErrProof}, []error{ErrConnection, ErrCredential}},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("outer: %w", newError(tc.kind, "boom", nil))
			for _, target := range tc.matches {
				assert.ErrorIs(t, err, target)
			}
			for _, target := range tc.misses {
				assert.NotErrorIs(t, err, target)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	e := newError(KindConnection, "failed to get connection: c1", errors.New("status 404: not found"))
	e.StatusCode = http.StatusNotFound
	assert.Equal(t, "acapy connection error (404): failed to get connection: c1: status 404: not found", e.Error())

	assert.Equal(t, "acapy agent error", (&Error{}).Error())
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := newError(KindProof, "failed to send proof request", cause)
	assert.ErrorIs(t, err, cause)
}

func TestFromAndHelpers(t *testing.T) {
	e := newError(KindCredential, "failed", nil)
	e.StatusCode = http.StatusNotFound
	wrapped := fmt.Errorf("ctx: %w", e)

	got, ok := From(wrapped)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.Equal(t, KindCredential, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCodeOf(wrapped))
	assert.True(t, IsNotFound(wrapped))

	_, ok = From(errors.New("plain"))
	assert.False(t, ok)
	_, ok = From(nil)
	assert.False(t, ok)
	assert.Equal(t, KindAgent, KindOf(errors.New("plain")))
	assert.Zero(t, StatusCodeOf(nil))
	assert.False(t, IsNotFound(nil))
}

func TestDecodeResponse(t *testing.T) {
	e := &Error{Kind: KindAgent, Response: []byte(`{"message":"bad schema"}`)}
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, e.DecodeResponse(&body))
	assert.Equal(t, "bad schema", body.Message)

	assert.Error(t, (&Error{}).DecodeResponse(&body))
}

func TestOversizedErrorBodyIsFlagged(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodGet, "/status", http.StatusInternalServerError, strings.Repeat("e", 2<<20))
	agent.on(http.MethodGet, "/connections/c1", http.StatusNotFound, `{"message":"Record not found"}`)
	c := agent.client(t, Config{})

	_, err := c.GetStatus(context.Background())
	e, ok := From(err)
	require.True(t, ok)
	assert.True(t, e.Truncated)
	assert.Len(t, e.Response, 1<<20)

	_, err = c.GetConnection(context.Background(), "c1")
	e, ok = From(err)
	require.True(t, ok)
	assert.False(t, e.Truncated)
}
