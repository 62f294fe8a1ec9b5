package acapy

import (
	"context"
	"net/http"

	"github.com/mitchellh/mapstructure"

	"acapy-client-go/internal/transport"
)

// GetStatus returns the agent's status document as sent.
func (c *Client) GetStatus(ctx context.Context) (map[string]any, error) {
	status := map[string]any{}
	if err := c.get(ctx, KindAgent, "get_status", "failed to get agent status",
		pathOf("status"), &status); err != nil {
		return nil, err
	}
	return status, nil
}

// DecodeStatus converts a GetStatus document into an AgentStatus.
func DecodeStatus(status map[string]any) (AgentStatus, error) {
	var out AgentStatus
	if err := mapstructure.Decode(status, &out); err != nil {
		return AgentStatus{}, newError(KindAgent, "decode agent status", err)
	}
	return out, nil
}

// IsReady probes /status/ready. Any failure, including an unreadable answer,
// reports false.
func (c *Client) IsReady(ctx context.Context) bool {
	var resp struct {
		Ready bool `json:"ready"`
	}
	return c.probe(ctx, "is_ready", pathOf("status", "ready"), &resp) && resp.Ready
}

// IsAlive probes /status/live. Any failure reports false.
func (c *Client) IsAlive(ctx context.Context) bool {
	var resp struct {
		Alive bool `json:"alive"`
	}
	return c.probe(ctx, "is_alive", pathOf("status", "live"), &resp) && resp.Alive
}

func (c *Client) probe(ctx context.Context, op, path string, out any) bool {
	err := c.tr.Do(ctx, transport.Request{
		Operation: op,
		Method:    http.MethodGet,
		Path:      path,
	}, out)
	return err == nil
}
