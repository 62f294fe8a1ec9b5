package acapy

import "context"

// SendBasicMessage sends msg.Content over the connection msg.ConnectionID.
func (c *Client) SendBasicMessage(ctx context.Context, msg BasicMessage) error {
	body := struct {
		Content string `json:"content"`
	}{Content: msg.Content}

	return c.post(ctx, KindAgent, "send_basic_message", "failed to send basic message",
		pathOf("connections", msg.ConnectionID, "send-message"), nil, body, nil)
}
