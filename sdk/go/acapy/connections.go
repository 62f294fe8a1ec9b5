package acapy

import (
	"context"
	"net/url"
	"strconv"
)

// GetConnections lists connection records. A response without results
// yields an empty slice.
func (c *Client) GetConnections(ctx context.Context) ([]Connection, error) {
	var resp listResponse[Connection]
	if err := c.get(ctx, KindConnection, "get_connections", "failed to get connections",
		pathOf("connections"), &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// GetConnection fetches one connection record.
func (c *Client) GetConnection(ctx context.Context, connectionID string) (*Connection, error) {
	var conn Connection
	if err := c.get(ctx, KindConnection, "get_connection", "failed to get connection: "+connectionID,
		pathOf("connections", connectionID), &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// CreateInvitation asks the agent for a new connection invitation.
func (c *Client) CreateInvitation(ctx context.Context, opts InvitationOptions) (*InvitationResult, error) {
	query := url.Values{}
	if opts.Alias != "" {
		query.Set("alias", opts.Alias)
	}
	setBool(query, "auto_accept", opts.AutoAccept)
	setBool(query, "multi_use", opts.MultiUse)
	setBool(query, "public", opts.Public)

	var result InvitationResult
	if err := c.post(ctx, KindConnection, "create_invitation", "failed to create invitation",
		pathOf("connections", "create-invitation"), query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReceiveInvitation hands an invitation produced by another agent to this one.
func (c *Client) ReceiveInvitation(ctx context.Context, invitation Invitation, opts ReceiveInvitationOptions) (*Connection, error) {
	query := url.Values{}
	if opts.Alias != "" {
		query.Set("alias", opts.Alias)
	}
	setBool(query, "auto_accept", opts.AutoAccept)

	var conn Connection
	if err := c.post(ctx, KindConnection, "receive_invitation", "failed to receive invitation",
		pathOf("connections", "receive-invitation"), query, invitation, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// AcceptConnectionRequest accepts a pending connection request.
func (c *Client) AcceptConnectionRequest(ctx context.Context, connectionID string) (*Connection, error) {
	var conn Connection
	if err := c.post(ctx, KindConnection, "accept_connection_request",
		"failed to accept connection request: "+connectionID,
		pathOf("connections", connectionID, "accept-request"), nil, nil, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// DeleteConnection removes a connection record.
func (c *Client) DeleteConnection(ctx context.Context, connectionID string) error {
	return c.delete(ctx, KindConnection, "delete_connection", "failed to delete connection: "+connectionID,
		pathOf("connections", connectionID))
}

func setBool(query url.Values, key string, v *bool) {
	if v != nil {
		query.Set(key, strconv.FormatBool(*v))
	}
}
