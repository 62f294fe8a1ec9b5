package acapy

import "context"

// GetWalletDIDs lists the DIDs held in the agent's wallet.
func (c *Client) GetWalletDIDs(ctx context.Context) ([]WalletDID, error) {
	var resp listResponse[WalletDID]
	if err := c.get(ctx, KindAgent, "get_wallet_dids", "failed to get wallet DIDs",
		pathOf("wallet", "did"), &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// CreateDID creates a local DID. An empty method lets the agent pick its
// default.
func (c *Client) CreateDID(ctx context.Context, method string) (*WalletDID, error) {
	body := struct {
		Method string `json:"method,omitempty"`
	}{Method: method}

	var resp struct {
		Result WalletDID `json:"result"`
	}
	if err := c.post(ctx, KindAgent, "create_did", "failed to create DID",
		pathOf("wallet", "did", "create"), nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}

// GetPublicDID returns the wallet's public DID, or nil when none is set.
func (c *Client) GetPublicDID(ctx context.Context) (*WalletDID, error) {
	var resp struct {
		Result *WalletDID `json:"result"`
	}
	if err := c.get(ctx, KindAgent, "get_public_did", "failed to get public DID",
		pathOf("wallet", "did", "public"), &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
