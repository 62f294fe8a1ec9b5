package acapy

import "context"

// SendCredentialOffer starts an issue-credential exchange.
func (c *Client) SendCredentialOffer(ctx context.Context, offer CredentialOffer) (*CredentialExchange, error) {
	var ex CredentialExchange
	if err := c.post(ctx, KindCredential, "send_credential_offer", "failed to send credential offer",
		pathOf("issue-credential", "send-offer"), nil, offer, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// GetCredentialExchanges lists credential exchange records.
func (c *Client) GetCredentialExchanges(ctx context.Context) ([]CredentialExchange, error) {
	var resp listResponse[CredentialExchange]
	if err := c.get(ctx, KindCredential, "get_credential_exchanges", "failed to get credential exchanges",
		pathOf("issue-credential", "records"), &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// GetCredentialExchange fetches one credential exchange record.
func (c *Client) GetCredentialExchange(ctx context.Context, credentialExchangeID string) (*CredentialExchange, error) {
	var ex CredentialExchange
	if err := c.get(ctx, KindCredential, "get_credential_exchange",
		"failed to get credential exchange: "+credentialExchangeID,
		pathOf("issue-credential", "records", credentialExchangeID), &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// IssueCredential issues the credential of an exchange in request_received.
func (c *Client) IssueCredential(ctx context.Context, credentialExchangeID string) (*CredentialExchange, error) {
	return c.credentialAction(ctx, "issue_credential", "failed to issue credential: ", credentialExchangeID, "issue")
}

// StoreCredential stores a received credential in the holder's wallet.
func (c *Client) StoreCredential(ctx context.Context, credentialExchangeID string) (*CredentialExchange, error) {
	return c.credentialAction(ctx, "store_credential", "failed to store credential: ", credentialExchangeID, "store")
}

func (c *Client) credentialAction(ctx context.Context, op, message, id, action string) (*CredentialExchange, error) {
	var ex CredentialExchange
	if err := c.post(ctx, KindCredential, op, message+id,
		pathOf("issue-credential", "records", id, action), nil, nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}
