package acapy

import "context"

// SendProofRequest starts a present-proof exchange.
func (c *Client) SendProofRequest(ctx context.Context, req ProofRequest) (*PresentationExchange, error) {
	var ex PresentationExchange
	if err := c.post(ctx, KindProof, "send_proof_request", "failed to send proof request",
		pathOf("present-proof", "send-request"), nil, req, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// GetPresentationExchanges lists presentation exchange records.
func (c *Client) GetPresentationExchanges(ctx context.Context) ([]PresentationExchange, error) {
	var resp listResponse[PresentationExchange]
	if err := c.get(ctx, KindProof, "get_presentation_exchanges", "failed to get presentation exchanges",
		pathOf("present-proof", "records"), &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// GetPresentationExchange fetches one presentation exchange record.
func (c *Client) GetPresentationExchange(ctx context.Context, presentationExchangeID string) (*PresentationExchange, error) {
	var ex PresentationExchange
	if err := c.get(ctx, KindProof, "get_presentation_exchange",
		"failed to get presentation exchange: "+presentationExchangeID,
		pathOf("present-proof", "records", presentationExchangeID), &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// VerifyPresentation asks the agent to verify a received presentation. The
// outcome is in the returned record's Verified field.
func (c *Client) VerifyPresentation(ctx context.Context, presentationExchangeID string) (*PresentationExchange, error) {
	var ex PresentationExchange
	if err := c.post(ctx, KindProof, "verify_presentation",
		"failed to verify presentation: "+presentationExchangeID,
		pathOf("present-proof", "records", presentationExchangeID, "verify-presentation"), nil, nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}
