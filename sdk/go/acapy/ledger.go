package acapy

import "context"

// CreateSchema publishes a schema and returns the schema object nested in
// the agent's answer.
func (c *Client) CreateSchema(ctx context.Context, req SchemaRequest) (*Schema, error) {
	var resp struct {
		Schema Schema `json:"schema"`
	}
	if err := c.post(ctx, KindCredential, "create_schema", "failed to create schema",
		pathOf("schemas"), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Schema, nil
}

// GetSchema fetches a schema by id.
func (c *Client) GetSchema(ctx context.Context, schemaID string) (*Schema, error) {
	var resp struct {
		Schema Schema `json:"schema"`
	}
	if err := c.get(ctx, KindCredential, "get_schema", "failed to get schema: "+schemaID,
		pathOf("schemas", schemaID), &resp); err != nil {
		return nil, err
	}
	return &resp.Schema, nil
}

// CreateCredentialDefinition publishes a credential definition for a schema.
func (c *Client) CreateCredentialDefinition(ctx context.Context, req CredentialDefinitionRequest) (*CredentialDefinition, error) {
	var resp struct {
		CredentialDefinition CredentialDefinition `json:"credential_definition"`
	}
	if err := c.post(ctx, KindCredential, "create_credential_definition", "failed to create credential definition",
		pathOf("credential-definitions"), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.CredentialDefinition, nil
}

// GetCredentialDefinition fetches a credential definition by id.
func (c *Client) GetCredentialDefinition(ctx context.Context, credDefID string) (*CredentialDefinition, error) {
	var resp struct {
		CredentialDefinition CredentialDefinition `json:"credential_definition"`
	}
	if err := c.get(ctx, KindCredential, "get_credential_definition",
		"failed to get credential definition: "+credDefID,
		pathOf("credential-definitions", credDefID), &resp); err != nil {
		return nil, err
	}
	return &resp.CredentialDefinition, nil
}
