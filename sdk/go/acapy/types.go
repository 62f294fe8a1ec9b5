package acapy

import "encoding/json"

// Exchange states reported by the agent. The client never checks or changes
// them; they are listed for callers comparing Connection.State and friends.
const (
	ConnectionStateInvitation = "invitation"
	ConnectionStateRequest    = "request"
	ConnectionStateResponse   = "response"
	ConnectionStateActive     = "active"

	CredentialStateOfferSent       = "offer_sent"
	CredentialStateOfferReceived   = "offer_received"
	CredentialStateRequestSent     = "request_sent"
	CredentialStateRequestReceived = "request_received"
	CredentialStateIssued          = "credential_issued"
	CredentialStateReceived        = "credential_received"
	CredentialStateAcked           = "credential_acked"

	PresentationStateRequestSent     = "request_sent"
	PresentationStateRequestReceived = "request_received"
	PresentationStateSent            = "presentation_sent"
	PresentationStateReceived        = "presentation_received"
	PresentationStateVerified        = "verified"
	PresentationStateAcked           = "presentation_acked"

	PostureWalletOnly = "wallet_only"
	PosturePublic     = "public"
	PosturePosted     = "posted"
)

// CredentialPreviewType is the message type of an issue-credential v1 preview.
const CredentialPreviewType = "issue-credential/1.0/credential-preview"

// Connection is a connection record.
type Connection struct {
	ConnectionID   string `json:"connection_id"`
	State          string `json:"state"`
	TheirLabel     string `json:"their_label,omitempty"`
	TheirRole      string `json:"their_role,omitempty"`
	TheirDID       string `json:"their_did,omitempty"`
	MyDID          string `json:"my_did,omitempty"`
	Alias          string `json:"alias,omitempty"`
	InvitationKey  string `json:"invitation_key,omitempty"`
	InvitationMode string `json:"invitation_mode,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Invitation is an out-of-band connection invitation, passed through as
// produced by the inviting agent. A decoded invitation re-encodes to exactly
// the JSON it was decoded from, fields without a typed counterpart (did,
// imageUrl, ...) included; edits to the typed fields of a decoded value are
// not sent. Invitations built by hand encode from their fields.
type Invitation struct {
	Type            string   `json:"@type"`
	ID              string   `json:"@id"`
	Label           string   `json:"label"`
	RecipientKeys   []string `json:"recipientKeys"`
	ServiceEndpoint string   `json:"serviceEndpoint"`
	RoutingKeys     []string `json:"routingKeys,omitempty"`

	raw json.RawMessage
}

func (i *Invitation) UnmarshalJSON(data []byte) error {
	type plain Invitation
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Invitation(p)
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (i Invitation) MarshalJSON() ([]byte, error) {
	if len(i.raw) > 0 {
		return i.raw, nil
	}
	type plain Invitation
	return json.Marshal(plain(i))
}

// Raw returns the JSON the invitation was decoded from, nil for one built
// by hand.
func (i Invitation) Raw() json.RawMessage {
	return i.raw
}

// InvitationResult is returned when creating an invitation. Like Invitation
// it re-encodes to the agent's answer unchanged.
type InvitationResult struct {
	ConnectionID  string     `json:"connection_id"`
	Invitation    Invitation `json:"invitation"`
	InvitationURL string     `json:"invitation_url"`
	Alias         string     `json:"alias,omitempty"`

	raw json.RawMessage
}

func (r *InvitationResult) UnmarshalJSON(data []byte) error {
	type plain InvitationResult
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = InvitationResult(p)
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (r InvitationResult) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	type plain InvitationResult
	return json.Marshal(plain(r))
}

// InvitationOptions are the query parameters of CreateInvitation. Unset
// fields are not sent.
type InvitationOptions struct {
	Alias      string
	AutoAccept *bool
	MultiUse   *bool
	Public     *bool
}

// ReceiveInvitationOptions are the query parameters of ReceiveInvitation.
type ReceiveInvitationOptions struct {
	Alias      string
	AutoAccept *bool
}

// Schema is a ledger schema.
type Schema struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attrNames"`
	SeqNo     int      `json:"seqNo,omitempty"`
	Ver       string   `json:"ver,omitempty"`
}

// SchemaRequest is the body of CreateSchema.
type SchemaRequest struct {
	SchemaName    string   `json:"schema_name"`
	SchemaVersion string   `json:"schema_version"`
	Attributes    []string `json:"attributes"`
}

// CredentialDefinition binds a schema to an issuer.
type CredentialDefinition struct {
	ID       string                    `json:"id"`
	Tag      string                    `json:"tag"`
	SchemaID string                    `json:"schemaId"`
	Type     string                    `json:"type"`
	Ver      string                    `json:"ver,omitempty"`
	Value    CredentialDefinitionValue `json:"value"`
}

// UnmarshalJSON accepts the schema id as schemaId (ledger form) or schema_id.
func (d *CredentialDefinition) UnmarshalJSON(data []byte) error {
	type plain CredentialDefinition
	var v struct {
		plain
		SnakeSchemaID string `json:"schema_id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = CredentialDefinition(v.plain)
	if d.SchemaID == "" {
		d.SchemaID = v.SnakeSchemaID
	}
	return nil
}

// CredentialDefinitionValue holds the public key material of a definition.
type CredentialDefinitionValue struct {
	Primary    map[string]any `json:"primary"`
	Revocation map[string]any `json:"revocation,omitempty"`
}

// CredentialDefinitionRequest is the body of CreateCredentialDefinition.
type CredentialDefinitionRequest struct {
	SchemaID               string `json:"schema_id"`
	Tag                    string `json:"tag"`
	SupportRevocation      bool   `json:"support_revocation,omitempty"`
	RevocationRegistrySize int    `json:"revocation_registry_size,omitempty"`
}

// CredentialPreviewAttribute is one attribute of a credential preview.
type CredentialPreviewAttribute struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	MimeType string `json:"mime-type,omitempty"`
}

// CredentialPreview lists the attribute values offered to the holder.
type CredentialPreview struct {
	Type       string                       `json:"@type"`
	Attributes []CredentialPreviewAttribute `json:"attributes"`
}

// CredentialOffer is the body of SendCredentialOffer.
type CredentialOffer struct {
	CredentialDefinitionID string            `json:"credential_definition_id"`
	ConnectionID           string            `json:"connection_id"`
	Comment                string            `json:"comment,omitempty"`
	AutoRemove             *bool             `json:"auto_remove,omitempty"`
	AutoIssue              *bool             `json:"auto_issue,omitempty"`
	Trace                  *bool             `json:"trace,omitempty"`
	CredentialPreview      CredentialPreview `json:"credential_preview"`
}

// CredentialExchange is an issue-credential exchange record.
type CredentialExchange struct {
	CredentialExchangeID   string         `json:"credential_exchange_id"`
	ConnectionID           string         `json:"connection_id"`
	ThreadID               string         `json:"thread_id"`
	State                  string         `json:"state"`
	CredentialDefinitionID string         `json:"credential_definition_id,omitempty"`
	SchemaID               string         `json:"schema_id,omitempty"`
	Credential             map[string]any `json:"credential,omitempty"`
	CreatedAt              string         `json:"created_at,omitempty"`
	UpdatedAt              string         `json:"updated_at,omitempty"`
}

// ProofRequestSpec describes the attributes and predicates requested.
type ProofRequestSpec struct {
	Name                string         `json:"name"`
	Version             string         `json:"version"`
	Nonce               string         `json:"nonce,omitempty"`
	RequestedAttributes map[string]any `json:"requested_attributes"`
	RequestedPredicates map[string]any `json:"requested_predicates"`
}

// ProofRequest is the body of SendProofRequest.
type ProofRequest struct {
	ConnectionID string           `json:"connection_id"`
	Comment      string           `json:"comment,omitempty"`
	ProofRequest ProofRequestSpec `json:"proof_request"`
	Trace        *bool            `json:"trace,omitempty"`
}

// PresentationExchange is a present-proof exchange record.
type PresentationExchange struct {
	PresentationExchangeID string         `json:"presentation_exchange_id"`
	ConnectionID           string         `json:"connection_id"`
	ThreadID               string         `json:"thread_id"`
	State                  string         `json:"state"`
	Verified               string         `json:"verified,omitempty"`
	Presentation           map[string]any `json:"presentation,omitempty"`
	CreatedAt              string         `json:"created_at,omitempty"`
	UpdatedAt              string         `json:"updated_at,omitempty"`
}

// WalletDID is a DID held in the agent's wallet.
type WalletDID struct {
	DID     string `json:"did"`
	Verkey  string `json:"verkey"`
	Posture string `json:"posture"`
	Method  string `json:"method,omitempty"`
	KeyType string `json:"key_type,omitempty"`
}

// BasicMessage is a plain text message sent over a connection.
type BasicMessage struct {
	ConnectionID string `json:"connection_id"`
	Content      string `json:"content"`
}

// AgentStatus is the typed view of GetStatus.
type AgentStatus struct {
	Version   string         `mapstructure:"version"`
	Label     string         `mapstructure:"label"`
	Conductor map[string]any `mapstructure:"conductor"`
}

// Bool returns a pointer to v, for the optional flags of request types.
func Bool(v bool) *bool {
	return &v
}

// listResponse is the envelope of every list endpoint.
type listResponse[T any] struct {
	Results []T `json:"results"`
}

func (r listResponse[T]) items() []T {
	if r.Results == nil {
		return []T{}
	}
	return r.Results
}
