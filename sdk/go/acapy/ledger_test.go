package acapy

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchema(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodPost, "/schemas", http.StatusOK, `{
		"schema_id": "WgWxqztrNooG92RXvxSTWv:2:degree:1.0",
		"schema": {
			"id": "WgWxqztrNooG92RXvxSTWv:2:degree:1.0",
			"name": "degree",
			"version": "1.0",
			"attrNames": ["name", "date"],
			"seqNo": 10,
			"ver": "1.0"
		}
	}`)
	c := agent.client(t, Config{})

	input := SchemaRequest{SchemaName: "degree", SchemaVersion: "1.0", Attributes: []string{"name", "date"}}
	schema, err := c.CreateSchema(context.Background(), input)
	require.NoError(t, err)

	reqs := agent.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/schemas", reqs[0].Path)

	var sent SchemaRequest
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.Equal(t, input, sent)

	assert.Equal(t, &Schema{
		ID:        "WgWxqztrNooG92RXvxSTWv:2:degree:1.0",
		Name:      "degree",
		Version:   "1.0",
		AttrNames: []string{"name", "date"},
		SeqNo:     10,
		Ver:       "1.0",
	}, schema)
}

func TestCreateSchemaFailure(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodPost, "/schemas", http.StatusBadRequest, `{"message":"no public DID"}`)
	c := agent.client(t, Config{})

	_, err := c.CreateSchema(context.Background(), SchemaRequest{SchemaName: "s", SchemaVersion: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredential)
	assert.Equal(t, KindCredential, KindOf(err))
	assert.Equal(t, http.StatusBadRequest, StatusCodeOf(err))
}

func TestGetSchema(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodGet, "/schemas/WgWxqztrNooG92RXvxSTWv:2:degree:1.0", http.StatusOK,
		`{"schema":{"id":"WgWxqztrNooG92RXvxSTWv:2:degree:1.0","name":"degree","version":"1.0","attrNames":["name"]}}`)
	c := agent.client(t, Config{})

	schema, err := c.GetSchema(context.Background(), "WgWxqztrNooG92RXvxSTWv:2:degree:1.0")
	require.NoError(t, err)
	assert.Equal(t, "degree", schema.Name)
	assert.Equal(t, []string{"name"}, schema.AttrNames)

	_, err = c.GetSchema(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrCredential)
	assert.True(t, IsNotFound(err))
}

func TestCreateCredentialDefinition(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodPost, "/credential-definitions", http.StatusOK, `{
		"credential_definition_id": "WgWxqztrNooG92RXvxSTWv:3:CL:10:default",
		"credential_definition": {
			"id": "WgWxqztrNooG92RXvxSTWv:3:CL:10:default",
			"tag": "default",
			"schemaId": "10",
			"type": "CL",
			"value": {"primary": {"n": "1"}}
		}
	}`)
	c := agent.client(t, Config{})

	def, err := c.CreateCredentialDefinition(context.Background(), CredentialDefinitionRequest{
		SchemaID: "WgWxqztrNooG92RXvxSTWv:2:degree:1.0",
		Tag:      "default",
	})
	require.NoError(t, err)
	assert.Equal(t, "WgWxqztrNooG92RXvxSTWv:3:CL:10:default", def.ID)
	assert.Equal(t, "10", def.SchemaID)
	assert.Equal(t, map[string]any{"n": "1"}, def.Value.Primary)

	assert.JSONEq(t, `{"schema_id":"WgWxqztrNooG92RXvxSTWv:2:degree:1.0","tag":"default"}`,
		string(agent.last(t).Body))
}

func TestGetCredentialDefinition(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodGet, "/credential-definitions/cd1", http.StatusOK,
		`{"credential_definition":{"id":"cd1","tag":"default","type":"CL"}}`)
	c := agent.client(t, Config{})

	def, err := c.GetCredentialDefinition(context.Background(), "cd1")
	require.NoError(t, err)
	assert.Equal(t, "cd1", def.ID)

	_, err = c.GetCredentialDefinition(context.Background(), "cd2")
	assert.ErrorIs(t, err, ErrCredential)
}

func TestCredentialDefinitionAcceptsSnakeCaseSchemaID(t *testing.T) {
	agent := newFakeAgent(t)
	agent.on(http.MethodGet, "/credential-definitions/cd1", http.StatusOK,
		`{"credential_definition":{"id":"cd1","schema_id":"WgWxqztrNooG92RXvxSTWv:2:degree:1.0","tag":"default"}}`)
	c := agent.client(t, Config{})

	def, err := c.GetCredentialDefinition(context.Background(), "cd1")
	require.NoError(t, err)
	assert.Equal(t, "WgWxqztrNooG92RXvxSTWv:2:degree:1.0", def.SchemaID)
	assert.Equal(t, "default", def.Tag)

	var both CredentialDefinition
	require.NoError(t, json.Unmarshal([]byte(`{"schemaId":"10","schema_id":"other"}`), &both))
	assert.Equal(t, "10", both.SchemaID)
}
