// Command issuance publishes a schema and credential definition on the agent
// at ACAPY_URL, then offers a credential over ACAPY_CONNECTION_ID.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"acapy-client-go/pkg/logger"
	"acapy-client-go/sdk/go/acapy"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	defer logger.Sync()

	cfg, err := acapy.ConfigFromEnv()
	if err != nil {
		fail(err)
	}
	issuer, err := acapy.NewClient(cfg)
	if err != nil {
		fail(err)
	}
	connectionID := os.Getenv("ACAPY_CONNECTION_ID")
	if connectionID == "" {
		fail(errors.New("ACAPY_CONNECTION_ID is required"))
	}

	schema, err := issuer.CreateSchema(ctx, acapy.SchemaRequest{
		SchemaName:    "degree",
		SchemaVersion: fmt.Sprintf("1.%d", time.Now().Unix()),
		Attributes:    []string{"name", "degree", "date"},
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("schema %s\n", schema.ID)

	def, err := issuer.CreateCredentialDefinition(ctx, acapy.CredentialDefinitionRequest{
		SchemaID: schema.ID,
		Tag:      "default",
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("credential definition %s\n", def.ID)

	ex, err := issuer.SendCredentialOffer(ctx, acapy.CredentialOffer{
		CredentialDefinitionID: def.ID,
		ConnectionID:           connectionID,
		Comment:                "Your degree",
		AutoIssue:              acapy.Bool(true),
		AutoRemove:             acapy.Bool(false),
		CredentialPreview: acapy.CredentialPreview{
			Type: acapy.CredentialPreviewType,
			Attributes: []acapy.CredentialPreviewAttribute{
				{Name: "name", Value: "Alice Smith"},
				{Name: "degree", Value: "Maths"},
				{Name: "date", Value: "2024-06-01"},
			},
		},
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("offer %s sent (%s)\n", ex.CredentialExchangeID, ex.State)

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		ex, err = issuer.GetCredentialExchange(ctx, ex.CredentialExchangeID)
		if err != nil {
			fail(err)
		}
		switch ex.State {
		case acapy.CredentialStateRequestReceived:
			if ex, err = issuer.IssueCredential(ctx, ex.CredentialExchangeID); err != nil {
				fail(err)
			}
		case acapy.CredentialStateIssued, acapy.CredentialStateAcked:
			fmt.Printf("credential %s\n", ex.State)
			return
		}
		select {
		case <-ctx.Done():
			fail(ctx.Err())
		case <-ticker.C:
		}
	}
}

func fail(err error) {
	if acapy.KindOf(err) == acapy.KindCredential {
		logger.L().Error("issuance rejected by agent", "status", acapy.StatusCodeOf(err), "error", err)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
