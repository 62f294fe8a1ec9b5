// Command proof asks the holder behind ACAPY_CONNECTION_ID to prove the
// "name" attribute of a credential from ACAPY_CRED_DEF_ID and verifies the
// answer.
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
	verifier, err := acapy.NewClient(cfg)
	if err != nil {
		fail(err)
	}
	connectionID, credDefID := os.Getenv("ACAPY_CONNECTION_ID"), os.Getenv("ACAPY_CRED_DEF_ID")
	if connectionID == "" || credDefID == "" {
		fail(errors.New("ACAPY_CONNECTION_ID and ACAPY_CRED_DEF_ID are required"))
	}

	ex, err := verifier.SendProofRequest(ctx, acapy.ProofRequest{
		ConnectionID: connectionID,
		Comment:      "Prove your name",
		ProofRequest: acapy.ProofRequestSpec{
			Name:    "name check",
			Version: "1.0",
			RequestedAttributes: map[string]any{
				"name_attr": map[string]any{
					"name":         "name",
					"restrictions": []map[string]string{{"cred_def_id": credDefID}},
				},
			},
			RequestedPredicates: map[string]any{},
		},
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("proof request %s sent\n", ex.PresentationExchangeID)

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		ex, err = verifier.GetPresentationExchange(ctx, ex.PresentationExchangeID)
		if err != nil {
			fail(err)
		}
		switch ex.State {
		case acapy.PresentationStateReceived:
			if ex, err = verifier.VerifyPresentation(ctx, ex.PresentationExchangeID); err != nil {
				fail(err)
			}
			fmt.Printf("presentation verified=%s\n", ex.Verified)
			return
		case acapy.PresentationStateVerified:
			fmt.Printf("presentation verified=%s\n", ex.Verified)
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
	if errors.Is(err, acapy.ErrProof) {
		logger.L().Error("proof exchange failed", "status", acapy.StatusCodeOf(err), "error", err)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
