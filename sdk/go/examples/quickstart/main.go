// Command quickstart prints the status of the agent named by ACAPY_URL.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"acapy-client-go/pkg/logger"
	"acapy-client-go/sdk/go/acapy"
)

func main() {
	cfg, err := acapy.ConfigFromEnv()
	if err != nil {
		fail(err)
	}
	client, err := acapy.NewClient(cfg)
	if err != nil {
		fail(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if !client.IsAlive(ctx) {
		fail(fmt.Errorf("agent at %s is not alive", client.Config().BaseURL))
	}
	fmt.Printf("ready: %v\n", client.IsReady(ctx))

	raw, err := client.GetStatus(ctx)
	if err != nil {
		fail(err)
	}
	status, err := acapy.DecodeStatus(raw)
	if err != nil {
		fail(err)
	}
	fmt.Printf("agent %q running ACA-Py %s\n", status.Label, status.Version)

	conns, err := client.GetConnections(ctx)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%d connections\n", len(conns))
	for _, c := range conns {
		fmt.Printf("  %s  %-10s %s\n", c.ConnectionID, c.State, c.TheirLabel)
	}

	if did, err := client.GetPublicDID(ctx); err == nil && did != nil {
		fmt.Printf("public DID %s\n", did.DID)
	}
}

func fail(err error) {
	logger.L().Error("quickstart failed", "error", err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
