// Command connection connects the agent at ACAPY_URL (inviter) with the one
// at ACAPY_HOLDER_URL (invitee) and exchanges a basic message.
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
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer logger.Sync()

	inviter, invitee, err := clients()
	if err != nil {
		fail(err)
	}

	inv, err := inviter.CreateInvitation(ctx, acapy.InvitationOptions{
		Alias:      "holder",
		AutoAccept: acapy.Bool(true),
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("invitation %s\n", inv.InvitationURL)

	theirs, err := invitee.ReceiveInvitation(ctx, inv.Invitation, acapy.ReceiveInvitationOptions{
		Alias:      "issuer",
		AutoAccept: acapy.Bool(true),
	})
	if err != nil {
		fail(err)
	}

	conn, err := waitActive(ctx, inviter, inv.ConnectionID)
	if err != nil {
		fail(err)
	}
	fmt.Printf("connection %s active (invitee side %s)\n", conn.ConnectionID, theirs.ConnectionID)

	if err := inviter.SendBasicMessage(ctx, acapy.BasicMessage{
		ConnectionID: conn.ConnectionID,
		Content:      "hello from the inviter",
	}); err != nil {
		fail(err)
	}
	fmt.Println("basic message sent")
}

func clients() (*acapy.Client, *acapy.Client, error) {
	cfg, err := acapy.ConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	inviter, err := acapy.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	holderURL := os.Getenv("ACAPY_HOLDER_URL")
	if holderURL == "" {
		holderURL = "http://localhost:8041"
	}
	cfg.BaseURL = holderURL
	cfg.APIKey = os.Getenv("ACAPY_HOLDER_API_KEY")
	invitee, err := acapy.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return inviter, invitee, nil
}

func waitActive(ctx context.Context, client *acapy.Client, id string) (*acapy.Connection, error) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		conn, err := client.GetConnection(ctx, id)
		if err != nil && !acapy.IsNotFound(err) {
			return nil, err
		}
		if conn != nil && conn.State == acapy.ConnectionStateActive {
			return conn, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func fail(err error) {
	logger.L().Error("connection example failed", "error", err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
