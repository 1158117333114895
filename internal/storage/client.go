// Package storage wraps the Firestore document store and the GCS blob
// store behind the console's entity operations. No transactions are
// used anywhere: multi-record consistency (sponsor reference sets) is
// caller-orchestrated and best-effort.
package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

const (
	colRaffles     = "raffles"
	colTicketSales = "raffle_tickets"
	colSponsors    = "sponsors"
	colPrizes      = "prizes"
	colAdminUsers  = "admin_users"
	colImages      = "image_library"
)

// Client is the document-store handle. Constructed once at process
// start, held for the process's duration.
type Client struct {
	fs *firestore.Client

	// cascadeRetries bounds the per-sponsor retry attempts during
	// reference cleanup fan-out.
	cascadeRetries int
}

func New(ctx context.Context, projectID string, cascadeRetries int) (*Client, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return &Client{fs: fs, cascadeRetries: cascadeRetries}, nil
}

func (c *Client) Close() error {
	return c.fs.Close()
}
