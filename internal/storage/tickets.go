package storage

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

type ticketSaleDoc struct {
	RaffleID  string  `firestore:"raffleId,omitempty"`
	Price     float64 `firestore:"price"`
	CreatedAt any     `firestore:"createdAt"`
}

// ListTicketSales returns every ticket-sale record. Sales never change
// after creation; this is the only read anyone does on them.
func (c *Client) ListTicketSales(ctx context.Context) ([]models.TicketSale, error) {
	iter := c.fs.Collection(colTicketSales).Documents(ctx)
	defer iter.Stop()

	var sales []models.TicketSale
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate ticket sales: %w", err)
		}
		var d ticketSaleDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket sale %s: %w", doc.Ref.ID, err)
		}
		sales = append(sales, models.TicketSale{
			ID:        doc.Ref.ID,
			RaffleID:  d.RaffleID,
			Price:     d.Price,
			CreatedAt: timeconv.ParseInstant(d.CreatedAt),
		})
	}
	return sales, nil
}
