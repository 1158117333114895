package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

// raffleDoc is the wire shape of a raffle document. Timestamp fields
// are any because historical writers stored them as SDK timestamps,
// ISO strings, or epoch numbers; decoding goes through ParseInstant.
type raffleDoc struct {
	Title       string  `firestore:"title"`
	Description string  `firestore:"description,omitempty"`
	PictureURL  string  `firestore:"pictureUrl,omitempty"`
	CreatedAt   any     `firestore:"createdAt"`
	ExpiryDate  any     `firestore:"expiryDate"`
	Status      string  `firestore:"status,omitempty"`
	PrizeID     string  `firestore:"prizeId,omitempty"`
	SponsorID   string  `firestore:"sponsorId,omitempty"`
	TicketPrice float64 `firestore:"ticketPrice"`
}

func (d raffleDoc) toModel(id string) models.Raffle {
	return models.Raffle{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		PictureURL:  d.PictureURL,
		CreatedAt:   timeconv.ParseInstant(d.CreatedAt),
		ExpiryDate:  timeconv.ParseInstant(d.ExpiryDate),
		Status:      d.Status,
		PrizeID:     d.PrizeID,
		SponsorID:   d.SponsorID,
		TicketPrice: d.TicketPrice,
	}
}

func raffleToDoc(r models.Raffle) raffleDoc {
	return raffleDoc{
		Title:       r.Title,
		Description: r.Description,
		PictureURL:  r.PictureURL,
		CreatedAt:   r.CreatedAt,
		ExpiryDate:  r.ExpiryDate,
		Status:      r.Status,
		PrizeID:     r.PrizeID,
		SponsorID:   r.SponsorID,
		TicketPrice: r.TicketPrice,
	}
}

// ListRaffles returns every raffle in the collection.
func (c *Client) ListRaffles(ctx context.Context) ([]models.Raffle, error) {
	iter := c.fs.Collection(colRaffles).Documents(ctx)
	defer iter.Stop()

	var raffles []models.Raffle
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate raffles: %w", err)
		}
		var d raffleDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal raffle %s: %w", doc.Ref.ID, err)
		}
		raffles = append(raffles, d.toModel(doc.Ref.ID))
	}
	return raffles, nil
}

// GetRaffle retrieves a raffle by id. Returns (nil, nil) when the
// document does not exist.
func (c *Client) GetRaffle(ctx context.Context, id string) (*models.Raffle, error) {
	doc, err := c.fs.Collection(colRaffles).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get raffle %s: %w", id, err)
	}
	var d raffleDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raffle %s: %w", id, err)
	}
	r := d.toModel(doc.Ref.ID)
	return &r, nil
}

// CreateRaffle persists a new raffle and returns its assigned id. The
// caller-chosen CreatedAt is stored as given; it is the intended start
// time, not the insertion time.
func (c *Client) CreateRaffle(ctx context.Context, r models.Raffle) (string, error) {
	ref, _, err := c.fs.Collection(colRaffles).Add(ctx, raffleToDoc(r))
	if err != nil {
		return "", fmt.Errorf("failed to create raffle: %w", err)
	}
	return ref.ID, nil
}

// UpdateRaffle merges the given fields into the raffle document.
func (c *Client) UpdateRaffle(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.fs.Collection(colRaffles).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update raffle %s: %w", id, err)
	}
	return nil
}

// DeleteRaffle removes the raffle and then strips its id from every
// sponsor's games reference set. The cleanup is best-effort: failures
// are logged per sponsor and never fail the delete.
func (c *Client) DeleteRaffle(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(colRaffles).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete raffle %s: %w", id, err)
	}
	c.cleanupSponsorRefs(ctx, RefGames, id)
	return nil
}
