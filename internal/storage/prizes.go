package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rafflehouse/admin-backend/internal/models"
)

type prizeDoc struct {
	PrizeName      string  `firestore:"prizeName"`
	RetailValueUSD float64 `firestore:"retailValueUSD"`
	Thumbnail      string  `firestore:"thumbnail,omitempty"`
	SponsorID      string  `firestore:"sponsorId,omitempty"`
	Status         string  `firestore:"status,omitempty"`
}

func (d prizeDoc) toModel(id string) models.Prize {
	return models.Prize{
		ID:             id,
		PrizeName:      d.PrizeName,
		RetailValueUSD: d.RetailValueUSD,
		Thumbnail:      d.Thumbnail,
		SponsorID:      d.SponsorID,
		Status:         d.Status,
	}
}

// ListPrizes returns every prize.
func (c *Client) ListPrizes(ctx context.Context) ([]models.Prize, error) {
	iter := c.fs.Collection(colPrizes).Documents(ctx)
	defer iter.Stop()

	var prizes []models.Prize
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate prizes: %w", err)
		}
		var d prizeDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prize %s: %w", doc.Ref.ID, err)
		}
		prizes = append(prizes, d.toModel(doc.Ref.ID))
	}
	return prizes, nil
}

// GetPrize retrieves a prize by id, (nil, nil) when absent.
func (c *Client) GetPrize(ctx context.Context, id string) (*models.Prize, error) {
	doc, err := c.fs.Collection(colPrizes).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prize %s: %w", id, err)
	}
	var d prizeDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prize %s: %w", id, err)
	}
	p := d.toModel(doc.Ref.ID)
	return &p, nil
}

// CreatePrize persists a new prize and returns its assigned id.
func (c *Client) CreatePrize(ctx context.Context, p models.Prize) (string, error) {
	doc := prizeDoc{
		PrizeName:      p.PrizeName,
		RetailValueUSD: p.RetailValueUSD,
		Thumbnail:      p.Thumbnail,
		SponsorID:      p.SponsorID,
		Status:         p.Status,
	}
	ref, _, err := c.fs.Collection(colPrizes).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create prize: %w", err)
	}
	return ref.ID, nil
}

// UpdatePrize merges the given fields into the prize document.
func (c *Client) UpdatePrize(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.fs.Collection(colPrizes).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update prize %s: %w", id, err)
	}
	return nil
}

// DeletePrize removes the prize and then strips its id from every
// sponsor's prizes reference set, best-effort.
func (c *Client) DeletePrize(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(colPrizes).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete prize %s: %w", id, err)
	}
	c.cleanupSponsorRefs(ctx, RefPrizes, id)
	return nil
}
