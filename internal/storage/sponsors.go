package storage

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rafflehouse/admin-backend/internal/models"
)

// RefKind names one of the reference sets a sponsor owns.
type RefKind string

const (
	RefGames  RefKind = "gamesCreation"
	RefPrizes RefKind = "prizesCreation"
)

type sponsorDoc struct {
	SponsorName    string   `firestore:"sponsorName"`
	Logo           []string `firestore:"logo,omitempty"`
	GamesCreation  []string `firestore:"gamesCreation,omitempty"`
	PrizesCreation []string `firestore:"prizesCreation,omitempty"`
	Status         string   `firestore:"status,omitempty"`
}

func (d sponsorDoc) toModel(id string) models.Sponsor {
	return models.Sponsor{
		ID:             id,
		SponsorName:    d.SponsorName,
		Logo:           d.Logo,
		GamesCreation:  d.GamesCreation,
		PrizesCreation: d.PrizesCreation,
		Status:         d.Status,
	}
}

// ListSponsors returns every sponsor.
func (c *Client) ListSponsors(ctx context.Context) ([]models.Sponsor, error) {
	return c.listSponsors(ctx, c.fs.Collection(colSponsors).Query)
}

// ListActiveSponsors returns only sponsors offered for selection on
// raffle and prize forms.
func (c *Client) ListActiveSponsors(ctx context.Context) ([]models.Sponsor, error) {
	q := c.fs.Collection(colSponsors).Where("status", "==", models.SponsorStatusActive)
	return c.listSponsors(ctx, q)
}

func (c *Client) listSponsors(ctx context.Context, q firestore.Query) ([]models.Sponsor, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var sponsors []models.Sponsor
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate sponsors: %w", err)
		}
		var d sponsorDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sponsor %s: %w", doc.Ref.ID, err)
		}
		sponsors = append(sponsors, d.toModel(doc.Ref.ID))
	}
	return sponsors, nil
}

// GetSponsor retrieves a sponsor by id, (nil, nil) when absent.
func (c *Client) GetSponsor(ctx context.Context, id string) (*models.Sponsor, error) {
	doc, err := c.fs.Collection(colSponsors).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sponsor %s: %w", id, err)
	}
	var d sponsorDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sponsor %s: %w", id, err)
	}
	s := d.toModel(doc.Ref.ID)
	return &s, nil
}

// CreateSponsor persists a new sponsor and returns its assigned id.
func (c *Client) CreateSponsor(ctx context.Context, s models.Sponsor) (string, error) {
	doc := sponsorDoc{
		SponsorName:    s.SponsorName,
		Logo:           s.Logo,
		GamesCreation:  s.GamesCreation,
		PrizesCreation: s.PrizesCreation,
		Status:         s.Status,
	}
	ref, _, err := c.fs.Collection(colSponsors).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create sponsor: %w", err)
	}
	return ref.ID, nil
}

// UpdateSponsor merges the given fields into the sponsor document.
func (c *Client) UpdateSponsor(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.fs.Collection(colSponsors).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update sponsor %s: %w", id, err)
	}
	return nil
}

// DeleteSponsor removes the sponsor document. Raffles and prizes keep
// their sponsorId; dangling references render as "N/A" downstream.
func (c *Client) DeleteSponsor(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(colSponsors).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete sponsor %s: %w", id, err)
	}
	return nil
}

// AddSponsorReference unions id into the sponsor's reference set.
func (c *Client) AddSponsorReference(ctx context.Context, sponsorID string, kind RefKind, id string) error {
	_, err := c.fs.Collection(colSponsors).Doc(sponsorID).Update(ctx, []firestore.Update{
		{Path: string(kind), Value: firestore.ArrayUnion(id)},
	})
	if err != nil {
		return fmt.Errorf("failed to add %s reference on sponsor %s: %w", kind, sponsorID, err)
	}
	return nil
}

// RemoveSponsorReference removes id from the sponsor's reference set.
func (c *Client) RemoveSponsorReference(ctx context.Context, sponsorID string, kind RefKind, id string) error {
	_, err := c.fs.Collection(colSponsors).Doc(sponsorID).Update(ctx, []firestore.Update{
		{Path: string(kind), Value: firestore.ArrayRemove(id)},
	})
	if err != nil {
		return fmt.Errorf("failed to remove %s reference on sponsor %s: %w", kind, sponsorID, err)
	}
	return nil
}

// SweepSponsorRefs walks every sponsor and removes reference-set
// entries pointing at raffles or prizes that no longer exist. This is
// the reconciliation pass for cleanup fan-outs that partially failed;
// it reports how many dangling references it removed.
func (c *Client) SweepSponsorRefs(ctx context.Context) (int, error) {
	sponsors, err := c.ListSponsors(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep: %w", err)
	}
	raffles, err := c.ListRaffles(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep: %w", err)
	}
	prizes, err := c.ListPrizes(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep: %w", err)
	}

	raffleIDs := make(map[string]bool, len(raffles))
	for _, r := range raffles {
		raffleIDs[r.ID] = true
	}
	prizeIDs := make(map[string]bool, len(prizes))
	for _, p := range prizes {
		prizeIDs[p.ID] = true
	}

	removed := 0
	for _, s := range sponsors {
		for _, id := range s.GamesCreation {
			if raffleIDs[id] {
				continue
			}
			if err := c.RemoveSponsorReference(ctx, s.ID, RefGames, id); err != nil {
				slog.Warn("Sweep failed to remove dangling game reference", "sponsor", s.ID, "id", id, "error", err)
				continue
			}
			removed++
		}
		for _, id := range s.PrizesCreation {
			if prizeIDs[id] {
				continue
			}
			if err := c.RemoveSponsorReference(ctx, s.ID, RefPrizes, id); err != nil {
				slog.Warn("Sweep failed to remove dangling prize reference", "sponsor", s.ID, "id", id, "error", err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// cleanupSponsorRefs strips id from the given reference set on every
// sponsor holding it. Updates fan out in parallel and are independent:
// one sponsor failing does not block or roll back the others, and the
// caller is not told about individual failures. A periodic consistency
// sweep is the recovery path for anything missed here.
func (c *Client) cleanupSponsorRefs(ctx context.Context, kind RefKind, id string) {
	iter := c.fs.Collection(colSponsors).
		Where(string(kind), "array-contains", id).
		Documents(ctx)
	defer iter.Stop()

	var g errgroup.Group
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			slog.Warn("Failed to query sponsors for reference cleanup", "kind", kind, "id", id, "error", err)
			return
		}
		sponsorID := doc.Ref.ID
		g.Go(func() error {
			err := retryWithBackoff(ctx, c.cascadeRetries, func(int) error {
				return c.RemoveSponsorReference(ctx, sponsorID, kind, id)
			})
			if err != nil {
				slog.Warn("Sponsor reference cleanup failed", "sponsor", sponsorID, "kind", kind, "id", id, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
