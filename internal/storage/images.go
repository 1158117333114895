package storage

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/iterator"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

type imageAssetDoc struct {
	Name        string `firestore:"name"`
	URL         string `firestore:"url"`
	StoragePath string `firestore:"storagePath,omitempty"`
	UploadedAt  any    `firestore:"uploadedAt"`
}

// ListImageAssets returns the shared image library.
func (c *Client) ListImageAssets(ctx context.Context) ([]models.ImageAsset, error) {
	iter := c.fs.Collection(colImages).Documents(ctx)
	defer iter.Stop()

	var assets []models.ImageAsset
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate image assets: %w", err)
		}
		var d imageAssetDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal image asset %s: %w", doc.Ref.ID, err)
		}
		assets = append(assets, models.ImageAsset{
			ID:          doc.Ref.ID,
			Name:        d.Name,
			URL:         d.URL,
			StoragePath: d.StoragePath,
			UploadedAt:  timeconv.ParseInstant(d.UploadedAt),
		})
	}
	return assets, nil
}

// CreateImageAsset records an uploaded image in the library.
func (c *Client) CreateImageAsset(ctx context.Context, a models.ImageAsset) (string, error) {
	doc := imageAssetDoc{
		Name:        a.Name,
		URL:         a.URL,
		StoragePath: a.StoragePath,
		UploadedAt:  time.Now().UTC(),
	}
	ref, _, err := c.fs.Collection(colImages).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create image asset: %w", err)
	}
	return ref.ID, nil
}

// DeleteImageAsset removes a library entry. The blob itself is left in
// place; existing raffles may still reference its URL.
func (c *Client) DeleteImageAsset(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(colImages).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete image asset %s: %w", id, err)
	}
	return nil
}
