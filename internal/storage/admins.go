package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

type adminUserDoc struct {
	Email       string `firestore:"email"`
	DisplayName string `firestore:"displayName,omitempty"`
	Role        string `firestore:"role,omitempty"`
	CreatedAt   any    `firestore:"createdAt"`
}

// ListAdminUsers returns every console operator record.
func (c *Client) ListAdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	iter := c.fs.Collection(colAdminUsers).Documents(ctx)
	defer iter.Stop()

	var admins []models.AdminUser
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate admin users: %w", err)
		}
		var d adminUserDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal admin user %s: %w", doc.Ref.ID, err)
		}
		admins = append(admins, models.AdminUser{
			ID:          doc.Ref.ID,
			Email:       d.Email,
			DisplayName: d.DisplayName,
			Role:        d.Role,
			CreatedAt:   timeconv.ParseInstant(d.CreatedAt),
		})
	}
	return admins, nil
}

// GetAdminUser retrieves an operator by id, (nil, nil) when absent.
func (c *Client) GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error) {
	doc, err := c.fs.Collection(colAdminUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin user %s: %w", id, err)
	}
	var d adminUserDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin user %s: %w", id, err)
	}
	return &models.AdminUser{
		ID:          doc.Ref.ID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Role:        d.Role,
		CreatedAt:   timeconv.ParseInstant(d.CreatedAt),
	}, nil
}

// CreateAdminUser persists a new operator and returns its assigned id.
func (c *Client) CreateAdminUser(ctx context.Context, a models.AdminUser) (string, error) {
	doc := adminUserDoc{
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Role:        a.Role,
		CreatedAt:   time.Now().UTC(),
	}
	ref, _, err := c.fs.Collection(colAdminUsers).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create admin user: %w", err)
	}
	return ref.ID, nil
}

// UpdateAdminUser merges the given fields into the operator document.
func (c *Client) UpdateAdminUser(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.fs.Collection(colAdminUsers).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update admin user %s: %w", id, err)
	}
	return nil
}

// DeleteAdminUser removes an operator record.
func (c *Client) DeleteAdminUser(ctx context.Context, id string) error {
	if _, err := c.fs.Collection(colAdminUsers).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete admin user %s: %w", id, err)
	}
	return nil
}
