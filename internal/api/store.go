package api

import (
	"context"
	"io"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/storage"
)

// RaffleStore covers the raffle screens.
type RaffleStore interface {
	ListRaffles(ctx context.Context) ([]models.Raffle, error)
	GetRaffle(ctx context.Context, id string) (*models.Raffle, error)
	CreateRaffle(ctx context.Context, r models.Raffle) (string, error)
	UpdateRaffle(ctx context.Context, id string, fields map[string]any) error
	DeleteRaffle(ctx context.Context, id string) error
}

// SponsorStore covers the sponsor screens and the reference sets other
// entities maintain on sponsors.
type SponsorStore interface {
	ListSponsors(ctx context.Context) ([]models.Sponsor, error)
	ListActiveSponsors(ctx context.Context) ([]models.Sponsor, error)
	GetSponsor(ctx context.Context, id string) (*models.Sponsor, error)
	CreateSponsor(ctx context.Context, s models.Sponsor) (string, error)
	UpdateSponsor(ctx context.Context, id string, fields map[string]any) error
	DeleteSponsor(ctx context.Context, id string) error
	AddSponsorReference(ctx context.Context, sponsorID string, kind storage.RefKind, id string) error
}

// PrizeStore covers the prize screens.
type PrizeStore interface {
	ListPrizes(ctx context.Context) ([]models.Prize, error)
	GetPrize(ctx context.Context, id string) (*models.Prize, error)
	CreatePrize(ctx context.Context, p models.Prize) (string, error)
	UpdatePrize(ctx context.Context, id string, fields map[string]any) error
	DeletePrize(ctx context.Context, id string) error
}

// AdminStore covers the operator screens.
type AdminStore interface {
	ListAdminUsers(ctx context.Context) ([]models.AdminUser, error)
	GetAdminUser(ctx context.Context, id string) (*models.AdminUser, error)
	CreateAdminUser(ctx context.Context, a models.AdminUser) (string, error)
	UpdateAdminUser(ctx context.Context, id string, fields map[string]any) error
	DeleteAdminUser(ctx context.Context, id string) error
}

// ImageStore covers the image library records.
type ImageStore interface {
	ListImageAssets(ctx context.Context) ([]models.ImageAsset, error)
	CreateImageAsset(ctx context.Context, a models.ImageAsset) (string, error)
	DeleteImageAsset(ctx context.Context, id string) error
}

// MaintenanceStore covers operator-triggered reconciliation.
type MaintenanceStore interface {
	SweepSponsorRefs(ctx context.Context) (int, error)
}

// TicketStore covers the read-only ticket sale listing.
type TicketStore interface {
	ListTicketSales(ctx context.Context) ([]models.TicketSale, error)
}

// Store is everything the handlers need from the document store.
// *storage.Client satisfies it.
type Store interface {
	RaffleStore
	SponsorStore
	PrizeStore
	AdminStore
	ImageStore
	MaintenanceStore
	TicketStore
}

// Uploader is the blob-store slice the image endpoints need.
type Uploader interface {
	UploadImage(ctx context.Context, name, contentType string, r io.Reader) (objectPath, downloadURL string, err error)
}
