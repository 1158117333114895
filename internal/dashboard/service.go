package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rafflehouse/admin-backend/internal/models"
)

// Store abstracts the three independent reads the landing page fans
// out before ranking.
type Store interface {
	ListRaffles(ctx context.Context) ([]models.Raffle, error)
	ListSponsors(ctx context.Context) ([]models.Sponsor, error)
	ListPrizes(ctx context.Context) ([]models.Prize, error)
}

// Service fetches dashboard inputs concurrently and ranks them.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Featured returns the ranked, enriched landing-page raffles. The
// three collection reads run in parallel; any failure fails the page,
// since a partially joined dashboard would be misleading.
func (s *Service) Featured(ctx context.Context, now time.Time) ([]FeaturedRaffle, error) {
	var (
		raffles  []models.Raffle
		sponsors []models.Sponsor
		prizes   []models.Prize
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raffles, err = s.store.ListRaffles(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		sponsors, err = s.store.ListSponsors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		prizes, err = s.store.ListPrizes(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Select(raffles, sponsors, prizes, now), nil
}
