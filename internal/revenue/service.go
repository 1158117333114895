package revenue

import (
	"context"
	"log/slog"

	"github.com/rafflehouse/admin-backend/internal/models"
)

// TicketLister abstracts the store read the revenue panel depends on.
type TicketLister interface {
	ListTicketSales(ctx context.Context) ([]models.TicketSale, error)
}

// Service fetches ticket sales and aggregates them into a chart series.
type Service struct {
	store TicketLister
}

func NewService(store TicketLister) *Service {
	return &Service{store: store}
}

// Series returns the aggregated revenue series for the granularity.
// A failed fetch degrades to an empty series rather than an error: the
// panel renders an empty chart, never an error state.
func (s *Service) Series(ctx context.Context, g Granularity) Series {
	sales, err := s.store.ListTicketSales(ctx)
	if err != nil {
		slog.Warn("Failed to fetch ticket sales, returning empty series", "granularity", g, "error", err)
		return EmptySeries()
	}
	return Aggregate(sales, g)
}
