package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafflehouse/admin-backend/internal/models"
)

type mockStore struct {
	raffles  []models.Raffle
	sponsors []models.Sponsor
	prizes   []models.Prize

	rafflesErr  error
	sponsorsErr error
	prizesErr   error
}

func (m *mockStore) ListRaffles(context.Context) ([]models.Raffle, error) {
	return m.raffles, m.rafflesErr
}

func (m *mockStore) ListSponsors(context.Context) ([]models.Sponsor, error) {
	return m.sponsors, m.sponsorsErr
}

func (m *mockStore) ListPrizes(context.Context) ([]models.Prize, error) {
	return m.prizes, m.prizesErr
}

func TestServiceFeatured(t *testing.T) {
	r := liveRaffle("r1", time.Hour, time.Hour)
	r.SponsorID = "s1"
	store := &mockStore{
		raffles:  []models.Raffle{r},
		sponsors: []models.Sponsor{{ID: "s1", SponsorName: "Acme Corp"}},
	}

	got, err := NewService(store).Featured(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Partner)
}

func TestServiceFeaturedPropagatesFetchErrors(t *testing.T) {
	for name, store := range map[string]*mockStore{
		"raffles":  {rafflesErr: errors.New("boom")},
		"sponsors": {sponsorsErr: errors.New("boom")},
		"prizes":   {prizesErr: errors.New("boom")},
	} {
		_, err := NewService(store).Featured(context.Background(), now)
		assert.Error(t, err, "failed %s fetch should fail the page", name)
	}
}
