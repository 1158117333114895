package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

// Documents written by different console generations carry different
// timestamp shapes; decoding must normalize them all.
func TestRaffleDocToModel(t *testing.T) {
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt any
	}{
		{"sdk timestamp", want},
		{"iso string", "2024-03-15T10:30:00Z"},
		{"epoch seconds", int64(1710498600)},
		{"epoch millis", float64(1710498600000)},
		{"seconds map", map[string]any{"seconds": int64(1710498600)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := raffleDoc{Title: "Raffle", CreatedAt: tt.createdAt, ExpiryDate: want}
			r := d.toModel("raffle-1")
			assert.Equal(t, "raffle-1", r.ID)
			assert.True(t, r.CreatedAt.Equal(want), "got %v", r.CreatedAt)
		})
	}

	t.Run("missing timestamps coerce to epoch zero", func(t *testing.T) {
		r := raffleDoc{Title: "No dates"}.toModel("raffle-2")
		assert.True(t, timeconv.IsEpochZero(r.CreatedAt))
		assert.True(t, timeconv.IsEpochZero(r.ExpiryDate))
	})
}

func TestRaffleDocRoundTrip(t *testing.T) {
	d := raffleDoc{
		Title:       "Round trip",
		CreatedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		SponsorID:   "s1",
		TicketPrice: 3,
	}
	r := d.toModel("id")
	back := raffleToDoc(r)
	assert.Equal(t, d.Title, back.Title)
	assert.Equal(t, d.SponsorID, back.SponsorID)
	assert.Equal(t, d.TicketPrice, back.TicketPrice)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "banner.png", sanitizeName("banner.png"))
	assert.Equal(t, "summer_sale_2.jpg", sanitizeName("summer sale 2.jpg"))
	assert.Equal(t, "a_b_c", sanitizeName("a/b?c"))
}

func TestRetryWithBackoff(t *testing.T) {
	calls := 0
	err := retryWithBackoff(context.Background(), 3, func(attempt int) error {
		calls++
		if attempt < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoffExhausted(t *testing.T) {
	sentinel := errors.New("permanent")
	err := retryWithBackoff(context.Background(), 1, func(int) error {
		return sentinel
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestRetryWithBackoffRespectsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retryWithBackoff(ctx, 5, func(int) error {
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
