// Package dashboard selects the bounded set of raffles the console's
// landing page features and joins in sponsor and prize display fields.
package dashboard

import (
	"sort"
	"time"

	"github.com/rafflehouse/admin-backend/internal/lifecycle"
	"github.com/rafflehouse/admin-backend/internal/models"
)

// featuredLimit bounds the landing-page selection.
const featuredLimit = 5

const missingDisplay = "N/A"

// FeaturedRaffle is a raffle enriched with sponsor and prize display
// fields for the landing page.
type FeaturedRaffle struct {
	models.Raffle
	Partner    string  `json:"partner"`
	PrizeName  string  `json:"prizeName"`
	PrizePrice float64 `json:"price"`
}

// Select picks at most 5 featured raffles: the 2 Live raffles ending
// soonest, the 2 Live raffles started most recently, the Pending raffle
// starting soonest, and the most recently Ended raffle, deduplicated in
// that order and backfilled from the pool in its original order.
//
// Partitioning goes by timestamps only; the status override field that
// per-row rendering honors is not consulted here. The two paths have
// disagreed since the console shipped and the discrepancy is kept
// until product decides otherwise.
func Select(raffles []models.Raffle, sponsors []models.Sponsor, prizes []models.Prize, now time.Time) []FeaturedRaffle {
	var live, pending, ended []models.Raffle
	for _, r := range raffles {
		switch lifecycle.ClassifyByTime(r.CreatedAt, r.ExpiryDate, now) {
		case lifecycle.StatusLive:
			live = append(live, r)
		case lifecycle.StatusPending:
			pending = append(pending, r)
		case lifecycle.StatusEnded:
			ended = append(ended, r)
		}
	}

	var picks []models.Raffle
	picks = append(picks, topBy(live, 2, func(a, b models.Raffle) bool {
		return a.ExpiryDate.Before(b.ExpiryDate) // soonest ending
	})...)
	picks = append(picks, topBy(live, 2, func(a, b models.Raffle) bool {
		return a.CreatedAt.After(b.CreatedAt) // recently started
	})...)
	picks = append(picks, topBy(pending, 1, func(a, b models.Raffle) bool {
		return a.CreatedAt.Before(b.CreatedAt) // starting soonest
	})...)
	picks = append(picks, topBy(ended, 1, func(a, b models.Raffle) bool {
		return a.ExpiryDate.After(b.ExpiryDate) // most recently ended
	})...)

	taken := make(map[string]bool, featuredLimit)
	selected := make([]models.Raffle, 0, featuredLimit)
	for _, r := range picks {
		if taken[r.ID] {
			continue
		}
		taken[r.ID] = true
		selected = append(selected, r)
	}

	// Backfill with untaken raffles in pool order until 5 or exhausted.
	for _, r := range raffles {
		if len(selected) >= featuredLimit {
			break
		}
		if taken[r.ID] {
			continue
		}
		taken[r.ID] = true
		selected = append(selected, r)
	}
	if len(selected) > featuredLimit {
		selected = selected[:featuredLimit]
	}

	return enrich(selected, sponsors, prizes)
}

// topBy returns up to n raffles ordered by less, without mutating the
// input. The stable sort keeps the result deterministic when raffles
// share a timestamp.
func topBy(pool []models.Raffle, n int, less func(a, b models.Raffle) bool) []models.Raffle {
	sorted := make([]models.Raffle, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// enrich resolves sponsor and prize references through build-once
// lookup maps. Dangling references fall back to "N/A" and a zero price
// instead of failing the page.
func enrich(selected []models.Raffle, sponsors []models.Sponsor, prizes []models.Prize) []FeaturedRaffle {
	sponsorNames := make(map[string]string, len(sponsors))
	for _, s := range sponsors {
		sponsorNames[s.ID] = s.SponsorName
	}
	prizesByID := make(map[string]models.Prize, len(prizes))
	for _, p := range prizes {
		prizesByID[p.ID] = p
	}

	out := make([]FeaturedRaffle, 0, len(selected))
	for _, r := range selected {
		f := FeaturedRaffle{Raffle: r, Partner: missingDisplay, PrizeName: missingDisplay}
		if name, ok := sponsorNames[r.SponsorID]; ok {
			f.Partner = name
		}
		if prize, ok := prizesByID[r.PrizeID]; ok {
			f.PrizeName = prize.PrizeName
			f.PrizePrice = prize.RetailValueUSD
		}
		out = append(out, f)
	}
	return out
}
