// Package lifecycle classifies raffles into their display status from
// the pair of timestamps every raffle carries. The classification is a
// pure function of the raffle and an explicit "now"; callers re-run it
// on every refresh since the answer changes as the clock advances.
package lifecycle

import (
	"strings"
	"time"

	"github.com/rafflehouse/admin-backend/internal/models"
)

// Status is the computed lifecycle state of a raffle.
type Status string

const (
	StatusPending Status = "Pending"
	StatusLive    Status = "Live"
	StatusEnded   Status = "Ended"
)

// Override values that force a raffle to Ended regardless of its
// timestamps, compared case-insensitively.
var endedOverrides = map[string]struct{}{
	"refunded":  {},
	"end early": {},
	"inactive":  {},
}

// Classify computes the status of a raffle at the given instant.
// Priority order, first match wins: an ended override on the status
// field, then expiry in the past, then a start in the future, then the
// live window. Missing timestamps were coerced to epoch zero upstream,
// so a raffle with no dates at all reads as Ended.
func Classify(r models.Raffle, now time.Time) Status {
	if IsEndedOverride(r.Status) {
		return StatusEnded
	}
	return ClassifyByTime(r.CreatedAt, r.ExpiryDate, now)
}

// ClassifyByTime classifies from the timestamps alone, ignoring the
// status override field. The dashboard's featured-raffle partitioning
// uses this path; per-row table rendering uses Classify.
func ClassifyByTime(createdAt, expiryDate, now time.Time) Status {
	switch {
	case expiryDate.Before(now):
		return StatusEnded
	case createdAt.After(now):
		return StatusPending
	case !createdAt.After(now) && now.Before(expiryDate):
		return StatusLive
	default:
		return StatusPending
	}
}

// IsEndedOverride reports whether a status override string forces the
// Ended state.
func IsEndedOverride(status string) bool {
	_, ok := endedOverrides[strings.ToLower(strings.TrimSpace(status))]
	return ok
}
