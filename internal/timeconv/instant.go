// Package timeconv coerces the loosely typed timestamp values found in
// console documents into time.Time. Historical writers stored raffle
// dates as SDK timestamps, ISO strings, or raw epoch numbers depending
// on which client wrote them, so every read path funnels through
// ParseInstant instead of trusting the decoded type.
package timeconv

import (
	"strconv"
	"strings"
	"time"
)

// epochZero is the sentinel for a missing or unparseable instant.
var epochZero = time.Unix(0, 0).UTC()

// EpochZero returns the instant that missing timestamps coerce to.
func EpochZero() time.Time {
	return epochZero
}

// IsEpochZero reports whether t is the missing-timestamp sentinel (or
// earlier, which covers the zero time.Time as well).
func IsEpochZero(t time.Time) bool {
	return !t.After(epochZero)
}

// ParseInstant converts a timestamp-like value into a UTC time.Time.
// Accepted shapes: time.Time, a {seconds, nanoseconds} map, an ISO-ish
// string, or an epoch number (milliseconds when >= 1e12, seconds
// otherwise — JS clients wrote millis, exports wrote seconds).
// Anything else coerces to epoch zero rather than erroring; callers
// that care treat epoch zero as "missing".
func ParseInstant(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val.UTC()
	case *time.Time:
		if val == nil {
			return epochZero
		}
		return val.UTC()
	case map[string]any:
		return fromSecondsMap(val)
	case map[string]int64:
		sec := val["seconds"]
		return time.Unix(sec, val["nanoseconds"]).UTC()
	case string:
		return fromString(val)
	case int:
		return fromEpochNumber(int64(val))
	case int32:
		return fromEpochNumber(int64(val))
	case int64:
		return fromEpochNumber(val)
	case float64:
		return fromEpochNumber(int64(val))
	default:
		return epochZero
	}
}

func fromSecondsMap(m map[string]any) time.Time {
	sec, ok := asInt64(m["seconds"])
	if !ok {
		// Some exports spell it out.
		if sec, ok = asInt64(m["_seconds"]); !ok {
			return epochZero
		}
	}
	nanos, _ := asInt64(m["nanoseconds"])
	if nanos == 0 {
		nanos, _ = asInt64(m["_nanoseconds"])
	}
	return time.Unix(sec, nanos).UTC()
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func fromString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return epochZero
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromEpochNumber(n)
	}
	return epochZero
}

// Values at or above 1e12 can only be epoch milliseconds for any date
// a raffle platform plausibly handles (1e12 seconds is the year 33658).
const millisThreshold = 1_000_000_000_000

func fromEpochNumber(n int64) time.Time {
	if n <= 0 {
		return epochZero
	}
	if n >= millisThreshold {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
