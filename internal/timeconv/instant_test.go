package timeconv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInstant(t *testing.T) {
	ref := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  time.Time
	}{
		{
			name:  "time.Time passthrough",
			input: ref,
			want:  ref,
		},
		{
			name:  "pointer to time.Time",
			input: &ref,
			want:  ref,
		},
		{
			name:  "nil pointer coerces to epoch zero",
			input: (*time.Time)(nil),
			want:  EpochZero(),
		},
		{
			name:  "seconds and nanoseconds map",
			input: map[string]any{"seconds": int64(1710498600), "nanoseconds": int64(0)},
			want:  ref,
		},
		{
			name:  "underscore-prefixed seconds map",
			input: map[string]any{"_seconds": float64(1710498600)},
			want:  ref,
		},
		{
			name:  "RFC3339 string",
			input: "2024-03-15T10:30:00Z",
			want:  ref,
		},
		{
			name:  "date-only string",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "numeric string treated as epoch",
			input: "1710498600",
			want:  ref,
		},
		{
			name:  "epoch seconds number",
			input: int64(1710498600),
			want:  ref,
		},
		{
			name:  "epoch milliseconds number",
			input: float64(1710498600000),
			want:  ref,
		},
		{
			name:  "garbage string coerces to epoch zero",
			input: "not a date",
			want:  EpochZero(),
		},
		{
			name:  "nil coerces to epoch zero",
			input: nil,
			want:  EpochZero(),
		},
		{
			name:  "unsupported type coerces to epoch zero",
			input: []string{"2024"},
			want:  EpochZero(),
		},
		{
			name:  "negative number coerces to epoch zero",
			input: int64(-5),
			want:  EpochZero(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInstant(tt.input)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestIsEpochZero(t *testing.T) {
	assert.True(t, IsEpochZero(EpochZero()))
	assert.True(t, IsEpochZero(time.Time{}), "zero time.Time predates the epoch")
	assert.False(t, IsEpochZero(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsEpochZero(EpochZero().Add(time.Second)))
}
