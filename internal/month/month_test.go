package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
		start   time.Time
		end     time.Time
	}{
		{
			name:  "january",
			token: "2025-01",
			start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december rolls into next year",
			token: "2025-12",
			start: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap february",
			token: "2024-02",
			start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "month 13", token: "2025-13", wantErr: true},
		{name: "month 00", token: "2025-00", wantErr: true},
		{name: "unpadded month", token: "2025-1", wantErr: true},
		{name: "two digit year", token: "25-01", wantErr: true},
		{name: "full date", token: "2025-01-01", wantErr: true},
		{name: "garbage", token: "abcd-ef", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, r.Start)
			assert.Equal(t, tt.end, r.End)
		})
	}
}

// Consecutive month ranges must tile with no gap and no overlap.
func TestRangesTile(t *testing.T) {
	token := "2024-11"
	for i := 0; i < 15; i++ {
		r, err := Parse(token)
		require.NoError(t, err)

		next, err := Next(token)
		require.NoError(t, err)
		nr, err := Parse(next)
		require.NoError(t, err)

		assert.Equal(t, r.End, nr.Start, "end of %s should equal start of %s", token, next)
		token = next
	}
}

func TestCurrent(t *testing.T) {
	clock := FixedClock{T: time.Date(2025, 11, 14, 9, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2025-11", Current(clock))
	assert.True(t, IsCurrent(clock, "2025-11"))
	assert.False(t, IsCurrent(clock, "2025-10"))
}

func TestDays(t *testing.T) {
	for token, want := range map[string]int{
		"2025-01": 31,
		"2025-02": 28,
		"2024-02": 29,
		"2025-04": 30,
	} {
		got, err := Days(token)
		require.NoError(t, err)
		assert.Equal(t, want, got, token)
	}
}

func TestDaysForAverage(t *testing.T) {
	clock := FixedClock{T: time.Date(2025, 11, 14, 9, 30, 0, 0, time.UTC)}

	t.Run("current month uses elapsed days", func(t *testing.T) {
		got, err := DaysForAverage(clock, "2025-11")
		require.NoError(t, err)
		assert.Equal(t, 14, got)
	})

	t.Run("past month uses full length", func(t *testing.T) {
		got, err := DaysForAverage(clock, "2025-10")
		require.NoError(t, err)
		assert.Equal(t, 31, got)
	})

	t.Run("first of month never divides by zero", func(t *testing.T) {
		first := FixedClock{T: time.Date(2025, 11, 1, 0, 0, 1, 0, time.UTC)}
		got, err := DaysForAverage(first, "2025-11")
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := DaysForAverage(clock, "2025-13")
		require.Error(t, err)
	})
}
