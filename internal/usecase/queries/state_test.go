//go:build unit

package queries

import (
	"testing"
	"time"

	"gearshare/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    State
		wantErr bool
	}{
		{in: "", want: StateAll},
		{in: "ALL", want: StateAll},
		{in: "all", want: StateAll},
		{in: "Current", want: StateCurrent},
		{in: "FUTURE", want: StateFuture},
		{in: "past", want: StatePast},
		{in: "waiting", want: StateWaiting},
		{in: "REJECTED", want: StateRejected},
		{in: "UNKNOWN", wantErr: true},
		{in: "CANCELED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("in="+tt.in, func(t *testing.T) {
			got, err := ParseState(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// matches reports whether a booking with the given window and status would
// pass the filter, mirroring the SQL the store generates.
func matches(f BookingFilter, start, end time.Time, status booking.Status) bool {
	if len(f.Statuses) > 0 {
		ok := false
		for _, s := range f.Statuses {
			if s == status {
				ok = true
			}
		}
		if !ok {
			return false
		}
	}
	if f.StartAfter != nil && !start.After(*f.StartAfter) {
		return false
	}
	if f.EndBefore != nil && !end.Before(*f.EndBefore) {
		return false
	}
	if f.At != nil && (start.After(*f.At) || end.Before(*f.At)) {
		return false
	}
	return true
}

func TestFilterForStateTimeBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	past := [2]time.Time{now.Add(-10 * time.Hour), now.Add(-time.Hour)}
	current := [2]time.Time{now.Add(-time.Hour), now.Add(time.Hour)}
	future := [2]time.Time{now.Add(time.Hour), now.Add(10 * time.Hour)}

	windows := map[string][2]time.Time{"past": past, "current": current, "future": future}

	// Each window lands in exactly one time bucket.
	for name, w := range windows {
		hits := 0
		for _, st := range []State{StateCurrent, StateFuture, StatePast} {
			if matches(FilterForState(st, now), w[0], w[1], booking.StatusApproved) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "window %s must match exactly one bucket", name)
	}

	assert.True(t, matches(FilterForState(StatePast, now), past[0], past[1], booking.StatusApproved))
	assert.True(t, matches(FilterForState(StateCurrent, now), current[0], current[1], booking.StatusApproved))
	assert.True(t, matches(FilterForState(StateFuture, now), future[0], future[1], booking.StatusApproved))
}

func TestFilterForStateStatusBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start, end := now.Add(time.Hour), now.Add(2*time.Hour)

	waiting := FilterForState(StateWaiting, now)
	assert.True(t, matches(waiting, start, end, booking.StatusWaiting))
	assert.False(t, matches(waiting, start, end, booking.StatusApproved))

	// REJECTED folds in CANCELED.
	rejected := FilterForState(StateRejected, now)
	assert.True(t, matches(rejected, start, end, booking.StatusRejected))
	assert.True(t, matches(rejected, start, end, booking.StatusCanceled))
	assert.False(t, matches(rejected, start, end, booking.StatusWaiting))

	all := FilterForState(StateAll, now)
	for _, s := range []booking.Status{booking.StatusWaiting, booking.StatusApproved, booking.StatusRejected, booking.StatusCanceled} {
		assert.True(t, matches(all, start, end, s))
	}
}
