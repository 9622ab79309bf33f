//go:build unit

package repository

import (
	"strings"
	"testing"
	"time"

	"gearshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingListSQL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		scope        string
		filter       queries.BookingFilter
		wantContains []string
		wantArgs     int
	}{
		{
			name:  "all for booker",
			scope: "b.booker_id",
			wantContains: []string{
				`"b"."booker_id" = $1`,
				`ORDER BY "b"."start_at" DESC`,
			},
			wantArgs: 1,
		},
		{
			name:   "all for owner",
			scope:  "i.owner_id",
			wantContains: []string{
				`"i"."owner_id" = $1`,
			},
			wantArgs: 1,
		},
		{
			name:   "waiting statuses",
			scope:  "b.booker_id",
			filter: queries.FilterForState(queries.StateWaiting, now),
			wantContains: []string{
				`"b"."status" IN ($2)`,
			},
			wantArgs: 2,
		},
		{
			name:   "rejected folds canceled",
			scope:  "b.booker_id",
			filter: queries.FilterForState(queries.StateRejected, now),
			wantContains: []string{
				`"b"."status" IN ($2, $3)`,
			},
			wantArgs: 3,
		},
		{
			name:   "future compares start",
			scope:  "b.booker_id",
			filter: queries.FilterForState(queries.StateFuture, now),
			wantContains: []string{
				`"b"."start_at" > $2`,
			},
			wantArgs: 2,
		},
		{
			name:   "past compares end",
			scope:  "b.booker_id",
			filter: queries.FilterForState(queries.StatePast, now),
			wantContains: []string{
				`"b"."end_at" < $2`,
			},
			wantArgs: 2,
		},
		{
			name:   "current brackets now",
			scope:  "b.booker_id",
			filter: queries.FilterForState(queries.StateCurrent, now),
			wantContains: []string{
				`"b"."start_at" <= $2`,
				`"b"."end_at" >= $3`,
			},
			wantArgs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildBookingListSQL(goqu.I(tt.scope), 42, tt.filter)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Truef(t, strings.Contains(sql, want), "sql %q must contain %q", sql, want)
			}
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, int64(42), args[0])

			// Every listing joins item and booker for the view columns.
			assert.Contains(t, sql, `"bookings" AS "b"`)
			assert.Contains(t, sql, `"items" AS "i"`)
			assert.Contains(t, sql, `"users" AS "u"`)
		})
	}
}
