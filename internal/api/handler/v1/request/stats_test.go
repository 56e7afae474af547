package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsQueryFilter_DatesExpandToDayBounds(t *testing.T) {
	q := StatsQuery{StartDate: "2026-03-01", EndDate: "2026-03-31"}

	filter, err := q.Filter()
	require.NoError(t, err)

	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), *filter.StartDate)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999000000, time.Local), *filter.EndDate)
}

func TestStatsQueryFilter_RejectsMalformedInput(t *testing.T) {
	_, err := (&StatsQuery{StartDate: "03/01/2026"}).Filter()
	assert.ErrorIs(t, err, errInvalidStartDate)

	_, err = (&StatsQuery{EndDate: "not-a-date"}).Filter()
	assert.ErrorIs(t, err, errInvalidEndDate)

	_, err = (&StatsQuery{GameID: "abc"}).Filter()
	assert.ErrorIs(t, err, errInvalidGameID)

	_, err = (&StatsQuery{GameID: "0"}).Filter()
	assert.ErrorIs(t, err, errInvalidGameID)

	_, err = (&StatsQuery{PlayerID: "-3"}).Filter()
	assert.ErrorIs(t, err, errInvalidPlayerID)

	_, err = (&StatsQuery{StartDate: "2026-04-01", EndDate: "2026-03-01"}).Filter()
	assert.ErrorIs(t, err, errStartDateAfterEnd)
}

func TestStatsQueryFilter_GamePlayerExclusivity(t *testing.T) {
	// Bare game+player is rejected.
	_, err := (&StatsQuery{GameID: "1", PlayerID: "2"}).Filter()
	assert.ErrorIs(t, err, errExclusiveGamePlayer)

	// A date bound lets them combine.
	filter, err := (&StatsQuery{GameID: "1", PlayerID: "2", StartDate: "2026-01-01"}).Filter()
	require.NoError(t, err)
	assert.Equal(t, uint(1), filter.GameID)
	assert.Equal(t, uint(2), filter.PlayerID)

	// So does a group tag.
	_, err = (&StatsQuery{GameID: "1", PlayerID: "2", GroupTag: "family"}).Filter()
	assert.NoError(t, err)

	// Either alone is always fine.
	_, err = (&StatsQuery{GameID: "1"}).Filter()
	assert.NoError(t, err)
	_, err = (&StatsQuery{PlayerID: "2"}).Filter()
	assert.NoError(t, err)
}

func TestStatsQueryFilter_Empty(t *testing.T) {
	filter, err := (&StatsQuery{}).Filter()
	require.NoError(t, err)

	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
	assert.Zero(t, filter.GameID)
	assert.Zero(t, filter.PlayerID)
	assert.Empty(t, filter.GroupTag)
}
