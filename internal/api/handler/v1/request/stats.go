package request

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/domain"
)

var (
	errInvalidStartDate    = errors.New("startDate must be formatted as YYYY-MM-DD")
	errInvalidEndDate      = errors.New("endDate must be formatted as YYYY-MM-DD")
	errInvalidGameID       = errors.New("gameId must be a positive integer")
	errInvalidPlayerID     = errors.New("playerId must be a positive integer")
	errExclusiveGamePlayer = errors.New("gameId and playerId cannot be combined without a date range or group tag")
	errStartDateAfterEnd   = errors.New("startDate must not be after endDate")
)

// StatsQuery is the typed, validated filter set handed to the aggregation
// engine. The engine itself composes whichever filters are present; the
// game/player exclusivity rule in the plain case is enforced here, at the
// boundary.
type StatsQuery struct {
	StartDate string
	EndDate   string
	GameID    string
	PlayerID  string
	GroupTag  string

	AllowGroupTag bool
}

func BindStatsQuery(ctx *gin.Context, allowGroupTag bool) StatsQuery {
	query := StatsQuery{
		StartDate:     ctx.Query("startDate"),
		EndDate:       ctx.Query("endDate"),
		GameID:        ctx.Query("gameId"),
		PlayerID:      ctx.Query("playerId"),
		AllowGroupTag: allowGroupTag,
	}
	if allowGroupTag {
		query.GroupTag = ctx.Query("groupTag")
	}

	return query
}

// Filter validates the query and expands it into a domain filter. The date
// bounds are inclusive local-day boundaries: startDate at 00:00:00.000,
// endDate at 23:59:59.999.
func (q *StatsQuery) Filter() (domain.StatsFilter, error) {
	var filter domain.StatsFilter

	if q.StartDate != "" {
		start, err := time.ParseInLocation(dateLayout, q.StartDate, time.Local)
		if err != nil {
			return domain.StatsFilter{}, errInvalidStartDate
		}

		filter.StartDate = &start
	}

	if q.EndDate != "" {
		end, err := time.ParseInLocation(dateLayout, q.EndDate, time.Local)
		if err != nil {
			return domain.StatsFilter{}, errInvalidEndDate
		}

		end = end.Add(24*time.Hour - time.Millisecond)
		filter.EndDate = &end
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return domain.StatsFilter{}, errStartDateAfterEnd
	}

	if q.GameID != "" {
		id, err := strconv.ParseUint(q.GameID, 10, 64)
		if err != nil || id == 0 {
			return domain.StatsFilter{}, errInvalidGameID
		}

		filter.GameID = uint(id)
	}

	if q.PlayerID != "" {
		id, err := strconv.ParseUint(q.PlayerID, 10, 64)
		if err != nil || id == 0 {
			return domain.StatsFilter{}, errInvalidPlayerID
		}

		filter.PlayerID = uint(id)
	}

	filter.GroupTag = q.GroupTag

	// Game and player filters are alternatives in the plain case; a date
	// range or group tag allows them to be layered.
	if filter.GameID != 0 && filter.PlayerID != 0 &&
		filter.StartDate == nil && filter.EndDate == nil && filter.GroupTag == "" {
		return domain.StatsFilter{}, errExclusiveGamePlayer
	}

	return filter, nil
}
