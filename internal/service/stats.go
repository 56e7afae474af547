package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/gamenighthq/gamenight-api/internal/domain"
)

const (
	leaderboardSize = 10
	recentGamesSize = 10
)

// StatsService derives leaderboards, win rates and distributions from raw
// result rows. The fetch is scoped by owner, group tag and date range; the
// remaining filters are composed in-process so the aggregation itself stays
// a pure function of loaded data.
type StatsService struct {
	nightRepo  GameNightRepository
	playerRepo PlayerCountRepository
}

type PlayerCountRepository interface {
	CountByOwner(ctx context.Context, ownerUserID uint) (int, error)
}

func NewStatsService(nightRepo GameNightRepository, playerRepo PlayerCountRepository) *StatsService {
	return &StatsService{
		nightRepo:  nightRepo,
		playerRepo: playerRepo,
	}
}

func (s *StatsService) ComputeStats(ctx context.Context, ownerUserID uint, filter domain.StatsFilter) (domain.StatsReport, error) {
	nights, err := s.nightRepo.FindForStats(ctx, ownerUserID, filter.GroupTag, filter.StartDate, filter.EndDate)
	if err != nil {
		return domain.StatsReport{}, fmt.Errorf("s.nightRepo.FindForStats -> %w", err)
	}

	// The roster count is never narrowed by the filter set.
	totalPlayers, err := s.playerRepo.CountByOwner(ctx, ownerUserID)
	if err != nil {
		return domain.StatsReport{}, fmt.Errorf("s.playerRepo.CountByOwner -> %w", err)
	}

	return aggregate(totalPlayers, nights, filter), nil
}

func aggregate(totalPlayers int, nights []domain.GameNight, filter domain.StatsFilter) domain.StatsReport {
	sessions := scopedSessions(nights, filter)

	report := domain.StatsReport{
		Overview: domain.StatsOverview{
			TotalPlayers:     totalPlayers,
			TotalGameNights:  len(nights),
			TotalGamesPlayed: len(sessions),
		},
		Leaderboard:      []domain.LeaderboardEntry{},
		RecentGames:      []domain.RecentGame{},
		GameDistribution: []domain.GameCount{},
	}

	report.Overview.TotalWins = countWins(sessions, filter.PlayerID)
	report.Leaderboard = buildLeaderboard(sessions, filter.PlayerID)
	report.RecentGames = buildRecentGames(sessions)
	report.GameDistribution = buildDistribution(sessions)

	return report
}

// scopedSessions flattens the date-filtered nights into the session scope:
// an exact game match when GameID is set, and only sessions the filtered
// player took part in when PlayerID is set.
func scopedSessions(nights []domain.GameNight, filter domain.StatsFilter) []domain.GameSession {
	var sessions []domain.GameSession

	for _, night := range nights {
		for _, session := range night.Sessions {
			if filter.GameID != 0 && session.GameID != filter.GameID {
				continue
			}
			if filter.PlayerID != 0 && !sessionHasPlayer(session, filter.PlayerID) {
				continue
			}

			sessions = append(sessions, session)
		}
	}

	return sessions
}

func sessionHasPlayer(session domain.GameSession, playerID uint) bool {
	for _, result := range session.Results {
		if result.PlayerID == playerID {
			return true
		}
	}

	return false
}

func countWins(sessions []domain.GameSession, playerID uint) int {
	wins := 0
	for _, session := range sessions {
		for _, result := range session.Results {
			if !result.IsWinner {
				continue
			}
			if playerID != 0 && result.PlayerID != playerID {
				continue
			}

			wins++
		}
	}

	return wins
}

func buildLeaderboard(sessions []domain.GameSession, playerID uint) []domain.LeaderboardEntry {
	type tally struct {
		name  string
		games int
		wins  int
	}
	tallies := make(map[uint]*tally)

	for _, session := range sessions {
		for _, result := range session.Results {
			if playerID != 0 && result.PlayerID != playerID {
				continue
			}

			t, ok := tallies[result.PlayerID]
			if !ok {
				t = &tally{name: result.PlayerName}
				tallies[result.PlayerID] = t
			}

			t.games++
			if result.IsWinner {
				t.wins++
			}
		}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(tallies))
	for id, t := range tallies {
		if t.games == 0 {
			continue
		}

		entries = append(entries, domain.LeaderboardEntry{
			PlayerID:   id,
			Name:       t.name,
			TotalGames: t.games,
			Wins:       t.wins,
			WinRate:    winRate(t.wins, t.games),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].WinRate != entries[j].WinRate {
			return entries[i].WinRate > entries[j].WinRate
		}

		return entries[i].Name < entries[j].Name
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}

	return entries
}

// winRate is an integer percentage, round half up. Zero games is zero, never
// a division.
func winRate(wins, games int) int {
	if games == 0 {
		return 0
	}

	return int(math.Round(float64(wins) / float64(games) * 100))
}

func buildRecentGames(sessions []domain.GameSession) []domain.RecentGame {
	sorted := make([]domain.GameSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}

		return sorted[i].ID > sorted[j].ID
	})

	if len(sorted) > recentGamesSize {
		sorted = sorted[:recentGamesSize]
	}

	recent := make([]domain.RecentGame, 0, len(sorted))
	for _, session := range sorted {
		results := make([]domain.GameResult, len(session.Results))
		copy(results, session.Results)
		sort.Slice(results, func(i, j int) bool {
			return results[i].Position < results[j].Position
		})

		winners := []string{}
		for _, result := range results {
			if result.IsWinner {
				winners = append(winners, result.PlayerName)
			}
		}

		recent = append(recent, domain.RecentGame{
			SessionID:     session.ID,
			GameName:      session.GameName,
			GameNightName: session.GameNightName,
			PlayedAt:      session.CreatedAt,
			Winners:       winners,
			PlayerCount:   len(session.Results),
		})
	}

	return recent
}

// buildDistribution tallies every scoped session, not just the recent
// sample, so the histogram's counts always sum to totalGamesPlayed.
func buildDistribution(sessions []domain.GameSession) []domain.GameCount {
	counts := make(map[string]int)
	for _, session := range sessions {
		counts[session.GameName]++
	}

	distribution := make([]domain.GameCount, 0, len(counts))
	for name, count := range counts {
		distribution = append(distribution, domain.GameCount{
			GameName: name,
			Count:    count,
		})
	}

	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}

		return distribution[i].GameName < distribution[j].GameName
	})

	return distribution
}
