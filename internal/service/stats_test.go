package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

func session(id uint, gameID uint, gameName string, createdAt time.Time, results ...domain.GameResult) domain.GameSession {
	return domain.GameSession{
		ID:        id,
		GameID:    gameID,
		GameName:  gameName,
		CreatedAt: createdAt,
		Results:   results,
	}
}

func result(playerID uint, name string, position int, winner bool) domain.GameResult {
	return domain.GameResult{
		PlayerID:   playerID,
		PlayerName: name,
		Position:   position,
		IsWinner:   winner,
	}
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0, winRate(0, 0))
	assert.Equal(t, 0, winRate(0, 5))
	assert.Equal(t, 50, winRate(1, 2))
	assert.Equal(t, 33, winRate(1, 3))
	assert.Equal(t, 67, winRate(2, 3))
	assert.Equal(t, 13, winRate(1, 8))
	assert.Equal(t, 100, winRate(4, 4))
}

func TestAggregate_Overview(t *testing.T) {
	now := time.Now()
	nights := []domain.GameNight{
		{
			ID: 1,
			Sessions: []domain.GameSession{
				session(1, 1, "Catan", now,
					result(1, "Alice", 1, true),
					result(2, "Bob", 2, false),
				),
				session(2, 2, "Azul", now,
					result(1, "Alice", 1, true),
					result(2, "Bob", 1, true),
				),
			},
		},
		{ID: 2},
	}

	report := aggregate(5, nights, domain.StatsFilter{})

	assert.Equal(t, 5, report.Overview.TotalPlayers)
	assert.Equal(t, 2, report.Overview.TotalGameNights)
	assert.Equal(t, 2, report.Overview.TotalGamesPlayed)
	assert.Equal(t, 3, report.Overview.TotalWins)
}

func TestAggregate_LeaderboardOrdering(t *testing.T) {
	now := time.Now()
	// Alice: 2 wins in 2 games. Bob: 2 wins in 3 games. Carol: 1 win in
	// 1 game. Dave: 1 win in 1 game, ties Carol on every count.
	nights := []domain.GameNight{
		{
			ID: 1,
			Sessions: []domain.GameSession{
				session(1, 1, "Catan", now,
					result(1, "Alice", 1, true),
					result(2, "Bob", 2, false),
				),
				session(2, 1, "Catan", now,
					result(1, "Alice", 1, true),
					result(2, "Bob", 1, true),
				),
				session(3, 2, "Azul", now,
					result(2, "Bob", 1, true),
					result(3, "Carol", 2, false),
				),
				session(4, 2, "Azul", now,
					result(3, "Carol", 1, true),
				),
				session(5, 2, "Azul", now,
					result(4, "Dave", 1, true),
				),
			},
		},
	}

	report := aggregate(4, nights, domain.StatsFilter{})

	require.Len(t, report.Leaderboard, 4)
	// Alice and Bob both have 2 wins; Alice's 100% rate outranks Bob's 67%.
	assert.Equal(t, "Alice", report.Leaderboard[0].Name)
	assert.Equal(t, 100, report.Leaderboard[0].WinRate)
	assert.Equal(t, "Bob", report.Leaderboard[1].Name)
	assert.Equal(t, 3, report.Leaderboard[1].TotalGames)
	assert.Equal(t, 67, report.Leaderboard[1].WinRate)
	// Carol and Dave tie on wins and rate; names break the tie.
	assert.Equal(t, "Carol", report.Leaderboard[2].Name)
	assert.Equal(t, "Dave", report.Leaderboard[3].Name)
}

func TestAggregate_LeaderboardCap(t *testing.T) {
	now := time.Now()
	var results []domain.GameResult
	for i := uint(1); i <= 15; i++ {
		results = append(results, result(i, fmt.Sprintf("Player %02d", i), int(i), i == 1))
	}
	nights := []domain.GameNight{
		{ID: 1, Sessions: []domain.GameSession{session(1, 1, "Catan", now, results...)}},
	}

	report := aggregate(15, nights, domain.StatsFilter{})

	assert.Len(t, report.Leaderboard, 10)
}

func TestAggregate_PlayerFilter(t *testing.T) {
	now := time.Now()
	nights := []domain.GameNight{
		{
			ID: 1,
			Sessions: []domain.GameSession{
				session(1, 1, "Catan", now,
					result(1, "Alice", 1, true),
					result(2, "Bob", 2, false),
				),
				session(2, 2, "Azul", now,
					result(2, "Bob", 1, true),
				),
			},
		},
	}

	report := aggregate(2, nights, domain.StatsFilter{PlayerID: 1})

	// Only the session Alice played is in scope, and only her wins count.
	assert.Equal(t, 1, report.Overview.TotalGamesPlayed)
	assert.Equal(t, 1, report.Overview.TotalWins)
	require.Len(t, report.Leaderboard, 1)
	assert.Equal(t, "Alice", report.Leaderboard[0].Name)
	// The roster count stays account-wide.
	assert.Equal(t, 2, report.Overview.TotalPlayers)
}

func TestAggregate_GameFilter(t *testing.T) {
	now := time.Now()
	nights := []domain.GameNight{
		{
			ID: 1,
			Sessions: []domain.GameSession{
				session(1, 1, "Catan", now, result(1, "Alice", 1, true)),
				session(2, 1, "Catan", now, result(2, "Bob", 1, true)),
				session(3, 2, "Azul", now, result(1, "Alice", 1, true)),
			},
		},
	}

	report := aggregate(2, nights, domain.StatsFilter{GameID: 1})

	assert.Equal(t, 2, report.Overview.TotalGamesPlayed)
	require.Len(t, report.GameDistribution, 1)
	assert.Equal(t, "Catan", report.GameDistribution[0].GameName)
	assert.Equal(t, 2, report.GameDistribution[0].Count)
}

func TestAggregate_DistributionCoversAllScopedSessions(t *testing.T) {
	now := time.Now()
	// 12 sessions: recentGames samples the newest 10, the distribution
	// still counts all 12.
	var sessions []domain.GameSession
	for i := uint(1); i <= 12; i++ {
		sessions = append(sessions, session(i, 1, "Catan", now.Add(time.Duration(i)*time.Minute),
			result(1, "Alice", 1, true),
		))
	}
	nights := []domain.GameNight{{ID: 1, Sessions: sessions}}

	report := aggregate(1, nights, domain.StatsFilter{})

	assert.Len(t, report.RecentGames, 10)
	require.Len(t, report.GameDistribution, 1)
	assert.Equal(t, 12, report.GameDistribution[0].Count)
	assert.Equal(t, 12, report.Overview.TotalGamesPlayed)
}

func TestAggregate_RecentGames(t *testing.T) {
	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	nights := []domain.GameNight{
		{
			ID:   1,
			Name: "Friday Night",
			Sessions: []domain.GameSession{
				session(1, 1, "Catan", base,
					result(2, "Bob", 2, false),
					result(1, "Alice", 1, true),
				),
				session(2, 2, "Azul", base.Add(time.Hour),
					result(1, "Alice", 2, true),
					result(2, "Bob", 1, true),
				),
			},
		},
	}

	report := aggregate(2, nights, domain.StatsFilter{})

	require.Len(t, report.RecentGames, 2)
	// Newest first.
	assert.Equal(t, uint(2), report.RecentGames[0].SessionID)
	assert.Equal(t, uint(1), report.RecentGames[1].SessionID)
	// Winners listed in finishing order.
	assert.Equal(t, []string{"Bob", "Alice"}, report.RecentGames[0].Winners)
	assert.Equal(t, 2, report.RecentGames[0].PlayerCount)
}

func TestAggregate_EmptyAccount(t *testing.T) {
	report := aggregate(0, nil, domain.StatsFilter{})

	assert.Equal(t, 0, report.Overview.TotalPlayers)
	assert.Equal(t, 0, report.Overview.TotalGamesPlayed)
	assert.NotNil(t, report.Leaderboard)
	assert.Empty(t, report.Leaderboard)
	assert.NotNil(t, report.RecentGames)
	assert.NotNil(t, report.GameDistribution)
}

func TestComputeStats_DateAndGroupScoping(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))
	nightRepo := repository.NewGameNightRepository(dao.NewGameNightDAO(db))
	gameRepo := repository.NewGameRepository(dao.NewGameDAO(db))
	commentRepo := repository.NewCommentRepository(dao.NewCommentDAO(db))

	user, err := userRepo.Upsert(ctx, domain.User{ExternalID: "sub-1", Email: "owner@example.com", Name: "Owner"})
	require.NoError(t, err)

	alice, err := playerRepo.Create(ctx, domain.Player{Name: "Alice", OwnerUserID: user.ID})
	require.NoError(t, err)
	_, err = playerRepo.Create(ctx, domain.Player{Name: "Bob", OwnerUserID: user.ID})
	require.NoError(t, err)

	nightSvc := NewGameNightService(nightRepo, gameRepo, commentRepo, playerRepo)

	march, err := nightRepo.Create(ctx, domain.GameNight{
		Name:        "March Meetup",
		Date:        time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		GroupTag:    "family",
		OwnerUserID: user.ID,
	})
	require.NoError(t, err)
	april, err := nightRepo.Create(ctx, domain.GameNight{
		Name:        "April Meetup",
		Date:        time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		OwnerUserID: user.ID,
	})
	require.NoError(t, err)

	_, err = nightSvc.RecordSession(ctx, user.ID, march.ID, "Catan", []domain.GameResult{
		{PlayerID: alice.ID, Position: 1, IsWinner: true},
	})
	require.NoError(t, err)
	_, err = nightSvc.RecordSession(ctx, user.ID, april.ID, "Azul", []domain.GameResult{
		{PlayerID: alice.ID, Position: 1, IsWinner: true},
	})
	require.NoError(t, err)

	svc := NewStatsService(nightRepo, playerRepo)

	report, err := svc.ComputeStats(ctx, user.ID, domain.StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Overview.TotalGameNights)
	assert.Equal(t, 2, report.Overview.TotalGamesPlayed)
	assert.Equal(t, 2, report.Overview.TotalPlayers)

	// An inclusive March window keeps only the March night.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	report, err = svc.ComputeStats(ctx, user.ID, domain.StatsFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Overview.TotalGameNights)
	assert.Equal(t, 1, report.Overview.TotalGamesPlayed)
	// The roster never narrows.
	assert.Equal(t, 2, report.Overview.TotalPlayers)

	// Group tag scoping.
	report, err = svc.ComputeStats(ctx, user.ID, domain.StatsFilter{GroupTag: "family"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Overview.TotalGameNights)
	require.Len(t, report.GameDistribution, 1)
	assert.Equal(t, "Catan", report.GameDistribution[0].GameName)
}

func TestComputeStats_IsolatedBetweenOwners(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))
	nightRepo := repository.NewGameNightRepository(dao.NewGameNightDAO(db))
	gameRepo := repository.NewGameRepository(dao.NewGameDAO(db))
	commentRepo := repository.NewCommentRepository(dao.NewCommentDAO(db))

	owner, err := userRepo.Upsert(ctx, domain.User{ExternalID: "sub-1", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)
	other, err := userRepo.Upsert(ctx, domain.User{ExternalID: "sub-2", Email: "b@example.com", Name: "B"})
	require.NoError(t, err)

	player, err := playerRepo.Create(ctx, domain.Player{Name: "Alice", OwnerUserID: owner.ID})
	require.NoError(t, err)

	nightSvc := NewGameNightService(nightRepo, gameRepo, commentRepo, playerRepo)
	night, err := nightRepo.Create(ctx, domain.GameNight{
		Name:        "Owner Night",
		Date:        time.Now(),
		OwnerUserID: owner.ID,
	})
	require.NoError(t, err)
	_, err = nightSvc.RecordSession(ctx, owner.ID, night.ID, "Catan", []domain.GameResult{
		{PlayerID: player.ID, Position: 1, IsWinner: true},
	})
	require.NoError(t, err)

	svc := NewStatsService(nightRepo, playerRepo)

	report, err := svc.ComputeStats(ctx, other.ID, domain.StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Overview.TotalGameNights)
	assert.Equal(t, 0, report.Overview.TotalPlayers)
	assert.Empty(t, report.Leaderboard)
}
