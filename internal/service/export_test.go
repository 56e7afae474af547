package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenighthq/gamenight-api/internal/domain"
)

func TestBuildExport_FullAccount(t *testing.T) {
	f := newGameNightFixture(t)
	owner := f.user(t, "owner")
	alice := f.player(t, owner.ID, "Alice")
	bob := f.player(t, owner.ID, "Bob")
	night := f.night(t, owner.ID, "Friday", "family")

	_, err := f.svc.RecordSession(f.ctx, owner.ID, night.ID, "Catan", []domain.GameResult{
		{PlayerID: alice.ID, Position: 1, IsWinner: true},
		{PlayerID: bob.ID, Position: 2, IsWinner: false},
	})
	require.NoError(t, err)
	_, err = f.svc.RecordSession(f.ctx, owner.ID, night.ID, "Azul", []domain.GameResult{
		{PlayerID: alice.ID, Position: 1, IsWinner: true},
	})
	require.NoError(t, err)

	gameRepo := f.svc.gameRepo
	svc := NewExportService(f.userRepo, f.playerRepo, gameRepo, f.nightRepo)

	doc, err := svc.BuildExport(f.ctx, owner.ID)
	require.NoError(t, err)

	assert.Equal(t, owner.Email, doc.User.Email)
	assert.False(t, doc.ExportedAt.IsZero())

	assert.Equal(t, 2, doc.Summary.TotalPlayers)
	assert.Equal(t, 2, doc.Summary.TotalGames)
	assert.Equal(t, 1, doc.Summary.TotalGameNights)
	assert.Equal(t, 2, doc.Summary.TotalSessions)

	require.Len(t, doc.Players, 2)
	byName := make(map[string]domain.ExportPlayer)
	for _, p := range doc.Players {
		byName[p.Name] = p
	}
	assert.Equal(t, 2, byName["Alice"].TotalGames)
	assert.Equal(t, 2, byName["Alice"].Wins)
	assert.Equal(t, 1, byName["Bob"].TotalGames)
	assert.Equal(t, 0, byName["Bob"].Wins)

	require.Len(t, doc.GameNights, 1)
	assert.Len(t, doc.GameNights[0].Sessions, 2)
}

func TestBuildExport_IgnoresGroupTagScoping(t *testing.T) {
	f := newGameNightFixture(t)
	owner := f.user(t, "owner")
	f.night(t, owner.ID, "Family Night", "family")
	f.night(t, owner.ID, "Work Night", "work")
	f.night(t, owner.ID, "Untagged Night", "")

	svc := NewExportService(f.userRepo, f.playerRepo, f.svc.gameRepo, f.nightRepo)

	doc, err := svc.BuildExport(f.ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Summary.TotalGameNights)
}

func TestBuildExport_OtherAccountsExcluded(t *testing.T) {
	f := newGameNightFixture(t)
	owner := f.user(t, "owner")
	other := f.user(t, "other")
	f.player(t, other.ID, "Foreign Player")
	f.night(t, other.ID, "Foreign Night", "")

	svc := NewExportService(f.userRepo, f.playerRepo, f.svc.gameRepo, f.nightRepo)

	doc, err := svc.BuildExport(f.ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, doc.Summary.TotalPlayers)
	assert.Zero(t, doc.Summary.TotalGameNights)
}
