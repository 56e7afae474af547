package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gamenighthq/gamenight-api/internal/domain"
)

type ExportUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type ExportPlayerRepository interface {
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.Player, error)
}

// ExportService reshapes the full account graph into a flat document for
// user-initiated backups. No filtering applies; the scope is always the
// whole account.
type ExportService struct {
	userRepo   ExportUserRepository
	playerRepo ExportPlayerRepository
	gameRepo   GameRepository
	nightRepo  GameNightRepository
}

func NewExportService(userRepo ExportUserRepository, playerRepo ExportPlayerRepository, gameRepo GameRepository, nightRepo GameNightRepository) *ExportService {
	return &ExportService{
		userRepo:   userRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		nightRepo:  nightRepo,
	}
}

func (s *ExportService) BuildExport(ctx context.Context, ownerUserID uint) (domain.ExportDocument, error) {
	user, err := s.userRepo.FindByID(ctx, ownerUserID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	players, err := s.playerRepo.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("s.playerRepo.FindAllByOwner -> %w", err)
	}

	games, err := s.gameRepo.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("s.gameRepo.FindAllByOwner -> %w", err)
	}

	nights, err := s.nightRepo.FindForStats(ctx, ownerUserID, "", nil, nil)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("s.nightRepo.FindForStats -> %w", err)
	}

	type tally struct {
		games int
		wins  int
	}
	tallies := make(map[uint]tally)
	totalSessions := 0
	for _, night := range nights {
		totalSessions += len(night.Sessions)
		for _, session := range night.Sessions {
			for _, result := range session.Results {
				t := tallies[result.PlayerID]
				t.games++
				if result.IsWinner {
					t.wins++
				}
				tallies[result.PlayerID] = t
			}
		}
	}

	exportPlayers := make([]domain.ExportPlayer, len(players))
	for i, player := range players {
		t := tallies[player.ID]
		exportPlayers[i] = domain.ExportPlayer{
			Player:     player,
			TotalGames: t.games,
			Wins:       t.wins,
		}
	}

	return domain.ExportDocument{
		ExportedAt: time.Now(),
		User: domain.ExportUser{
			Email: user.Email,
			Name:  user.Name,
		},
		Players:    exportPlayers,
		Games:      games,
		GameNights: nights,
		Summary: domain.ExportSummary{
			TotalPlayers:    len(players),
			TotalGames:      len(games),
			TotalGameNights: len(nights),
			TotalSessions:   totalSessions,
		},
	}, nil
}
