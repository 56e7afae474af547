package service

import (
	"context"
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository"
)

var (
	ErrPlayerNotFound   = repository.ErrPlayerNotFound
	ErrPlayerNameExists = repository.ErrPlayerNameExists
)

type PlayerRepository interface {
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	FindByID(ctx context.Context, ownerUserID, id uint) (domain.Player, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.Player, error)
	Update(ctx context.Context, player domain.Player) (domain.Player, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
}

type PlayerService struct {
	repo PlayerRepository
}

func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{
		repo: repo,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PlayerService) GetPlayers(ctx context.Context, ownerUserID uint) ([]domain.Player, error) {
	players, err := s.repo.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByOwner -> %w", err)
	}

	return players, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	updated, err := s.repo.Update(ctx, player)
	if err != nil {
		return domain.Player{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeletePlayer removes the player and, through the persistence layer, all
// of their recorded results.
func (s *PlayerService) DeletePlayer(ctx context.Context, ownerUserID, id uint) error {
	if err := s.repo.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
