package repository

import (
	"context"
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

var (
	ErrGameNotFound   = dao.ErrGameNotFound
	ErrGameNameExists = dao.ErrGameNameExists
)

type GameDAO interface {
	FindByID(ctx context.Context, ownerUserID, id uint) (dao.Game, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]dao.Game, error)
	FindOrCreate(ctx context.Context, ownerUserID uint, name string) (dao.Game, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
}

type GameRepository struct {
	dao GameDAO
}

func NewGameRepository(dao GameDAO) *GameRepository {
	return &GameRepository{
		dao: dao,
	}
}

func (r *GameRepository) FindByID(ctx context.Context, ownerUserID, id uint) (domain.Game, error) {
	found, err := r.dao.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return gameDaoToDomain(found), nil
}

func (r *GameRepository) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.Game, error) {
	found, err := r.dao.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByOwner -> %w", err)
	}

	games := make([]domain.Game, len(found))
	for i, g := range found {
		games[i] = gameDaoToDomain(g)
	}

	return games, nil
}

func (r *GameRepository) FindOrCreate(ctx context.Context, ownerUserID uint, name string) (domain.Game, error) {
	game, err := r.dao.FindOrCreate(ctx, ownerUserID, name)
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.FindOrCreate -> %w", err)
	}

	return gameDaoToDomain(game), nil
}

func (r *GameRepository) Delete(ctx context.Context, ownerUserID, id uint) error {
	if err := r.dao.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func gameDaoToDomain(g dao.Game) domain.Game {
	return domain.Game{
		ID:          g.ID,
		Name:        g.Name,
		OwnerUserID: g.OwnerUserID,
		CreatedAt:   g.CreatedAt,
	}
}
