package repository

import (
	"context"
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

var (
	ErrPlayerNotFound   = dao.ErrPlayerNotFound
	ErrPlayerNameExists = dao.ErrPlayerNameExists
)

type PlayerDAO interface {
	Insert(ctx context.Context, player dao.Player) (dao.Player, error)
	FindByID(ctx context.Context, ownerUserID, id uint) (dao.Player, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]dao.Player, error)
	CountByOwner(ctx context.Context, ownerUserID uint) (int64, error)
	Update(ctx context.Context, player dao.Player) (dao.Player, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
}

type PlayerRepository struct {
	dao PlayerDAO
}

func NewPlayerRepository(dao PlayerDAO) *PlayerRepository {
	return &PlayerRepository{
		dao: dao,
	}
}

func (r *PlayerRepository) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	created, err := r.dao.Insert(ctx, dao.Player{
		Name:        player.Name,
		OwnerUserID: player.OwnerUserID,
		Color:       player.Color,
		AvatarURL:   player.AvatarURL,
	})
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return playerDaoToDomain(created), nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, ownerUserID, id uint) (domain.Player, error) {
	found, err := r.dao.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return playerDaoToDomain(found), nil
}

func (r *PlayerRepository) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.Player, error) {
	found, err := r.dao.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByOwner -> %w", err)
	}

	players := make([]domain.Player, len(found))
	for i, p := range found {
		players[i] = playerDaoToDomain(p)
	}

	return players, nil
}

func (r *PlayerRepository) CountByOwner(ctx context.Context, ownerUserID uint) (int, error) {
	count, err := r.dao.CountByOwner(ctx, ownerUserID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByOwner -> %w", err)
	}

	return int(count), nil
}

func (r *PlayerRepository) Update(ctx context.Context, player domain.Player) (domain.Player, error) {
	existing, err := r.dao.FindByID(ctx, player.OwnerUserID, player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	existing.Name = player.Name
	existing.Color = player.Color
	existing.AvatarURL = player.AvatarURL

	updated, err := r.dao.Update(ctx, existing)
	if err != nil {
		return domain.Player{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return playerDaoToDomain(updated), nil
}

func (r *PlayerRepository) Delete(ctx context.Context, ownerUserID, id uint) error {
	if err := r.dao.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func playerDaoToDomain(p dao.Player) domain.Player {
	return domain.Player{
		ID:          p.ID,
		Name:        p.Name,
		Color:       p.Color,
		AvatarURL:   p.AvatarURL,
		OwnerUserID: p.OwnerUserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
