package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

var (
	ErrGameNightNotFound   = dao.ErrGameNightNotFound
	ErrGameSessionNotFound = dao.ErrGameSessionNotFound
)

type GameNightDAO interface {
	Insert(ctx context.Context, night dao.GameNight) (dao.GameNight, error)
	FindByID(ctx context.Context, ownerUserID, id uint) (dao.GameNight, error)
	FindScopedByID(ctx context.Context, ownerUserID uint, groupTag string, id uint) (dao.GameNight, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint, groupTag string) ([]dao.GameNight, error)
	FindForStats(ctx context.Context, ownerUserID uint, groupTag string, start, end *time.Time) ([]dao.GameNight, error)
	Update(ctx context.Context, night dao.GameNight) (dao.GameNight, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
	InsertSession(ctx context.Context, session dao.GameSession) (dao.GameSession, error)
	FindSessionByID(ctx context.Context, gameNightID, id uint) (dao.GameSession, error)
	DeleteSession(ctx context.Context, gameNightID, id uint) error
}

type GameNightRepository struct {
	dao GameNightDAO
}

func NewGameNightRepository(dao GameNightDAO) *GameNightRepository {
	return &GameNightRepository{
		dao: dao,
	}
}

func (r *GameNightRepository) Create(ctx context.Context, night domain.GameNight) (domain.GameNight, error) {
	created, err := r.dao.Insert(ctx, dao.GameNight{
		Name:        night.Name,
		Date:        night.Date,
		GroupTag:    night.GroupTag,
		OwnerUserID: night.OwnerUserID,
	})
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nightDaoToDomain(created), nil
}

func (r *GameNightRepository) FindByID(ctx context.Context, ownerUserID, id uint) (domain.GameNight, error) {
	found, err := r.dao.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return nightDaoToDomain(found), nil
}

func (r *GameNightRepository) FindScopedByID(ctx context.Context, ownerUserID uint, groupTag string, id uint) (domain.GameNight, error) {
	found, err := r.dao.FindScopedByID(ctx, ownerUserID, groupTag, id)
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("r.dao.FindScopedByID -> %w", err)
	}

	return nightDaoToDomain(found), nil
}

func (r *GameNightRepository) FindAllByOwner(ctx context.Context, ownerUserID uint, groupTag string) ([]domain.GameNight, error) {
	found, err := r.dao.FindAllByOwner(ctx, ownerUserID, groupTag)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByOwner -> %w", err)
	}

	nights := make([]domain.GameNight, len(found))
	for i, n := range found {
		nights[i] = nightDaoToDomain(n)
	}

	return nights, nil
}

func (r *GameNightRepository) FindForStats(ctx context.Context, ownerUserID uint, groupTag string, start, end *time.Time) ([]domain.GameNight, error) {
	found, err := r.dao.FindForStats(ctx, ownerUserID, groupTag, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindForStats -> %w", err)
	}

	nights := make([]domain.GameNight, len(found))
	for i, n := range found {
		nights[i] = nightDaoToDomain(n)
	}

	return nights, nil
}

func (r *GameNightRepository) Update(ctx context.Context, night domain.GameNight) (domain.GameNight, error) {
	updated, err := r.dao.Update(ctx, dao.GameNight{
		ID:          night.ID,
		Name:        night.Name,
		Date:        night.Date,
		GroupTag:    night.GroupTag,
		OwnerUserID: night.OwnerUserID,
	})
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nightDaoToDomain(updated), nil
}

func (r *GameNightRepository) Delete(ctx context.Context, ownerUserID, id uint) error {
	if err := r.dao.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GameNightRepository) CreateSession(ctx context.Context, session domain.GameSession) (domain.GameSession, error) {
	daoSession := dao.GameSession{
		GameID:      session.GameID,
		GameNightID: session.GameNightID,
	}
	for _, result := range session.Results {
		daoSession.Results = append(daoSession.Results, dao.GameResult{
			PlayerID: result.PlayerID,
			Position: result.Position,
			Points:   result.Points,
			IsWinner: result.IsWinner,
		})
	}

	created, err := r.dao.InsertSession(ctx, daoSession)
	if err != nil {
		return domain.GameSession{}, fmt.Errorf("r.dao.InsertSession -> %w", err)
	}

	return sessionDaoToDomain(created), nil
}

func (r *GameNightRepository) FindSessionByID(ctx context.Context, gameNightID, id uint) (domain.GameSession, error) {
	found, err := r.dao.FindSessionByID(ctx, gameNightID, id)
	if err != nil {
		return domain.GameSession{}, fmt.Errorf("r.dao.FindSessionByID -> %w", err)
	}

	return sessionDaoToDomain(found), nil
}

func (r *GameNightRepository) DeleteSession(ctx context.Context, gameNightID, id uint) error {
	if err := r.dao.DeleteSession(ctx, gameNightID, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSession -> %w", err)
	}

	return nil
}

func nightDaoToDomain(n dao.GameNight) domain.GameNight {
	night := domain.GameNight{
		ID:          n.ID,
		Name:        n.Name,
		Date:        n.Date,
		GroupTag:    n.GroupTag,
		OwnerUserID: n.OwnerUserID,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}

	for _, s := range n.Sessions {
		session := sessionDaoToDomain(s)
		session.GameNightName = n.Name
		night.Sessions = append(night.Sessions, session)
	}
	for _, c := range n.Comments {
		night.Comments = append(night.Comments, commentDaoToDomain(c))
	}

	return night
}

func sessionDaoToDomain(s dao.GameSession) domain.GameSession {
	session := domain.GameSession{
		ID:          s.ID,
		GameID:      s.GameID,
		GameName:    s.Game.Name,
		GameNightID: s.GameNightID,
		CreatedAt:   s.CreatedAt,
	}

	for _, result := range s.Results {
		session.Results = append(session.Results, domain.GameResult{
			ID:            result.ID,
			GameSessionID: result.GameSessionID,
			PlayerID:      result.PlayerID,
			PlayerName:    result.Player.Name,
			Position:      result.Position,
			Points:        result.Points,
			IsWinner:      result.IsWinner,
		})
	}

	return session
}
