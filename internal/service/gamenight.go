package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository"
)

var (
	ErrGameNightNotFound   = repository.ErrGameNightNotFound
	ErrGameSessionNotFound = repository.ErrGameSessionNotFound
	ErrGameNotFound        = repository.ErrGameNotFound
	ErrCommentNotFound     = repository.ErrCommentNotFound
	ErrResultPlayerInvalid = errors.New("result references an unknown player")
)

type GameNightRepository interface {
	Create(ctx context.Context, night domain.GameNight) (domain.GameNight, error)
	FindByID(ctx context.Context, ownerUserID, id uint) (domain.GameNight, error)
	FindScopedByID(ctx context.Context, ownerUserID uint, groupTag string, id uint) (domain.GameNight, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint, groupTag string) ([]domain.GameNight, error)
	FindForStats(ctx context.Context, ownerUserID uint, groupTag string, start, end *time.Time) ([]domain.GameNight, error)
	Update(ctx context.Context, night domain.GameNight) (domain.GameNight, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
	CreateSession(ctx context.Context, session domain.GameSession) (domain.GameSession, error)
	FindSessionByID(ctx context.Context, gameNightID, id uint) (domain.GameSession, error)
	DeleteSession(ctx context.Context, gameNightID, id uint) error
}

type GameRepository interface {
	FindByID(ctx context.Context, ownerUserID, id uint) (domain.Game, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.Game, error)
	FindOrCreate(ctx context.Context, ownerUserID uint, name string) (domain.Game, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	FindOwnedByID(ctx context.Context, ownerUserID, id uint) (domain.Comment, error)
	Update(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type SessionPlayerRepository interface {
	FindByID(ctx context.Context, ownerUserID, id uint) (domain.Player, error)
}

type GameNightService struct {
	repo        GameNightRepository
	gameRepo    GameRepository
	commentRepo CommentRepository
	playerRepo  SessionPlayerRepository
}

func NewGameNightService(repo GameNightRepository, gameRepo GameRepository, commentRepo CommentRepository, playerRepo SessionPlayerRepository) *GameNightService {
	return &GameNightService{
		repo:        repo,
		gameRepo:    gameRepo,
		commentRepo: commentRepo,
		playerRepo:  playerRepo,
	}
}

func (s *GameNightService) CreateGameNight(ctx context.Context, night domain.GameNight) (domain.GameNight, error) {
	created, err := s.repo.Create(ctx, night)
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GameNightService) GetGameNights(ctx context.Context, ownerUserID uint, groupTag string) ([]domain.GameNight, error) {
	nights, err := s.repo.FindAllByOwner(ctx, ownerUserID, groupTag)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByOwner -> %w", err)
	}

	return nights, nil
}

func (s *GameNightService) GetGameNight(ctx context.Context, ownerUserID, id uint) (domain.GameNight, error) {
	night, err := s.repo.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return night, nil
}

// GetScopedGameNight resolves a game night through a share scope. The night
// must belong to the scope's owner, and when the scope carries a group tag
// the night's tag must match exactly; any mismatch reads as not found.
func (s *GameNightService) GetScopedGameNight(ctx context.Context, scope domain.ShareScope, id uint) (domain.GameNight, error) {
	night, err := s.repo.FindScopedByID(ctx, scope.OwnerUserID, scope.GroupTag, id)
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("s.repo.FindScopedByID -> %w", err)
	}

	return night, nil
}

func (s *GameNightService) GetScopedGameNights(ctx context.Context, scope domain.ShareScope) ([]domain.GameNight, error) {
	nights, err := s.repo.FindAllByOwner(ctx, scope.OwnerUserID, scope.GroupTag)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByOwner -> %w", err)
	}

	return nights, nil
}

func (s *GameNightService) UpdateGameNight(ctx context.Context, night domain.GameNight) (domain.GameNight, error) {
	updated, err := s.repo.Update(ctx, night)
	if err != nil {
		return domain.GameNight{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GameNightService) DeleteGameNight(ctx context.Context, ownerUserID, id uint) error {
	if err := s.repo.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// RecordSession stores one play of a game within a game night. The game is
// resolved by name with find-or-create semantics, so naming an unseen game
// registers it for the owner. Every result must reference one of the
// owner's players.
func (s *GameNightService) RecordSession(ctx context.Context, ownerUserID, gameNightID uint, gameName string, results []domain.GameResult) (domain.GameSession, error) {
	if _, err := s.repo.FindByID(ctx, ownerUserID, gameNightID); err != nil {
		return domain.GameSession{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	game, err := s.gameRepo.FindOrCreate(ctx, ownerUserID, gameName)
	if err != nil {
		return domain.GameSession{}, fmt.Errorf("s.gameRepo.FindOrCreate -> %w", err)
	}

	for _, result := range results {
		if _, err = s.playerRepo.FindByID(ctx, ownerUserID, result.PlayerID); err != nil {
			if errors.Is(err, ErrPlayerNotFound) {
				return domain.GameSession{}, ErrResultPlayerInvalid
			}

			return domain.GameSession{}, fmt.Errorf("s.playerRepo.FindByID -> %w", err)
		}
	}

	session, err := s.repo.CreateSession(ctx, domain.GameSession{
		GameID:      game.ID,
		GameNightID: gameNightID,
		Results:     results,
	})
	if err != nil {
		return domain.GameSession{}, fmt.Errorf("s.repo.CreateSession -> %w", err)
	}

	return session, nil
}

func (s *GameNightService) DeleteSession(ctx context.Context, ownerUserID, gameNightID, sessionID uint) error {
	if _, err := s.repo.FindByID(ctx, ownerUserID, gameNightID); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.DeleteSession(ctx, gameNightID, sessionID); err != nil {
		return fmt.Errorf("s.repo.DeleteSession -> %w", err)
	}

	return nil
}

// CreateComment attaches a comment to one of the owner's game nights. A
// session reference must point at a session recorded under that same night.
func (s *GameNightService) CreateComment(ctx context.Context, ownerUserID uint, comment domain.Comment) (domain.Comment, error) {
	if _, err := s.repo.FindByID(ctx, ownerUserID, comment.GameNightID); err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if comment.GameSessionID != nil {
		if _, err := s.repo.FindSessionByID(ctx, comment.GameNightID, *comment.GameSessionID); err != nil {
			return domain.Comment{}, fmt.Errorf("s.repo.FindSessionByID -> %w", err)
		}
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.commentRepo.Create -> %w", err)
	}

	return created, nil
}

// CreateVisitorComment is the single write a share-link visitor may perform.
// The optional display name is stored as structured attribution alongside
// the content.
func (s *GameNightService) CreateVisitorComment(ctx context.Context, scope domain.ShareScope, gameNightID uint, content, authorName string) (domain.Comment, error) {
	if _, err := s.repo.FindScopedByID(ctx, scope.OwnerUserID, scope.GroupTag, gameNightID); err != nil {
		return domain.Comment{}, fmt.Errorf("s.repo.FindScopedByID -> %w", err)
	}

	created, err := s.commentRepo.Create(ctx, domain.Comment{
		Content:     content,
		AuthorName:  authorName,
		GameNightID: gameNightID,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.commentRepo.Create -> %w", err)
	}

	return created, nil
}

func (s *GameNightService) UpdateComment(ctx context.Context, ownerUserID, commentID uint, content string) (domain.Comment, error) {
	comment, err := s.commentRepo.FindOwnedByID(ctx, ownerUserID, commentID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.commentRepo.FindOwnedByID -> %w", err)
	}

	comment.Content = content
	updated, err := s.commentRepo.Update(ctx, comment)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("s.commentRepo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GameNightService) DeleteComment(ctx context.Context, ownerUserID, commentID uint) error {
	comment, err := s.commentRepo.FindOwnedByID(ctx, ownerUserID, commentID)
	if err != nil {
		return fmt.Errorf("s.commentRepo.FindOwnedByID -> %w", err)
	}

	if err = s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("s.commentRepo.Delete -> %w", err)
	}

	return nil
}

func (s *GameNightService) GetGames(ctx context.Context, ownerUserID uint) ([]domain.Game, error) {
	games, err := s.gameRepo.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("s.gameRepo.FindAllByOwner -> %w", err)
	}

	return games, nil
}

func (s *GameNightService) DeleteGame(ctx context.Context, ownerUserID, id uint) error {
	if err := s.gameRepo.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("s.gameRepo.Delete -> %w", err)
	}

	return nil
}
