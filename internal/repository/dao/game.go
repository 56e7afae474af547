package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGameNameExists = errors.New("game name already exists")
)

type Game struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null;uniqueIndex:idx_games_owner_name"`
	OwnerUserID uint   `gorm:"not null;uniqueIndex:idx_games_owner_name;index"`

	CreatedAt time.Time `gorm:"not null"`
}

type GameDAO struct {
	db *gorm.DB
}

func NewGameDAO(db *gorm.DB) *GameDAO {
	return &GameDAO{
		db: db,
	}
}

func (d *GameDAO) FindByID(ctx context.Context, ownerUserID, id uint) (Game, error) {
	var game Game

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		First(&game, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Game{}, ErrGameNotFound
		}

		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]Game, error) {
	var games []Game

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("name ASC").
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

// FindOrCreate returns the owner's game with the given name, creating it on
// first sight. When a concurrent create wins the unique-constraint race, the
// conflicting row is re-fetched instead of surfacing an error.
func (d *GameDAO) FindOrCreate(ctx context.Context, ownerUserID uint, name string) (Game, error) {
	var game Game

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ? AND name = ?", ownerUserID, name).
		First(&game)
	if result.Error == nil {
		return game, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Game{}, result.Error
	}

	game = Game{
		Name:        name,
		OwnerUserID: ownerUserID,
	}
	result = d.db.WithContext(ctx).Create(&game)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			var existing Game
			refetch := d.db.WithContext(ctx).
				Where("owner_user_id = ? AND name = ?", ownerUserID, name).
				First(&existing)
			if refetch.Error != nil {
				return Game{}, refetch.Error
			}

			return existing, nil
		}

		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) Delete(ctx context.Context, ownerUserID, id uint) error {
	game, err := d.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return err
	}

	return d.db.WithContext(ctx).Delete(&game).Error
}
