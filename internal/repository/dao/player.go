package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPlayerNameExists = errors.New("player name already exists")
)

type Player struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null;uniqueIndex:idx_players_owner_name"`
	OwnerUserID uint   `gorm:"not null;uniqueIndex:idx_players_owner_name;index"`
	Color       string
	AvatarURL   string

	Results []GameResult `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PlayerDAO struct {
	db *gorm.DB
}

func NewPlayerDAO(db *gorm.DB) *PlayerDAO {
	return &PlayerDAO{
		db: db,
	}
}

func (d *PlayerDAO) Insert(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Create(&player)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Player{}, ErrPlayerNameExists
		}

		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) FindByID(ctx context.Context, ownerUserID, id uint) (Player, error) {
	var player Player

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Player{}, ErrPlayerNotFound
		}

		return Player{}, result.Error
	}

	return player, nil
}

func (d *PlayerDAO) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]Player, error) {
	var players []Player

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("name ASC").
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (d *PlayerDAO) CountByOwner(ctx context.Context, ownerUserID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Player{}).
		Where("owner_user_id = ?", ownerUserID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *PlayerDAO) Update(ctx context.Context, player Player) (Player, error) {
	result := d.db.WithContext(ctx).Save(&player)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Player{}, ErrPlayerNameExists
		}

		return Player{}, result.Error
	}

	return player, nil
}

// Delete removes the player and its game results.
func (d *PlayerDAO) Delete(ctx context.Context, ownerUserID, id uint) error {
	player, err := d.FindByID(ctx, ownerUserID, id)
	if err != nil {
		return err
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", player.ID).Delete(&GameResult{}).Error; err != nil {
			return err
		}

		return tx.Delete(&player).Error
	})
	if err != nil {
		return err
	}

	return nil
}
