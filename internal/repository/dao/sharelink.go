package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrShareLinkNotFound = errors.New("share link not found")

type ShareLink struct {
	ID uint `gorm:"primaryKey"`

	Token       string `gorm:"uniqueIndex;not null"`
	OwnerUserID uint   `gorm:"not null;index"`
	Name        string
	GroupTag    string
	IsActive    bool `gorm:"not null;default:true"`
	ExpiresAt   *time.Time

	CreatedAt time.Time `gorm:"not null"`
}

type ShareLinkDAO struct {
	db *gorm.DB
}

func NewShareLinkDAO(db *gorm.DB) *ShareLinkDAO {
	return &ShareLinkDAO{
		db: db,
	}
}

func (d *ShareLinkDAO) Insert(ctx context.Context, link ShareLink) (ShareLink, error) {
	result := d.db.WithContext(ctx).Create(&link)
	if result.Error != nil {
		return ShareLink{}, result.Error
	}

	return link, nil
}

func (d *ShareLinkDAO) FindByToken(ctx context.Context, token string) (ShareLink, error) {
	var link ShareLink

	result := d.db.WithContext(ctx).First(&link, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ShareLink{}, ErrShareLinkNotFound
		}

		return ShareLink{}, result.Error
	}

	return link, nil
}

func (d *ShareLinkDAO) FindByID(ctx context.Context, ownerUserID, id uint) (ShareLink, error) {
	var link ShareLink

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		First(&link, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ShareLink{}, ErrShareLinkNotFound
		}

		return ShareLink{}, result.Error
	}

	return link, nil
}

func (d *ShareLinkDAO) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]ShareLink, error) {
	var links []ShareLink

	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

func (d *ShareLinkDAO) SetActive(ctx context.Context, ownerUserID, id uint, active bool) (ShareLink, error) {
	result := d.db.WithContext(ctx).
		Model(&ShareLink{}).
		Where("id = ? AND owner_user_id = ?", id, ownerUserID).
		Update("is_active", active)
	if result.Error != nil {
		return ShareLink{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ShareLink{}, ErrShareLinkNotFound
	}

	return d.FindByID(ctx, ownerUserID, id)
}

func (d *ShareLinkDAO) Delete(ctx context.Context, ownerUserID, id uint) error {
	result := d.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Delete(&ShareLink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShareLinkNotFound
	}

	return nil
}
