package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type Comment struct {
	ID uint `gorm:"primaryKey"`

	Content string `gorm:"not null"`

	// AuthorName carries a share-link visitor's free-text display name.
	// Owner comments leave it empty.
	AuthorName string

	GameNightID   uint `gorm:"not null;index"`
	GameSessionID *uint

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		db: db,
	}
}

func (d *CommentDAO) Insert(ctx context.Context, comment Comment) (Comment, error) {
	result := d.db.WithContext(ctx).Create(&comment)
	if result.Error != nil {
		return Comment{}, result.Error
	}

	return comment, nil
}

// FindOwnedByID resolves a comment through its game night's owner, so a
// comment on another user's night is indistinguishable from a missing one.
func (d *CommentDAO) FindOwnedByID(ctx context.Context, ownerUserID, id uint) (Comment, error) {
	var comment Comment

	result := d.db.WithContext(ctx).
		Joins("JOIN game_nights ON game_nights.id = comments.game_night_id").
		Where("game_nights.owner_user_id = ?", ownerUserID).
		Where("comments.id = ?", id).
		First(&comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Comment{}, ErrCommentNotFound
		}

		return Comment{}, result.Error
	}

	return comment, nil
}

func (d *CommentDAO) Update(ctx context.Context, comment Comment) (Comment, error) {
	result := d.db.WithContext(ctx).
		Model(&Comment{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content)
	if result.Error != nil {
		return Comment{}, result.Error
	}

	var updated Comment
	if err := d.db.WithContext(ctx).First(&updated, comment.ID).Error; err != nil {
		return Comment{}, err
	}

	return updated, nil
}

func (d *CommentDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Delete(&Comment{}, id).Error
}
