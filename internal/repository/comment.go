package repository

import (
	"context"
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

var ErrCommentNotFound = dao.ErrCommentNotFound

type CommentDAO interface {
	Insert(ctx context.Context, comment dao.Comment) (dao.Comment, error)
	FindOwnedByID(ctx context.Context, ownerUserID, id uint) (dao.Comment, error)
	Update(ctx context.Context, comment dao.Comment) (dao.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentRepository struct {
	dao CommentDAO
}

func NewCommentRepository(dao CommentDAO) *CommentRepository {
	return &CommentRepository{
		dao: dao,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	created, err := r.dao.Insert(ctx, dao.Comment{
		Content:       comment.Content,
		AuthorName:    comment.AuthorName,
		GameNightID:   comment.GameNightID,
		GameSessionID: comment.GameSessionID,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return commentDaoToDomain(created), nil
}

func (r *CommentRepository) FindOwnedByID(ctx context.Context, ownerUserID, id uint) (domain.Comment, error) {
	found, err := r.dao.FindOwnedByID(ctx, ownerUserID, id)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.FindOwnedByID -> %w", err)
	}

	return commentDaoToDomain(found), nil
}

func (r *CommentRepository) Update(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	updated, err := r.dao.Update(ctx, dao.Comment{
		ID:      comment.ID,
		Content: comment.Content,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return commentDaoToDomain(updated), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func commentDaoToDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:            c.ID,
		Content:       c.Content,
		AuthorName:    c.AuthorName,
		GameNightID:   c.GameNightID,
		GameSessionID: c.GameSessionID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
