package repository

import (
	"context"
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

var ErrShareLinkNotFound = dao.ErrShareLinkNotFound

type ShareLinkDAO interface {
	Insert(ctx context.Context, link dao.ShareLink) (dao.ShareLink, error)
	FindByToken(ctx context.Context, token string) (dao.ShareLink, error)
	FindByID(ctx context.Context, ownerUserID, id uint) (dao.ShareLink, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]dao.ShareLink, error)
	SetActive(ctx context.Context, ownerUserID, id uint, active bool) (dao.ShareLink, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
}

type ShareLinkRepository struct {
	dao ShareLinkDAO
}

func NewShareLinkRepository(dao ShareLinkDAO) *ShareLinkRepository {
	return &ShareLinkRepository{
		dao: dao,
	}
}

func (r *ShareLinkRepository) Create(ctx context.Context, link domain.ShareLink) (domain.ShareLink, error) {
	created, err := r.dao.Insert(ctx, dao.ShareLink{
		Token:       link.Token,
		OwnerUserID: link.OwnerUserID,
		Name:        link.Name,
		GroupTag:    link.GroupTag,
		IsActive:    link.IsActive,
		ExpiresAt:   link.ExpiresAt,
	})
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return linkDaoToDomain(created), nil
}

func (r *ShareLinkRepository) FindByToken(ctx context.Context, token string) (domain.ShareLink, error) {
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("r.dao.FindByToken -> %w", err)
	}

	return linkDaoToDomain(found), nil
}

func (r *ShareLinkRepository) FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.ShareLink, error) {
	found, err := r.dao.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByOwner -> %w", err)
	}

	links := make([]domain.ShareLink, len(found))
	for i, l := range found {
		links[i] = linkDaoToDomain(l)
	}

	return links, nil
}

func (r *ShareLinkRepository) SetActive(ctx context.Context, ownerUserID, id uint, active bool) (domain.ShareLink, error) {
	updated, err := r.dao.SetActive(ctx, ownerUserID, id, active)
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("r.dao.SetActive -> %w", err)
	}

	return linkDaoToDomain(updated), nil
}

func (r *ShareLinkRepository) Delete(ctx context.Context, ownerUserID, id uint) error {
	if err := r.dao.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func linkDaoToDomain(l dao.ShareLink) domain.ShareLink {
	return domain.ShareLink{
		ID:          l.ID,
		Token:       l.Token,
		OwnerUserID: l.OwnerUserID,
		Name:        l.Name,
		GroupTag:    l.GroupTag,
		IsActive:    l.IsActive,
		ExpiresAt:   l.ExpiresAt,
		CreatedAt:   l.CreatedAt,
	}
}
