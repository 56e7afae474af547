package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository"
)

var (
	ErrShareLinkNotFound = repository.ErrShareLinkNotFound
	ErrShareLinkInactive = errors.New("share link is deactivated")
	ErrShareLinkExpired  = errors.New("share link has expired")
)

type ShareLinkRepository interface {
	Create(ctx context.Context, link domain.ShareLink) (domain.ShareLink, error)
	FindByToken(ctx context.Context, token string) (domain.ShareLink, error)
	FindAllByOwner(ctx context.Context, ownerUserID uint) ([]domain.ShareLink, error)
	SetActive(ctx context.Context, ownerUserID, id uint, active bool) (domain.ShareLink, error)
	Delete(ctx context.Context, ownerUserID, id uint) error
}

type ShareLinkService struct {
	repo ShareLinkRepository
	now  func() time.Time
}

func NewShareLinkService(repo ShareLinkRepository) *ShareLinkService {
	return &ShareLinkService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *ShareLinkService) CreateShareLink(ctx context.Context, link domain.ShareLink) (domain.ShareLink, error) {
	token, err := generateToken()
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("generateToken -> %w", err)
	}

	link.Token = token
	link.IsActive = true

	created, err := s.repo.Create(ctx, link)
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ShareLinkService) GetShareLinks(ctx context.Context, ownerUserID uint) ([]domain.ShareLink, error) {
	links, err := s.repo.FindAllByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByOwner -> %w", err)
	}

	return links, nil
}

func (s *ShareLinkService) SetShareLinkActive(ctx context.Context, ownerUserID, id uint, active bool) (domain.ShareLink, error) {
	updated, err := s.repo.SetActive(ctx, ownerUserID, id, active)
	if err != nil {
		return domain.ShareLink{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return updated, nil
}

func (s *ShareLinkService) DeleteShareLink(ctx context.Context, ownerUserID, id uint) error {
	if err := s.repo.Delete(ctx, ownerUserID, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Authorize validates a visitor's token and yields the read scope it grants.
// Validity is re-evaluated on every call: lookup first, then the active
// flag, then the advisory expiry. Expiry wins over an active flag that was
// never cleared.
func (s *ShareLinkService) Authorize(ctx context.Context, token string) (domain.ShareScope, error) {
	link, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrShareLinkNotFound) {
			return domain.ShareScope{}, ErrShareLinkNotFound
		}

		return domain.ShareScope{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	if !link.IsActive {
		return domain.ShareScope{}, ErrShareLinkInactive
	}

	if link.Expired(s.now()) {
		return domain.ShareScope{}, ErrShareLinkExpired
	}

	return domain.ShareScope{
		OwnerUserID: link.OwnerUserID,
		GroupTag:    link.GroupTag,
	}, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
