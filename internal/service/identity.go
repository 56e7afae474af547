package service

import (
	"context"
	"fmt"

	"github.com/gamenighthq/gamenight-api/internal/domain"
)

type IdentityUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	Upsert(ctx context.Context, user domain.User) (domain.User, error)
}

// IdentityService maps a verified token's claims to the local user row,
// provisioning the row lazily on first sight. Persistence failures propagate
// so callers never mistake a storage outage for an anonymous request.
type IdentityService struct {
	repo IdentityUserRepository
}

func NewIdentityService(repo IdentityUserRepository) *IdentityService {
	return &IdentityService{
		repo: repo,
	}
}

func (s *IdentityService) Resolve(ctx context.Context, subject, email, name string) (domain.User, error) {
	user, err := s.repo.Upsert(ctx, domain.User{
		ExternalID: subject,
		Email:      email,
		Name:       name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return user, nil
}

func (s *IdentityService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}
