package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

func TestResolve_ProvisionsOnFirstSight(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repository.NewUserRepository(dao.NewUserDAO(db)))
	ctx := context.Background()

	user, err := svc.Resolve(ctx, "sub-1", "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	// The same subject always resolves to the same row.
	again, err := svc.Resolve(ctx, "sub-1", "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestResolve_RefreshesProfileClaims(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repository.NewUserRepository(dao.NewUserDAO(db)))
	ctx := context.Background()

	user, err := svc.Resolve(ctx, "sub-1", "old@example.com", "Old Name")
	require.NoError(t, err)

	updated, err := svc.Resolve(ctx, "sub-1", "new@example.com", "New Name")
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "New Name", updated.Name)
}

func TestResolve_DistinctSubjectsDistinctRows(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repository.NewUserRepository(dao.NewUserDAO(db)))
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "sub-1", "a@example.com", "A")
	require.NoError(t, err)
	second, err := svc.Resolve(ctx, "sub-2", "b@example.com", "B")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := NewAuthService(repo)
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{Email: "alice@example.com", Name: "Alice"}, "passw0rd1")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = svc.Signup(ctx, domain.User{Email: "alice@example.com", Name: "Alice 2"}, "passw0rd1")
	assert.ErrorIs(t, err, ErrUserEmailExists)

	user, err := svc.Login(ctx, "alice@example.com", "passw0rd1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "passw0rd1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
