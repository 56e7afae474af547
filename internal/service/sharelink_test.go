package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/repository"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
)

func newShareLinkService(t *testing.T) (*ShareLinkService, context.Context) {
	t.Helper()

	db := setupTestDB(t)
	repo := repository.NewShareLinkRepository(dao.NewShareLinkDAO(db))

	return NewShareLinkService(repo), context.Background()
}

func TestCreateShareLink_GeneratesUniqueActiveTokens(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	first, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 1, Name: "Friends"})
	require.NoError(t, err)
	second, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 1, Name: "Family"})
	require.NoError(t, err)

	assert.True(t, first.IsActive)
	assert.NotEmpty(t, first.Token)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestAuthorize_ValidToken(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	link, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 7, GroupTag: "family"})
	require.NoError(t, err)

	scope, err := svc.Authorize(ctx, link.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), scope.OwnerUserID)
	assert.Equal(t, "family", scope.GroupTag)
}

func TestAuthorize_UnknownToken(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	_, err := svc.Authorize(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrShareLinkNotFound)
}

func TestAuthorize_DeactivatedThenReactivated(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	link, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 1})
	require.NoError(t, err)

	_, err = svc.SetShareLinkActive(ctx, 1, link.ID, false)
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, link.Token)
	assert.ErrorIs(t, err, ErrShareLinkInactive)

	// Reactivating restores access with the same token.
	_, err = svc.SetShareLinkActive(ctx, 1, link.ID, true)
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, link.Token)
	assert.NoError(t, err)
}

func TestAuthorize_ExpiryWinsOverActiveFlag(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	expiresAt := time.Now().Add(time.Hour)
	link, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 1, ExpiresAt: &expiresAt})
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, link.Token)
	require.NoError(t, err)

	// Move the clock past the expiry; the active flag was never cleared.
	svc.now = func() time.Time { return expiresAt.Add(time.Minute) }

	_, err = svc.Authorize(ctx, link.Token)
	assert.ErrorIs(t, err, ErrShareLinkExpired)
}

func TestAuthorize_InactiveBeatsExpired(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	expiresAt := time.Now().Add(time.Hour)
	link, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 1, ExpiresAt: &expiresAt})
	require.NoError(t, err)

	_, err = svc.SetShareLinkActive(ctx, 1, link.ID, false)
	require.NoError(t, err)
	svc.now = func() time.Time { return expiresAt.Add(time.Minute) }

	// The active flag is checked before the expiry.
	_, err = svc.Authorize(ctx, link.Token)
	assert.ErrorIs(t, err, ErrShareLinkInactive)
}

func TestShareLinks_OwnerScoping(t *testing.T) {
	svc, ctx := newShareLinkService(t)

	link, err := svc.CreateShareLink(ctx, domain.ShareLink{OwnerUserID: 1})
	require.NoError(t, err)

	// Another owner cannot toggle or delete the link.
	_, err = svc.SetShareLinkActive(ctx, 2, link.ID, false)
	assert.ErrorIs(t, err, ErrShareLinkNotFound)
	err = svc.DeleteShareLink(ctx, 2, link.ID)
	assert.ErrorIs(t, err, ErrShareLinkNotFound)

	links, err := svc.GetShareLinks(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, links)

	err = svc.DeleteShareLink(ctx, 1, link.ID)
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, link.Token)
	assert.ErrorIs(t, err, ErrShareLinkNotFound)
}
