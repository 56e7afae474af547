package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/service"
)

type stubAuthorizer struct {
	scope domain.ShareScope
	err   error
}

func (s *stubAuthorizer) Authorize(context.Context, string) (domain.ShareScope, error) {
	return s.scope, s.err
}

type stubNightService struct {
	nights []domain.GameNight
	night  domain.GameNight
	err    error
}

func (s *stubNightService) GetScopedGameNights(context.Context, domain.ShareScope) ([]domain.GameNight, error) {
	return s.nights, s.err
}

func (s *stubNightService) GetScopedGameNight(context.Context, domain.ShareScope, uint) (domain.GameNight, error) {
	return s.night, s.err
}

func (s *stubNightService) CreateVisitorComment(_ context.Context, _ domain.ShareScope, id uint, content, authorName string) (domain.Comment, error) {
	return domain.Comment{GameNightID: id, Content: content, AuthorName: authorName}, s.err
}

type stubStatsService struct {
	report domain.StatsReport
	filter domain.StatsFilter
}

func (s *stubStatsService) ComputeStats(_ context.Context, _ uint, filter domain.StatsFilter) (domain.StatsReport, error) {
	s.filter = filter
	return s.report, nil
}

func setupSharedRouter(auth ShareAuthorizer, nightSvc SharedGameNightService, statsSvc StatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewSharedHandler(auth, nightSvc, statsSvc)
	router.GET("/shared/:token/stats", handler.HandleSharedStats)
	router.GET("/shared/:token/game-nights", handler.HandleSharedGameNights)
	router.GET("/shared/:token/game-nights/:id", handler.HandleSharedGameNight)
	router.POST("/shared/:token/game-nights/:id/comments", handler.HandleSharedCreateComment)

	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	msg, _ := body["error"].(string)

	return msg
}

func TestSharedStats_TokenErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		authErr    error
		wantStatus int
		wantMsg    string
	}{
		{"unknown token", service.ErrShareLinkNotFound, http.StatusNotFound, "Invalid share link"},
		{"deactivated", service.ErrShareLinkInactive, http.StatusForbidden, "This share link has been deactivated"},
		{"expired", service.ErrShareLinkExpired, http.StatusForbidden, "This share link has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSharedRouter(&stubAuthorizer{err: tt.authErr}, &stubNightService{}, &stubStatsService{})

			recorder := performRequest(t, router, http.MethodGet, "/shared/tok/stats", "")

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, recorder))
		})
	}
}

func TestSharedGameNights_TokenErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		authErr    error
		wantStatus int
		wantMsg    string
	}{
		{"unknown token", service.ErrShareLinkNotFound, http.StatusNotFound, "Invalid or expired share link"},
		{"deactivated", service.ErrShareLinkInactive, http.StatusNotFound, "Invalid or expired share link"},
		{"expired", service.ErrShareLinkExpired, http.StatusGone, "Share link has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupSharedRouter(&stubAuthorizer{err: tt.authErr}, &stubNightService{}, &stubStatsService{})

			for _, target := range []string{
				"/shared/tok/game-nights",
				"/shared/tok/game-nights/1",
			} {
				recorder := performRequest(t, router, http.MethodGet, target, "")
				assert.Equal(t, tt.wantStatus, recorder.Code, target)
				assert.Equal(t, tt.wantMsg, errorMessage(t, recorder), target)
			}

			recorder := performRequest(t, router, http.MethodPost, "/shared/tok/game-nights/1/comments", `{"content":"hi"}`)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, recorder))
		})
	}
}

func TestSharedGameNight_ScopeMismatchReadsAsNotFound(t *testing.T) {
	router := setupSharedRouter(
		&stubAuthorizer{scope: domain.ShareScope{OwnerUserID: 1, GroupTag: "family"}},
		&stubNightService{err: service.ErrGameNightNotFound},
		&stubStatsService{},
	)

	recorder := performRequest(t, router, http.MethodGet, "/shared/tok/game-nights/42", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Game night not found", errorMessage(t, recorder))
}

func TestSharedStats_VisitorCannotOverrideGroupTag(t *testing.T) {
	statsSvc := &stubStatsService{}
	router := setupSharedRouter(
		&stubAuthorizer{scope: domain.ShareScope{OwnerUserID: 1, GroupTag: "family"}},
		&stubNightService{},
		statsSvc,
	)

	recorder := performRequest(t, router, http.MethodGet, "/shared/tok/stats?groupTag=work", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "family", statsSvc.filter.GroupTag)
}

func TestSharedStats_InvalidFilterRejected(t *testing.T) {
	router := setupSharedRouter(
		&stubAuthorizer{scope: domain.ShareScope{OwnerUserID: 1}},
		&stubNightService{},
		&stubStatsService{},
	)

	recorder := performRequest(t, router, http.MethodGet, "/shared/tok/stats?gameId=1&playerId=2", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSharedCreateComment_Validation(t *testing.T) {
	router := setupSharedRouter(
		&stubAuthorizer{scope: domain.ShareScope{OwnerUserID: 1}},
		&stubNightService{},
		&stubStatsService{},
	)

	recorder := performRequest(t, router, http.MethodPost, "/shared/tok/game-nights/1/comments", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = performRequest(t, router, http.MethodPost, "/shared/tok/game-nights/1/comments", `{"content":"hello","display_name":"Aunt Carol"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var comment domain.Comment
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &comment))
	assert.Equal(t, "Aunt Carol", comment.AuthorName)
	assert.Equal(t, "hello", comment.Content)
}
