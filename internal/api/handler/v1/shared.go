package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/request"
	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/service"
)

type ShareAuthorizer interface {
	Authorize(ctx context.Context, token string) (domain.ShareScope, error)
}

type SharedGameNightService interface {
	GetScopedGameNights(ctx context.Context, scope domain.ShareScope) ([]domain.GameNight, error)
	GetScopedGameNight(ctx context.Context, scope domain.ShareScope, id uint) (domain.GameNight, error)
	CreateVisitorComment(ctx context.Context, scope domain.ShareScope, gameNightID uint, content, authorName string) (domain.Comment, error)
}

// SharedHandler serves the read-only visitor surface behind share tokens.
// Token validity is re-checked on every request rather than cached, so
// deactivating a link cuts visitors off immediately.
type SharedHandler struct {
	auth     ShareAuthorizer
	nightSvc SharedGameNightService
	statsSvc StatsService
}

func NewSharedHandler(auth ShareAuthorizer, nightSvc SharedGameNightService, statsSvc StatsService) *SharedHandler {
	return &SharedHandler{
		auth:     auth,
		nightSvc: nightSvc,
		statsSvc: statsSvc,
	}
}

// The two visitor surfaces answer invalid tokens differently and clients
// depend on it: the stats page distinguishes a deactivated link (403) from an
// unknown one (404), while the game-night endpoints fold both into 404 and
// reserve 410 for expiry.
func renderStatsAuthErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShareLinkNotFound):
		response.RenderErr(ctx, response.ErrNotFoundMsg("Invalid share link"))
	case errors.Is(err, service.ErrShareLinkInactive):
		response.RenderErr(ctx, response.ErrPermissionDenied("This share link has been deactivated"))
	case errors.Is(err, service.ErrShareLinkExpired):
		response.RenderErr(ctx, response.ErrPermissionDenied("This share link has expired"))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func renderNightAuthErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShareLinkNotFound), errors.Is(err, service.ErrShareLinkInactive):
		response.RenderErr(ctx, response.ErrNotFoundMsg("Invalid or expired share link"))
	case errors.Is(err, service.ErrShareLinkExpired):
		response.RenderErr(ctx, response.ErrGone("Share link has expired"))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleSharedStats godoc
// @Summary      Aggregate statistics for a shared account view
// @Tags         shared
// @Produce      json
// @Param        token       path    string true  "share token"
// @Param        startDate   query   string false "inclusive lower bound, YYYY-MM-DD"
// @Param        endDate     query   string false "inclusive upper bound, YYYY-MM-DD"
// @Param        gameId      query   int    false "restrict to one game"
// @Param        playerId    query   int    false "restrict to one player"
// @Success      200 {object} domain.StatsReport
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /shared/{token}/stats [get]
func (h *SharedHandler) HandleSharedStats(ctx *gin.Context) {
	scope, err := h.auth.Authorize(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		renderStatsAuthErr(ctx, err)
		return
	}

	// Visitors cannot widen the scope; the link's group tag is authoritative.
	query := request.BindStatsQuery(ctx, false)
	filter, err := query.Filter()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	filter.GroupTag = scope.GroupTag

	report, err := h.statsSvc.ComputeStats(ctx.Request.Context(), scope.OwnerUserID, filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleSharedStats -> h.statsSvc.ComputeStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleSharedGameNights godoc
// @Summary      List game nights visible through a share link
// @Tags         shared
// @Produce      json
// @Param        token   path   string true "share token"
// @Success      200 {object} []domain.GameNight
// @Failure      404 {object} response.Err
// @Failure      410 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /shared/{token}/game-nights [get]
func (h *SharedHandler) HandleSharedGameNights(ctx *gin.Context) {
	scope, err := h.auth.Authorize(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		renderNightAuthErr(ctx, err)
		return
	}

	nights, err := h.nightSvc.GetScopedGameNights(ctx.Request.Context(), scope)
	if err != nil {
		err = fmt.Errorf("v1.HandleSharedGameNights -> h.nightSvc.GetScopedGameNights -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, nights)
}

// HandleSharedGameNight godoc
// @Summary      Get one game night visible through a share link
// @Tags         shared
// @Produce      json
// @Param        token   path   string true "share token"
// @Param        id      path   int    true "game night ID"
// @Success      200 {object} domain.GameNight
// @Failure      404 {object} response.Err
// @Failure      410 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /shared/{token}/game-nights/{id} [get]
func (h *SharedHandler) HandleSharedGameNight(ctx *gin.Context) {
	scope, err := h.auth.Authorize(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		renderNightAuthErr(ctx, err)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	night, err := h.nightSvc.GetScopedGameNight(ctx.Request.Context(), scope, id)
	if err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}

		err = fmt.Errorf("v1.HandleSharedGameNight -> h.nightSvc.GetScopedGameNight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, night)
}

// HandleSharedCreateComment godoc
// @Summary      Leave a visitor comment on a shared game night
// @Tags         shared
// @Produce      json
// @Param        token     path      string true "share token"
// @Param        id        path      int    true "game night ID"
// @Param        request   body      request.CreateVisitorCommentRequest true "request body"
// @Success      201      {object}   domain.Comment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      410      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /shared/{token}/game-nights/{id}/comments [post]
func (h *SharedHandler) HandleSharedCreateComment(ctx *gin.Context) {
	scope, err := h.auth.Authorize(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		renderNightAuthErr(ctx, err)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	var req request.CreateVisitorCommentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	comment, err := h.nightSvc.CreateVisitorComment(ctx.Request.Context(), scope, id, req.Content, req.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}

		err = fmt.Errorf("v1.HandleSharedCreateComment -> h.nightSvc.CreateVisitorComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
