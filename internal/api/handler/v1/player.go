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

type PlayerService interface {
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	GetPlayers(ctx context.Context, ownerUserID uint) ([]domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	DeletePlayer(ctx context.Context, ownerUserID, id uint) error
}

type PlayerHandler struct {
	svc PlayerService
}

func NewPlayerHandler(svc PlayerService) *PlayerHandler {
	return &PlayerHandler{
		svc: svc,
	}
}

// HandleCreatePlayer godoc
// @Summary      Create a player
// @Tags         players
// @Produce      json
// @Param        request   body      request.CreatePlayerRequest true "request body"
// @Success      201      {object}   domain.Player
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /players [post]
// @Security BearerAuth
func (h *PlayerHandler) HandleCreatePlayer(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreatePlayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	player, err := h.svc.CreatePlayer(ctx.Request.Context(), domain.Player{
		Name:        req.Name,
		Color:       req.Color,
		AvatarURL:   req.AvatarURL,
		OwnerUserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlayerNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrPlayerNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreatePlayer -> h.svc.CreatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, player)
}

// HandleListPlayers godoc
// @Summary      List the caller's players
// @Tags         players
// @Produce      json
// @Success      200 {object} []domain.Player
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /players [get]
// @Security BearerAuth
func (h *PlayerHandler) HandleListPlayers(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	players, err := h.svc.GetPlayers(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPlayers -> h.svc.GetPlayers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, players)
}

// HandleUpdatePlayer godoc
// @Summary      Update a player
// @Tags         players
// @Produce      json
// @Param        id        path      int true "player ID"
// @Param        request   body      request.UpdatePlayerRequest true "request body"
// @Success      200      {object}   domain.Player
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /players/{id} [put]
// @Security BearerAuth
func (h *PlayerHandler) HandleUpdatePlayer(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Player"))
		return
	}

	var req request.UpdatePlayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	player, err := h.svc.UpdatePlayer(ctx.Request.Context(), domain.Player{
		ID:          id,
		Name:        req.Name,
		Color:       req.Color,
		AvatarURL:   req.AvatarURL,
		OwnerUserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Player"))
			return
		}
		if errors.Is(err, service.ErrPlayerNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrPlayerNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdatePlayer -> h.svc.UpdatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, player)
}

// HandleDeletePlayer godoc
// @Summary      Delete a player and their recorded results
// @Tags         players
// @Produce      json
// @Param        id   path   int true "player ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /players/{id} [delete]
// @Security BearerAuth
func (h *PlayerHandler) HandleDeletePlayer(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Player"))
		return
	}

	if err := h.svc.DeletePlayer(ctx.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Player"))
			return
		}

		err = fmt.Errorf("v1.HandleDeletePlayer -> h.svc.DeletePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
