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

type ShareLinkService interface {
	CreateShareLink(ctx context.Context, link domain.ShareLink) (domain.ShareLink, error)
	GetShareLinks(ctx context.Context, ownerUserID uint) ([]domain.ShareLink, error)
	SetShareLinkActive(ctx context.Context, ownerUserID, id uint, active bool) (domain.ShareLink, error)
	DeleteShareLink(ctx context.Context, ownerUserID, id uint) error
}

type ShareLinkHandler struct {
	svc ShareLinkService
}

func NewShareLinkHandler(svc ShareLinkService) *ShareLinkHandler {
	return &ShareLinkHandler{
		svc: svc,
	}
}

// HandleCreateShareLink godoc
// @Summary      Create a share link
// @Tags         share-links
// @Produce      json
// @Param        request   body      request.CreateShareLinkRequest true "request body"
// @Success      201      {object}   domain.ShareLink
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /share-links [post]
// @Security BearerAuth
func (h *ShareLinkHandler) HandleCreateShareLink(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateShareLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	link, err := h.svc.CreateShareLink(ctx.Request.Context(), domain.ShareLink{
		OwnerUserID: user.ID,
		Name:        req.Name,
		GroupTag:    req.GroupTag,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateShareLink -> h.svc.CreateShareLink -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, link)
}

// HandleListShareLinks godoc
// @Summary      List the caller's share links
// @Tags         share-links
// @Produce      json
// @Success      200 {object} []domain.ShareLink
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /share-links [get]
// @Security BearerAuth
func (h *ShareLinkHandler) HandleListShareLinks(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	links, err := h.svc.GetShareLinks(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListShareLinks -> h.svc.GetShareLinks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, links)
}

// HandleUpdateShareLink godoc
// @Summary      Activate or deactivate a share link
// @Tags         share-links
// @Produce      json
// @Param        id        path      int true "share link ID"
// @Param        request   body      request.UpdateShareLinkRequest true "request body"
// @Success      200      {object}   domain.ShareLink
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /share-links/{id} [patch]
// @Security BearerAuth
func (h *ShareLinkHandler) HandleUpdateShareLink(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Share link"))
		return
	}

	var req request.UpdateShareLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	link, err := h.svc.SetShareLinkActive(ctx.Request.Context(), user.ID, id, *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrShareLinkNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Share link"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateShareLink -> h.svc.SetShareLinkActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, link)
}

// HandleDeleteShareLink godoc
// @Summary      Delete a share link
// @Tags         share-links
// @Produce      json
// @Param        id   path   int true "share link ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /share-links/{id} [delete]
// @Security BearerAuth
func (h *ShareLinkHandler) HandleDeleteShareLink(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Share link"))
		return
	}

	if err := h.svc.DeleteShareLink(ctx.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrShareLinkNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Share link"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteShareLink -> h.svc.DeleteShareLink -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
