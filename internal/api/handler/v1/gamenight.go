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

type GameNightService interface {
	CreateGameNight(ctx context.Context, night domain.GameNight) (domain.GameNight, error)
	GetGameNights(ctx context.Context, ownerUserID uint, groupTag string) ([]domain.GameNight, error)
	GetGameNight(ctx context.Context, ownerUserID, id uint) (domain.GameNight, error)
	UpdateGameNight(ctx context.Context, night domain.GameNight) (domain.GameNight, error)
	DeleteGameNight(ctx context.Context, ownerUserID, id uint) error
	RecordSession(ctx context.Context, ownerUserID, gameNightID uint, gameName string, results []domain.GameResult) (domain.GameSession, error)
	DeleteSession(ctx context.Context, ownerUserID, gameNightID, sessionID uint) error
	CreateComment(ctx context.Context, ownerUserID uint, comment domain.Comment) (domain.Comment, error)
	UpdateComment(ctx context.Context, ownerUserID, commentID uint, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, ownerUserID, commentID uint) error
	GetGames(ctx context.Context, ownerUserID uint) ([]domain.Game, error)
	DeleteGame(ctx context.Context, ownerUserID, id uint) error
}

type GameNightHandler struct {
	svc GameNightService
}

func NewGameNightHandler(svc GameNightService) *GameNightHandler {
	return &GameNightHandler{
		svc: svc,
	}
}

// HandleCreateGameNight godoc
// @Summary      Create a game night
// @Tags         game-nights
// @Produce      json
// @Param        request   body      request.CreateGameNightRequest true "request body"
// @Success      201      {object}   domain.GameNight
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /game-nights [post]
// @Security BearerAuth
func (h *GameNightHandler) HandleCreateGameNight(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateGameNightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	night, err := h.svc.CreateGameNight(ctx.Request.Context(), domain.GameNight{
		Name:        req.Name,
		Date:        req.ParsedDate(),
		GroupTag:    req.GroupTag,
		OwnerUserID: user.ID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateGameNight -> h.svc.CreateGameNight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, night)
}

// HandleListGameNights godoc
// @Summary      List the caller's game nights
// @Tags         game-nights
// @Produce      json
// @Param        groupTag   query     string false "filter by group tag"
// @Success      200 {object} []domain.GameNight
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /game-nights [get]
// @Security BearerAuth
func (h *GameNightHandler) HandleListGameNights(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	nights, err := h.svc.GetGameNights(ctx.Request.Context(), user.ID, ctx.Query("groupTag"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListGameNights -> h.svc.GetGameNights -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, nights)
}

// HandleGetGameNight godoc
// @Summary      Get one game night with sessions, results and comments
// @Tags         game-nights
// @Produce      json
// @Param        id   path   int true "game night ID"
// @Success      200 {object} domain.GameNight
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /game-nights/{id} [get]
// @Security BearerAuth
func (h *GameNightHandler) HandleGetGameNight(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	night, err := h.svc.GetGameNight(ctx.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}

		err = fmt.Errorf("v1.HandleGetGameNight -> h.svc.GetGameNight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, night)
}

// HandleUpdateGameNight godoc
// @Summary      Update a game night
// @Tags         game-nights
// @Produce      json
// @Param        id        path      int true "game night ID"
// @Param        request   body      request.UpdateGameNightRequest true "request body"
// @Success      200      {object}   domain.GameNight
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /game-nights/{id} [put]
// @Security BearerAuth
func (h *GameNightHandler) HandleUpdateGameNight(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	var req request.UpdateGameNightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	night, err := h.svc.UpdateGameNight(ctx.Request.Context(), domain.GameNight{
		ID:          id,
		Name:        req.Name,
		Date:        req.ParsedDate(),
		GroupTag:    req.GroupTag,
		OwnerUserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateGameNight -> h.svc.UpdateGameNight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, night)
}

// HandleDeleteGameNight godoc
// @Summary      Delete a game night and everything recorded under it
// @Tags         game-nights
// @Produce      json
// @Param        id   path   int true "game night ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /game-nights/{id} [delete]
// @Security BearerAuth
func (h *GameNightHandler) HandleDeleteGameNight(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	if err := h.svc.DeleteGameNight(ctx.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteGameNight -> h.svc.DeleteGameNight -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRecordSession godoc
// @Summary      Record a game session within a game night
// @Tags         game-nights
// @Produce      json
// @Param        id        path      int true "game night ID"
// @Param        request   body      request.RecordSessionRequest true "request body"
// @Success      201      {object}   domain.GameSession
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /game-nights/{id}/sessions [post]
// @Security BearerAuth
func (h *GameNightHandler) HandleRecordSession(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	var req request.RecordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	results := make([]domain.GameResult, len(req.Results))
	for i, result := range req.Results {
		results[i] = domain.GameResult{
			PlayerID: result.PlayerID,
			Position: result.Position,
			Points:   result.Points,
			IsWinner: result.IsWinner,
		}
	}

	session, err := h.svc.RecordSession(ctx.Request.Context(), user.ID, id, req.GameName, results)
	if err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}
		if errors.Is(err, service.ErrResultPlayerInvalid) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrResultPlayerInvalid))
			return
		}

		err = fmt.Errorf("v1.HandleRecordSession -> h.svc.RecordSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

// HandleDeleteSession godoc
// @Summary      Delete a recorded session and its results
// @Tags         game-nights
// @Produce      json
// @Param        id          path   int true "game night ID"
// @Param        sessionId   path   int true "session ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /game-nights/{id}/sessions/{sessionId} [delete]
// @Security BearerAuth
func (h *GameNightHandler) HandleDeleteSession(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	sessionID, ok := parseUintParam(ctx, "sessionId")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game session"))
		return
	}

	if err := h.svc.DeleteSession(ctx.Request.Context(), user.ID, id, sessionID); err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}
		if errors.Is(err, service.ErrGameSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game session"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteSession -> h.svc.DeleteSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateComment godoc
// @Summary      Comment on a game night
// @Tags         comments
// @Produce      json
// @Param        id        path      int true "game night ID"
// @Param        request   body      request.CreateCommentRequest true "request body"
// @Success      201      {object}   domain.Comment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /game-nights/{id}/comments [post]
// @Security BearerAuth
func (h *GameNightHandler) HandleCreateComment(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game night"))
		return
	}

	var req request.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	comment, err := h.svc.CreateComment(ctx.Request.Context(), user.ID, domain.Comment{
		Content:       req.Content,
		GameNightID:   id,
		GameSessionID: req.GameSessionID,
	})
	if err != nil {
		if errors.Is(err, service.ErrGameNightNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game night"))
			return
		}
		if errors.Is(err, service.ErrGameSessionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game session"))
			return
		}

		err = fmt.Errorf("v1.HandleCreateComment -> h.svc.CreateComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// HandleUpdateComment godoc
// @Summary      Edit a comment on one of the caller's game nights
// @Tags         comments
// @Produce      json
// @Param        id        path      int true "comment ID"
// @Param        request   body      request.UpdateCommentRequest true "request body"
// @Success      200      {object}   domain.Comment
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /comments/{id} [put]
// @Security BearerAuth
func (h *GameNightHandler) HandleUpdateComment(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Comment"))
		return
	}

	var req request.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	comment, err := h.svc.UpdateComment(ctx.Request.Context(), user.ID, id, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Comment"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateComment -> h.svc.UpdateComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

// HandleDeleteComment godoc
// @Summary      Delete a comment on one of the caller's game nights
// @Tags         comments
// @Produce      json
// @Param        id   path   int true "comment ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /comments/{id} [delete]
// @Security BearerAuth
func (h *GameNightHandler) HandleDeleteComment(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Comment"))
		return
	}

	if err := h.svc.DeleteComment(ctx.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Comment"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteComment -> h.svc.DeleteComment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListGames godoc
// @Summary      List the caller's game catalog
// @Tags         games
// @Produce      json
// @Success      200 {object} []domain.Game
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /games [get]
// @Security BearerAuth
func (h *GameNightHandler) HandleListGames(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	games, err := h.svc.GetGames(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListGames -> h.svc.GetGames -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, games)
}

// HandleDeleteGame godoc
// @Summary      Delete a game from the catalog
// @Tags         games
// @Produce      json
// @Param        id   path   int true "game ID"
// @Success      204
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /games/{id} [delete]
// @Security BearerAuth
func (h *GameNightHandler) HandleDeleteGame(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, ok := parseUintParam(ctx, "id")
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("Game"))
		return
	}

	if err := h.svc.DeleteGame(ctx.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Game"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteGame -> h.svc.DeleteGame -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
