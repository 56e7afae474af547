package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/request"
	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
	"github.com/gamenighthq/gamenight-api/internal/domain"
)

type StatsService interface {
	ComputeStats(ctx context.Context, ownerUserID uint, filter domain.StatsFilter) (domain.StatsReport, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGetStats godoc
// @Summary      Aggregate statistics over the caller's recorded results
// @Tags         stats
// @Produce      json
// @Param        startDate   query   string false "inclusive lower bound, YYYY-MM-DD"
// @Param        endDate     query   string false "inclusive upper bound, YYYY-MM-DD"
// @Param        gameId      query   int    false "restrict to one game"
// @Param        playerId    query   int    false "restrict to one player"
// @Param        groupTag    query   string false "restrict to one group tag"
// @Success      200 {object} domain.StatsReport
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /stats [get]
// @Security BearerAuth
func (h *StatsHandler) HandleGetStats(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	query := request.BindStatsQuery(ctx, true)
	filter, err := query.Filter()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.svc.ComputeStats(ctx.Request.Context(), user.ID, filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.ComputeStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}
