package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
	"github.com/gamenighthq/gamenight-api/internal/domain"
)

type ExportService interface {
	BuildExport(ctx context.Context, ownerUserID uint) (domain.ExportDocument, error)
}

type ExportHandler struct {
	svc ExportService
}

func NewExportHandler(svc ExportService) *ExportHandler {
	return &ExportHandler{
		svc: svc,
	}
}

// HandleExport godoc
// @Summary      Download the caller's full account data as JSON
// @Tags         export
// @Produce      json
// @Success      200 {object} domain.ExportDocument
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /export [get]
// @Security BearerAuth
func (h *ExportHandler) HandleExport(ctx *gin.Context) {
	user, respErr := userFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	doc, err := h.svc.BuildExport(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleExport -> h.svc.BuildExport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename := fmt.Sprintf("gamenight-export-%v.json", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, doc)
}
