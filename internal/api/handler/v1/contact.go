package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/request"
	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
)

type ContactService interface {
	SubmitContact(name, email, subject, message string) error
}

type ContactHandler struct {
	svc ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{
		svc: svc,
	}
}

// HandleSubmitContact godoc
// @Summary      Submit the contact form
// @Tags         contact
// @Produce      json
// @Param        request   body      request.ContactRequest true "request body"
// @Success      202      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /contact [post]
func (h *ContactHandler) HandleSubmitContact(ctx *gin.Context) {
	var req request.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.SubmitContact(req.Name, req.Email, req.Subject, req.Message); err != nil {
		err = fmt.Errorf("v1.HandleSubmitContact -> h.svc.SubmitContact -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
