package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
	"github.com/gamenighthq/gamenight-api/internal/api/middleware"
	"github.com/gamenighthq/gamenight-api/internal/domain"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func userFromContext(ctx *gin.Context) (domain.User, *response.Err) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		return domain.User{}, response.ErrUnauthorized()
	}

	return user, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}

	return uint(value), true
}
