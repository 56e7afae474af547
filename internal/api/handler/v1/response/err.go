package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform error envelope. Every error response carries at least
// the "error" string; internal detail stays in the server log.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
	RetryAfter int    `json:"retryAfter,omitempty"`

	internal error
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Unauthorized",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "Invalid email or password",
		internal:   err,
	}
}

func ErrPermissionDenied(msg string) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        msg,
	}
}

// ErrNotFound hides whether the record is absent or owned by someone else.
func ErrNotFound(resource string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v not found", resource),
	}
}

func ErrNotFoundMsg(msg string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        msg,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        err.Error(),
	}
}

func ErrGone(msg string) *Err {
	return &Err{
		StatusCode: http.StatusGone,
		Msg:        msg,
	}
}

func ErrTooManyRequests(retryAfter int) *Err {
	return &Err{
		StatusCode: http.StatusTooManyRequests,
		Msg:        "Too many requests, please try again later.",
		RetryAfter: retryAfter,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "Something went wrong",
		internal:   err,
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.internal != nil {
		zap.L().Error("request failed",
			zap.Int("status", err.StatusCode),
			zap.String("path", ctx.FullPath()),
			zap.Error(err.internal),
		)
	}

	ctx.JSON(err.StatusCode, err)
}

// AbortErr renders the error and stops the middleware chain.
func AbortErr(ctx *gin.Context, err *Err) {
	RenderErr(ctx, err)
	ctx.Abort()
}
