package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gamenighthq/gamenight-api/internal/api/handler/v1/response"
	"github.com/gamenighthq/gamenight-api/internal/domain"
	"github.com/gamenighthq/gamenight-api/internal/pkg/jwthelper"
)

const (
	// ContextKeyUser holds the resolved domain.User for the request.
	ContextKeyUser = "user"
)

type IdentityResolver interface {
	Resolve(ctx context.Context, subject, email, name string) (domain.User, error)
}

// Authenticator verifies bearer tokens and resolves them to a local user
// row, provisioning the row on first sight.
type Authenticator struct {
	signingKey []byte
	identity   IdentityResolver
}

func NewAuthenticator(signingKey string, identity IdentityResolver) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		identity:   identity,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortErr(ctx, response.ErrUnauthorized())
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.AbortErr(ctx, response.ErrUnauthorized())
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, parts[1])
		if err != nil {
			response.AbortErr(ctx, response.ErrUnauthorized())
			return
		}

		// A storage failure here must not read as "anonymous".
		user, err := a.identity.Resolve(ctx.Request.Context(), claims.Subject, claims.Email, claims.Name)
		if err != nil {
			response.AbortErr(ctx, response.ErrInternalServerError(err))
			return
		}

		ctx.Set(ContextKeyUser, user)
		ctx.Next()
	}
}

// UserFromContext returns the authenticated user set by VerifyJWT.
func UserFromContext(ctx *gin.Context) (domain.User, bool) {
	value, exists := ctx.Get(ContextKeyUser)
	if !exists {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)

	return user, ok
}
