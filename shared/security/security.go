// Package security resolves the per-request user context from an auth token.
package security

import (
	"context"
	"fmt"
	"strconv"
	"todomac/config"
	"todomac/infras/jwt"
	"todomac/shared/constant"

	"github.com/rs/zerolog/log"
)

// UserCtx identifies the caller. The todo store stamps UserID into cid and mid.
type UserCtx struct {
	UserID int64
}

type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %s", e.Token)
}

type Resolver interface {
	Resolve(ctx context.Context, token string) (UserCtx, error)
}

// NumericResolver treats the token itself as the decimal user id. Not for production use.
type NumericResolver struct{}

func (NumericResolver) Resolve(_ context.Context, token string) (UserCtx, error) {
	return UtxFromToken(token)
}

func UtxFromToken(token string) (UserCtx, error) {
	userID, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return UserCtx{}, &InvalidTokenError{Token: token}
	}

	return UserCtx{UserID: userID}, nil
}

// JWTResolver reads the user id from a signed access token.
type JWTResolver struct {
	jwt jwt.JWT
}

func NewJWTResolver(j jwt.JWT) *JWTResolver {
	return &JWTResolver{jwt: j}
}

func (r *JWTResolver) Resolve(_ context.Context, token string) (UserCtx, error) {
	claims, err := r.jwt.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected access token")

		return UserCtx{}, &InvalidTokenError{Token: token}
	}

	return UserCtx{UserID: claims.UserID}, nil
}

func NewResolver(cfg *config.Config, j jwt.JWT) Resolver {
	switch cfg.App.AuthMode {
	case constant.AuthModeJWT:
		return NewJWTResolver(j)
	default:
		if cfg.IsProduction() {
			log.Warn().Msg("numeric token resolver is enabled in production")
		}

		return NumericResolver{}
	}
}

type userCtxKey struct{}

func WithUserCtx(ctx context.Context, utx UserCtx) context.Context {
	return context.WithValue(ctx, userCtxKey{}, utx)
}

func FromContext(ctx context.Context) (UserCtx, bool) {
	utx, ok := ctx.Value(userCtxKey{}).(UserCtx)

	return utx, ok
}
