package middleware

import (
	"net/http"
	"todomac/infras/jwt"
	"todomac/infras/otel"
	"todomac/shared/constant"
	"todomac/shared/failure"
	"todomac/shared/security"
	"todomac/transport/http/response"
)

// Auth resolves the caller's user context before any todo handler runs.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	resolver security.Resolver
	otel     otel.Otel
}

func NewAuthMiddleware(resolver security.Resolver, otel otel.Otel) Auth {
	return &authImpl{
		resolver: resolver,
		otel:     otel,
	}
}

// tokenFromRequest prefers "Authorization: Bearer <token>" and falls back to X-Auth-Token.
func tokenFromRequest(request *http.Request) (string, error) {
	if header := request.Header.Get(constant.RequestHeaderAuthorization); header != "" {
		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			return "", failure.Unauthorized("Invalid authorization header format") // nolint:wrapcheck
		}

		return token, nil
	}

	if token := request.Header.Get(constant.RequestHeaderAuthToken); token != "" {
		return token, nil
	}

	return "", failure.MissingToken
}

func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		token, err := tokenFromRequest(request)
		if err != nil {
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		utx, err := m.resolver.Resolve(ctx, token)
		if err != nil {
			err = failure.Unauthorized(err.Error())

			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute(constant.OtelUserIDAttributeKey, utx.UserID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(security.WithUserCtx(request.Context(), utx)))
	})
}
