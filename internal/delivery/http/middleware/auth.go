package middleware

import (
	"strings"

	deliverycontext "petverse/internal/delivery/context"
	"petverse/internal/delivery/http/response"
	"petverse/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const contextKeyClaims = "claims"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware. A nil token service disables authentication.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Enabled reports whether tokens are checked at all.
func (m *AuthMiddleware) Enabled() bool {
	return m.tokenSvc != nil
}

// Authenticate validates the bearer access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(contextKeyClaims, claims)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithActor(c.Request().Context(), claims.Subject, nil)))

		return next(c)
	}
}

// RequireRole checks the authenticated roles. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(contextKeyClaims).(*service.Claims)
			if !ok {
				return response.Forbidden(c, "Permission denied: role information missing")
			}

			if !claims.HasRole(requiredRole) {
				return response.Forbidden(c, "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}
