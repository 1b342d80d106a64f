package http

import (
	"net/http"
	"strings"

	"bookstore/internal/core/domain/model/user"
	"bookstore/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

// requireAuth validates the bearer token and stores the claims on the
// request context for downstream handlers.
func requireAuth(tokens auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			rawToken, found := strings.CutPrefix(header, "Bearer ")
			if !found || rawToken == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := tokens.Validate(rawToken)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// requireAdmin rejects authenticated requests whose token does not carry
// the admin role. Must run after requireAuth.
func requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, ok := ctx.Get(claimsContextKey).(auth.Claims)
			if !ok || claims.Role != user.RoleAdmin.String() {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "admin role required",
				})
			}
			return next(ctx)
		}
	}
}

// claimsFrom extracts the authenticated identity placed by requireAuth.
func claimsFrom(ctx echo.Context) (auth.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(auth.Claims)
	return claims, ok
}
