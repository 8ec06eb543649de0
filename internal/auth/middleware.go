package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"spendtrack/internal/errors"
	"spendtrack/internal/model"
)

// Middleware returns the bearer-token middleware for guarded routes. Token
// extraction and validation are delegated to the JWT service; any failing
// credential yields 401 before any handler logic runs, with the message
// telling apart an absent header from a malformed or expired token.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := "Unauthorized: Invalid token"
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				msg = "Unauthorized: Missing token"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: msg,
			})
		},
	})
}

// ClaimsFromContext extracts the decoded token claims attached by Middleware.
// The second return is false when no valid token was attached.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get("user").(*Claims)
	return claims, ok
}

// RequireAdmin rejects requests whose token role claim is not ADMIN. It must
// run after Middleware has validated the token.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Unauthorized: Missing token",
			})
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "Forbidden: Admin access required",
			})
		}
		return next(c)
	}
}
