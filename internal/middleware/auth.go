package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextUserIDKey is where Authenticate stores the caller's user id.
const ContextUserIDKey = "user_id"

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Authenticate is a bearer-token gate. Requests without a valid token are
// rejected with 401 before reaching the handler.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "you are not logged in")
			}
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserIDKey, claims.UserID)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id, or 0 on unauthenticated
// routes.
func UserID(c echo.Context) uint {
	id, _ := c.Get(ContextUserIDKey).(uint)
	return id
}
