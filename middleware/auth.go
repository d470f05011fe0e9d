package middleware

import (
	"net/http"
	"strings"

	"github.com/babyfoodstore/babyfood-backend-go/auth"
	"github.com/labstack/echo/v4"
)

// Auth validates a Bearer token and puts the caller's email and role into
// the request context. The storefront API issues tokens from /login but does
// not currently mount this on any route; it exists so deployments can opt
// routes in without changing handlers.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing authorization header"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid authorization header format"})
			}

			claims, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}

			c.Set("userEmail", claims.Email)
			c.Set("userRole", claims.Role)
			return next(c)
		}
	}
}
