// Package auth provides the bearer-token middleware protecting user-scoped
// routes.
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds the middleware settings.
type Config struct {
	// Secret is the HMAC key used to verify tokens.
	Secret string
}

// localsUserID is the fiber locals key carrying the authenticated user ID.
const localsUserID = "user_id"

// New creates a middleware that validates an HS256 bearer token and stores
// the authenticated user ID in the request locals.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c, "missing bearer token")
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !parsed.Valid {
			return unauthorized(c, "invalid token")
		}

		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "invalid token claims")
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			return unauthorized(c, "invalid token subject")
		}

		c.Locals(localsUserID, uint(sub))
		return c.Next()
	}
}

// UserID returns the authenticated user ID set by the middleware.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localsUserID).(uint)
	return id, ok
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
