package middleware

import (
	"strings"

	"go-warehouse-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the name of the HTTP-only session cookie set on login.
const TokenCookie = "token"

// RequireAuth is the access gate in front of every protected route. It takes
// the session token from the cookie or a Bearer header, verifies signature
// and expiry, and resolves the caller's identity into the request context.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"message": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		// Identity for downstream handlers. Role is informational only; no
		// route differentiates by it.
		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("username", claims.Username)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}
