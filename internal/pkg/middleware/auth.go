package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/internal/pkg/security"
	"github.com/tuguldure/newswire/internal/pkg/usercontext"
)

// extractBearerToken pulls the token out of the Authorization header.
// Returns an empty string when no bearer token is present.
func extractBearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// RequireAuth rejects requests without a valid bearer token and stores
// the authenticated identity in the request context.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return unauthorized(c, fiber.StatusUnauthorized, "Authentication token required")
		}

		claims, err := security.ParseToken(token)
		if err != nil {
			return unauthorized(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		usercontext.SetUserContext(c, contextFromClaims(claims))
		return c.Next()
	}
}

// contextFromClaims copies the token claims into a request context.
func contextFromClaims(claims *security.Claims) usercontext.UserContext {
	return usercontext.UserContext{
		UserID:     claims.UserID,
		Username:   claims.Username,
		FullName:   claims.FullName,
		Email:      claims.Email,
		Role:       claims.Role,
		IsLoggedIn: true,
	}
}

// RequireRoles allows only authenticated users holding one of the
// given roles. Must run after RequireAuth.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		if !uc.IsLoggedIn {
			return unauthorized(c, fiber.StatusUnauthorized, "Authentication token required")
		}
		for _, role := range roles {
			if uc.Role == role {
				return c.Next()
			}
		}
		return unauthorized(c, fiber.StatusForbidden, "Insufficient permissions")
	}
}

// OptionalAuth populates the user context when a valid token is sent
// but lets anonymous requests pass through.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Next()
		}
		claims, err := security.ParseToken(token)
		if err != nil {
			// A broken token on an optional route is treated as anonymous.
			return c.Next()
		}
		usercontext.SetUserContext(c, contextFromClaims(claims))
		return c.Next()
	}
}
