package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
)

// Keys for fiber context locals
const (
	KeyUserContext = "user_context"
)

// UserContext holds the authenticated identity for a request.
type UserContext struct {
	UserID     uint64
	Username   string
	FullName   string
	Email      string
	Role       string
	IsLoggedIn bool
}

// SetUserContext stores the user context in fiber locals
func SetUserContext(c *fiber.Ctx, uc UserContext) {
	c.Locals(KeyUserContext, uc)
}

// GetUserContext retrieves the user context from fiber locals.
// Returns an empty context when the request is anonymous.
func GetUserContext(c *fiber.Ctx) UserContext {
	if uc, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return uc
	}
	return UserContext{}
}

// DisplayName is the name shown next to user-generated content. Falls
// back to the username when no full name is set.
func (uc UserContext) DisplayName() string {
	if uc.FullName != "" {
		return uc.FullName
	}
	return uc.Username
}

// IsAdmin reports whether the current request belongs to an admin.
func (uc UserContext) IsAdmin() bool {
	return uc.IsLoggedIn && uc.Role == models.ROLE_ADMIN
}

// IsStaff reports whether the current request belongs to an admin or
// editor.
func (uc UserContext) IsStaff() bool {
	return uc.IsLoggedIn && (uc.Role == models.ROLE_ADMIN || uc.Role == models.ROLE_EDITOR)
}
