package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
	"github.com/tuguldure/newswire/internal/pkg/usercontext"
)

// UserController handles the admin user management endpoints.
type UserController struct {
	users repository.UserRepository
}

func NewUserController() *UserController {
	return &UserController{
		users: repository.GetGlobalFactory().GetUserRepository(),
	}
}

// List returns users, optionally filtered by role or a name/email search.
func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.users.List(c.Query("role"), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return respondData(c, fiber.StatusOK, users)
}

// Get returns a single user by ID.
func (uc *UserController) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid user ID"))
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}

// Stats returns how many users exist per role.
func (uc *UserController) Stats(c *fiber.Ctx) error {
	stats, err := uc.users.RoleStats()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// Create adds a new user account.
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Username, email and password are required"))
	}

	exists, err := uc.users.UsernameOrEmailExists(req.Username, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return respondError(c, models.NewConflictError("Username or email is already taken"))
	}

	user, err := models.CreateUser(req.Username, req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}
	user.Avatar = req.Avatar

	if err := uc.users.Create(user); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, user)
}

// Update modifies an existing user. A non-empty password in the body
// replaces the stored hash.
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid user ID"))
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	username := user.Username
	email := user.Email
	if req.Username != "" {
		username = req.Username
	}
	if req.Email != "" {
		email = req.Email
	}
	if username != user.Username || email != user.Email {
		exists, err := uc.users.UsernameOrEmailExistsExceptID(username, email, user.ID)
		if err != nil {
			return respondError(c, err)
		}
		if exists {
			return respondError(c, models.NewConflictError("Username or email is already taken"))
		}
	}
	user.Username = username
	user.Email = email

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return respondError(c, err)
		}
	}

	if err := user.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	if err := uc.users.Update(user); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, user)
}

type passwordRequest struct {
	Password string `json:"password"`
}

// UpdatePassword replaces a user's password.
func (uc *UserController) UpdatePassword(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid user ID"))
	}

	var req passwordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if len(req.Password) < 6 {
		return respondError(c, models.NewValidationError("Password must be at least 6 characters"))
	}

	hashed, err := models.HashPassword(req.Password)
	if err != nil {
		return respondError(c, err)
	}

	if err := uc.users.UpdatePassword(id, hashed); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Password updated")
}

// Delete removes a user account. Admins cannot delete themselves.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid user ID"))
	}

	current := usercontext.GetUserContext(c)
	if current.UserID == id {
		return respondError(c, models.NewValidationError("You cannot delete your own account"))
	}

	if err := uc.users.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "User deleted")
}
