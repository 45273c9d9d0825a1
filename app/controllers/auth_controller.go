package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
	"github.com/tuguldure/newswire/internal/pkg/security"
	"github.com/tuguldure/newswire/internal/pkg/usercontext"
)

// AuthController handles registration, login and the profile endpoint.
type AuthController struct {
	users repository.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{
		users: repository.GetGlobalFactory().GetUserRepository(),
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Register creates a new account and returns it together with a token.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Username, email and password are required"))
	}

	exists, err := ac.users.UsernameOrEmailExists(req.Username, req.Email)
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

	if err := ac.users.Create(user); err != nil {
		return respondError(c, err)
	}

	token, err := security.GenerateToken(user)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{
		"user":  user,
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Email == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Email and password are required"))
	}

	user, err := ac.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, models.NewAuthenticationError("Invalid email or password", fiber.StatusUnauthorized))
		}
		return respondError(c, err)
	}

	if !user.CheckPassword(req.Password) {
		return respondError(c, models.NewAuthenticationError("Invalid email or password", fiber.StatusUnauthorized))
	}

	token, err := security.GenerateToken(user)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Profile returns the account behind the current token.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	user, err := ac.users.GetByID(uc.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, user)
}
