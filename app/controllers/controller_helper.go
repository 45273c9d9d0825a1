package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/internal/pkg/env"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// respondData wraps a payload in the uniform success envelope.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondMessage is the success envelope for operations without a payload.
func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// respondError maps an error to the uniform failure envelope. APIError
// carries its own status; a bare gorm record-not-found becomes 404;
// everything else is a generic 500 whose detail is only echoed in dev.
func respondError(c *fiber.Ctx, err error) error {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"success": false,
			"message": apiErr.Message,
		})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Resource not found",
		})
	}

	log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	message := "Internal server error"
	if env.IsDev() {
		message = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// pagination reads limit/offset query params with sane bounds.
func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// paginationMeta is the page envelope attached to list responses.
func paginationMeta(limit, offset int, total int64) fiber.Map {
	return fiber.Map{
		"total":    total,
		"limit":    limit,
		"offset":   offset,
		"has_more": int64(offset+limit) < total,
	}
}

// slugify folds a free-text name into a URL slug.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
