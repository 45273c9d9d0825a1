package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tuguldure/newswire/app/models"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Hello World", want: "hello-world"},
		{in: "  Breaking: Storm hits coast!  ", want: "breaking-storm-hits-coast"},
		{in: "Already-A-Slug", want: "already-a-slug"},
		{in: "multiple   spaces", want: "multiple-spaces"},
		{in: "2026 Budget", want: "2026-budget"},
		{in: "!!!", want: ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, slugify(tc.in), tc.in)
	}
}

func TestPaginationMeta(t *testing.T) {
	t.Parallel()

	meta := paginationMeta(10, 0, 25)
	assert.Equal(t, 10, meta["limit"])
	assert.Equal(t, 0, meta["offset"])
	assert.Equal(t, int64(25), meta["total"])
	assert.Equal(t, true, meta["has_more"])

	meta = paginationMeta(10, 20, 25)
	assert.Equal(t, true, meta["has_more"])

	meta = paginationMeta(10, 20, 30)
	assert.Equal(t, false, meta["has_more"])

	meta = paginationMeta(10, 0, 0)
	assert.Equal(t, false, meta["has_more"])
}

func TestPaginationBounds(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		limit, offset := pagination(c)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	tests := []struct {
		name   string
		url    string
		limit  float64
		offset float64
	}{
		{name: "defaults", url: "/", limit: 10, offset: 0},
		{name: "explicit values", url: "/?limit=20&offset=40", limit: 20, offset: 40},
		{name: "negative offset clamps", url: "/?offset=-5", limit: 10, offset: 0},
		{name: "oversize limit clamps", url: "/?limit=1000", limit: 100, offset: 0},
		{name: "zero limit falls back", url: "/?limit=0", limit: 10, offset: 0},
	}

	for _, tc := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		assert.NoError(t, err, tc.name)

		var got map[string]float64
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got), tc.name)
		assert.Equal(t, tc.limit, got["limit"], tc.name)
		assert.Equal(t, tc.offset, got["offset"], tc.name)
	}
}

func TestRespondErrorMapping(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/validation", func(c *fiber.Ctx) error {
		return respondError(c, models.NewValidationError("bad input"))
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return respondError(c, models.NewConflictError("slug taken"))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return respondError(c, gorm.ErrRecordNotFound)
	})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return respondError(c, models.NewAuthorizationError("nope"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, assert.AnError)
	})

	tests := []struct {
		url     string
		status  int
		message string
	}{
		{url: "/validation", status: fiber.StatusBadRequest, message: "bad input"},
		{url: "/conflict", status: fiber.StatusBadRequest, message: "slug taken"},
		{url: "/missing", status: fiber.StatusNotFound, message: "Resource not found"},
		{url: "/forbidden", status: fiber.StatusForbidden, message: "nope"},
		{url: "/boom", status: fiber.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tc := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		assert.NoError(t, err, tc.url)
		assert.Equal(t, tc.status, resp.StatusCode, tc.url)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body), tc.url)
		assert.False(t, body.Success, tc.url)
		assert.Equal(t, tc.message, body.Message, tc.url)
	}
}
