package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
	"github.com/tuguldure/newswire/internal/pkg/statistics"
)

// CategoryController handles the category endpoints.
type CategoryController struct {
	categories repository.CategoryRepository
	articles   repository.ArticleRepository
}

func NewCategoryController() *CategoryController {
	factory := repository.GetGlobalFactory()
	return &CategoryController{
		categories: factory.GetCategoryRepository(),
		articles:   factory.GetArticleRepository(),
	}
}

// List returns active categories with their published article counts.
func (cc *CategoryController) List(c *fiber.Ctx) error {
	categories, err := cc.categories.GetAllWithCounts()
	if err != nil {
		return respondError(c, err)
	}
	if categories == nil {
		categories = []repository.CategoryWithCount{}
	}
	return respondData(c, fiber.StatusOK, categories)
}

// Get returns a single category by slug or numeric ID.
func (cc *CategoryController) Get(c *fiber.Ctx) error {
	category, err := cc.categories.GetBySlugOrID(c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, category)
}

type categoryRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// Create stores a new category.
func (cc *CategoryController) Create(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Slug == "" {
		req.Slug = slugify(req.Name)
	}

	exists, err := cc.categories.SlugExists(req.Slug)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return respondError(c, models.NewConflictError("A category with this slug already exists"))
	}

	category := &models.Category{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := category.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	if err := cc.categories.Create(category); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateDashboardStats()

	return respondData(c, fiber.StatusCreated, category)
}

// Update modifies an existing category.
func (cc *CategoryController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid category ID"))
	}

	category, err := cc.categories.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Slug != "" && req.Slug != category.Slug {
		exists, err := cc.categories.SlugExistsExceptID(req.Slug, category.ID)
		if err != nil {
			return respondError(c, err)
		}
		if exists {
			return respondError(c, models.NewConflictError("A category with this slug already exists"))
		}
		category.Slug = req.Slug
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	category.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := category.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	if err := cc.categories.Update(category); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, category)
}

// Delete removes a category. Categories that still have articles are
// protected.
func (cc *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid category ID"))
	}

	count, err := cc.articles.CountByCategory(id)
	if err != nil {
		return respondError(c, err)
	}
	if count > 0 {
		return respondError(c, models.NewConflictError("Cannot delete a category that still has articles"))
	}

	if err := cc.categories.Delete(id); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateDashboardStats()

	return respondMessage(c, fiber.StatusOK, "Category deleted")
}
