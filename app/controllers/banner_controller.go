package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
)

// BannerController handles the advertising banner endpoints.
type BannerController struct {
	banners repository.BannerRepository
}

func NewBannerController() *BannerController {
	return &BannerController{
		banners: repository.GetGlobalFactory().GetBannerRepository(),
	}
}

// Active returns active banners for the public site, optionally
// filtered by type.
func (bc *BannerController) Active(c *fiber.Ctx) error {
	bannerType := c.Query("type")
	if bannerType != "" && !models.ValidBannerType(bannerType) {
		return respondError(c, models.NewValidationError("Banner type must be vertical or horizontal"))
	}

	banners, err := bc.banners.GetActive(bannerType)
	if err != nil {
		return respondError(c, err)
	}
	if banners == nil {
		banners = []models.Banner{}
	}
	return respondData(c, fiber.StatusOK, banners)
}

// ListAll returns every banner for the admin listing.
func (bc *BannerController) ListAll(c *fiber.Ctx) error {
	banners, err := bc.banners.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	if banners == nil {
		banners = []models.Banner{}
	}
	return respondData(c, fiber.StatusOK, banners)
}

type bannerRequest struct {
	Title        string `json:"title"`
	Type         string `json:"type"`
	ImageURL     string `json:"image_url"`
	LinkURL      string `json:"link_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// Create stores a new banner.
func (bc *BannerController) Create(c *fiber.Ctx) error {
	var req bannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if !models.ValidBannerType(req.Type) {
		return respondError(c, models.NewValidationError("Banner type must be vertical or horizontal"))
	}

	banner := &models.Banner{
		Title:        req.Title,
		Type:         req.Type,
		ImageURL:     req.ImageURL,
		LinkURL:      req.LinkURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if err := banner.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	if err := bc.banners.Create(banner); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, banner)
}

// Update modifies an existing banner.
func (bc *BannerController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid banner ID"))
	}

	banner, err := bc.banners.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var req bannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Type != "" {
		if !models.ValidBannerType(req.Type) {
			return respondError(c, models.NewValidationError("Banner type must be vertical or horizontal"))
		}
		banner.Type = req.Type
	}
	if req.Title != "" {
		banner.Title = req.Title
	}
	if req.ImageURL != "" {
		banner.ImageURL = req.ImageURL
	}
	if req.LinkURL != "" {
		banner.LinkURL = req.LinkURL
	}
	banner.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := banner.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	if err := bc.banners.Update(banner); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, banner)
}

// Delete removes a banner.
func (bc *BannerController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid banner ID"))
	}

	if err := bc.banners.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Banner deleted")
}

// Toggle flips a banner's active flag.
func (bc *BannerController) Toggle(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid banner ID"))
	}

	if err := bc.banners.Toggle(id); err != nil {
		return respondError(c, err)
	}

	banner, err := bc.banners.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, banner)
}
