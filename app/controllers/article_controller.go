package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
	"github.com/tuguldure/newswire/internal/pkg/database"
	"github.com/tuguldure/newswire/internal/pkg/statistics"
	"github.com/tuguldure/newswire/internal/pkg/usercontext"
)

// ArticleController handles the article lifecycle endpoints.
type ArticleController struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
}

func NewArticleController() *ArticleController {
	factory := repository.GetGlobalFactory()
	return &ArticleController{
		articles:   factory.GetArticleRepository(),
		categories: factory.GetCategoryRepository(),
	}
}

// List returns a filtered, paginated article index. Anonymous callers
// only ever see published articles; staff may filter by status.
func (ac *ArticleController) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	filter := repository.ArticleFilter{
		CategorySlug: c.Query("category"),
		Status:       c.Query("status"),
		Search:       c.Query("search"),
		Sort:         c.Query("sort"),
		Order:        c.Query("order"),
		Limit:        limit,
		Offset:       offset,
	}

	uc := usercontext.GetUserContext(c)
	if !uc.IsLoggedIn {
		filter.Status = models.STATUS_PUBLISHED
	}

	articles, total, err := ac.articles.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	if articles == nil {
		articles = []models.Article{}
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"articles":   articles,
		"pagination": paginationMeta(limit, offset, total),
	})
}

// Get returns a single article by numeric ID or slug.
func (ac *ArticleController) Get(c *fiber.Ctx) error {
	article, err := ac.articles.GetByIDOrSlug(c.Params("key"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, article)
}

// Featured returns the published articles holding homepage slots, in
// slot order.
func (ac *ArticleController) Featured(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", models.FEATURED_RANK_MAX)
	articles, err := ac.articles.GetFeatured(limit)
	if err != nil {
		return respondError(c, err)
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return respondData(c, fiber.StatusOK, articles)
}

// Breaking returns published breaking-news articles, newest first.
func (ac *ArticleController) Breaking(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	articles, err := ac.articles.GetBreaking(limit)
	if err != nil {
		return respondError(c, err)
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return respondData(c, fiber.StatusOK, articles)
}

// FeaturedCheck reports whether a featured slot is occupied and by
// which article, so the editor UI can warn before evicting.
func (ac *ArticleController) FeaturedCheck(c *fiber.Ctx) error {
	rank, err := strconv.Atoi(c.Params("rank"))
	if err != nil || !models.ValidFeaturedRank(&rank) {
		return respondError(c, models.NewValidationError("Featured rank must be between 1 and 5"))
	}

	occupant, err := ac.articles.FeaturedSlotOccupant(rank)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"rank":     rank,
		"occupied": occupant != nil,
		"article":  occupant,
	})
}

// Stats returns the aggregated dashboard counters.
func (ac *ArticleController) Stats(c *fiber.Ctx) error {
	stats, err := statistics.GetDashboardStats()
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

type articleRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	CoverImage   string   `json:"cover_image"`
	CategoryID   uint64   `json:"category_id"`
	Status       string   `json:"status"`
	IsBreaking   bool     `json:"is_breaking"`
	FeaturedRank *int     `json:"is_featured"`
	Tags         []string `json:"tags"`
}

// resolveTags maps tag names to tag IDs, creating unknown tags on the
// fly.
func resolveTags(names []string) ([]uint64, error) {
	db := database.GetDB()
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		slug := slugify(name)
		if slug == "" {
			continue
		}
		tag := models.Tag{Name: name, Slug: slug}
		if err := tag.FindOrCreate(db); err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

// Create stores a new article. Publishing directly stamps published_at;
// a featured rank on a published article evicts the slot's previous
// occupant.
func (ac *ArticleController) Create(c *fiber.Ctx) error {
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if !models.ValidFeaturedRank(req.FeaturedRank) {
		return respondError(c, models.NewValidationError("Featured rank must be between 1 and 5"))
	}

	if req.Slug == "" {
		req.Slug = slugify(req.Title)
	}
	if req.Status == "" {
		req.Status = models.STATUS_DRAFT
	}

	exists, err := ac.articles.SlugExists(req.Slug)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return respondError(c, models.NewConflictError("An article with this slug already exists"))
	}

	if _, err := ac.categories.GetByID(req.CategoryID); err != nil {
		if models.IsNotFound(err) {
			return respondError(c, models.NewValidationError("Category does not exist"))
		}
		return respondError(c, err)
	}

	uc := usercontext.GetUserContext(c)
	article := &models.Article{
		Title:        req.Title,
		Slug:         req.Slug,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		CoverImage:   req.CoverImage,
		CategoryID:   req.CategoryID,
		AuthorID:     uc.UserID,
		Status:       req.Status,
		IsBreaking:   req.IsBreaking,
		FeaturedRank: req.FeaturedRank,
	}
	if err := article.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	tagIDs, err := resolveTags(req.Tags)
	if err != nil {
		return respondError(c, err)
	}

	if err := ac.articles.Create(article, tagIDs); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateDashboardStats()

	created, err := ac.articles.GetByID(article.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, created)
}

type articleUpdateRequest struct {
	Title        *string  `json:"title"`
	Slug         *string  `json:"slug"`
	Excerpt      *string  `json:"excerpt"`
	Content      *string  `json:"content"`
	CoverImage   *string  `json:"cover_image"`
	CategoryID   *uint64  `json:"category_id"`
	Status       *string  `json:"status"`
	IsBreaking   *bool    `json:"is_breaking"`
	FeaturedRank *int     `json:"is_featured"`
	ClearRank    bool     `json:"clear_featured"`
	Tags         []string `json:"tags"`
}

// Update applies a partial update. published_at is stamped exactly once,
// on the first transition to published, and never reset afterwards.
func (ac *ArticleController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid article ID"))
	}

	article, err := ac.articles.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	uc := usercontext.GetUserContext(c)
	if uc.Role == models.ROLE_AUTHOR && article.AuthorID != uc.UserID {
		return respondError(c, models.NewAuthorizationError("You can only edit your own articles"))
	}

	var req articleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	if req.FeaturedRank != nil && !models.ValidFeaturedRank(req.FeaturedRank) {
		return respondError(c, models.NewValidationError("Featured rank must be between 1 and 5"))
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		exists, err := ac.articles.SlugExistsExceptID(*req.Slug, article.ID)
		if err != nil {
			return respondError(c, err)
		}
		if exists {
			return respondError(c, models.NewConflictError("An article with this slug already exists"))
		}
		article.Slug = *req.Slug
	}

	if req.CategoryID != nil && *req.CategoryID != article.CategoryID {
		if _, err := ac.categories.GetByID(*req.CategoryID); err != nil {
			if models.IsNotFound(err) {
				return respondError(c, models.NewValidationError("Category does not exist"))
			}
			return respondError(c, err)
		}
		article.CategoryID = *req.CategoryID
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.CoverImage != nil {
		article.CoverImage = *req.CoverImage
	}
	if req.IsBreaking != nil {
		article.IsBreaking = *req.IsBreaking
	}
	if req.FeaturedRank != nil {
		article.FeaturedRank = req.FeaturedRank
	} else if req.ClearRank {
		article.FeaturedRank = nil
	}

	if req.Status != nil {
		if *req.Status != models.STATUS_DRAFT && *req.Status != models.STATUS_PUBLISHED {
			return respondError(c, models.NewValidationError("Status must be draft or published"))
		}
		article.ApplyStatusChange(*req.Status, time.Now())
	}

	if err := article.Validate(); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	var tagIDs []uint64
	replaceTags := req.Tags != nil
	if replaceTags {
		tagIDs, err = resolveTags(req.Tags)
		if err != nil {
			return respondError(c, err)
		}
	}

	// Detach preloaded associations so Save only touches article columns.
	article.Category = nil
	article.Author = nil
	article.Tags = nil

	if err := ac.articles.Update(article, tagIDs, replaceTags); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateDashboardStats()

	updated, err := ac.articles.GetByID(article.ID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, updated)
}

// Delete removes an article together with its comments and tag links.
func (ac *ArticleController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return respondError(c, models.NewValidationError("Invalid article ID"))
	}

	article, err := ac.articles.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	uc := usercontext.GetUserContext(c)
	if uc.Role == models.ROLE_AUTHOR && article.AuthorID != uc.UserID {
		return respondError(c, models.NewAuthorizationError("You can only delete your own articles"))
	}

	if err := ac.articles.Delete(id); err != nil {
		return respondError(c, err)
	}

	statistics.InvalidateDashboardStats()

	return respondMessage(c, fiber.StatusOK, "Article deleted")
}

// IncrementView bumps the view counter of a published article and
// returns the fresh count.
func (ac *ArticleController) IncrementView(c *fiber.Ctx) error {
	article, err := ac.articles.IncrementViews(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, fiber.Map{
		"slug":  article.Slug,
		"views": article.Views,
	})
}
