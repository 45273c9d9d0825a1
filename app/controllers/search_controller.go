package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
)

const suggestionLimit = 5

// SearchController handles full-text search and typeahead suggestions.
type SearchController struct {
	search repository.SearchRepository
}

func NewSearchController() *SearchController {
	return &SearchController{
		search: repository.GetGlobalFactory().GetSearchRepository(),
	}
}

// Search matches published articles against a query. Title hits rank
// before excerpt hits before content hits.
func (sc *SearchController) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return respondError(c, models.NewValidationError("Search query is required"))
	}

	limit, offset := pagination(c)
	articles, total, err := sc.search.Search(repository.SearchFilter{
		Query:        query,
		CategorySlug: c.Query("category"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	if articles == nil {
		articles = []models.Article{}
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"query":      query,
		"articles":   articles,
		"pagination": paginationMeta(limit, offset, total),
	})
}

// Suggestions returns up to five published article titles starting with
// the prefix. Prefixes shorter than two characters yield an empty list.
func (sc *SearchController) Suggestions(c *fiber.Ctx) error {
	prefix := strings.TrimSpace(c.Query("q"))
	if len(prefix) < 2 {
		return respondData(c, fiber.StatusOK, []repository.SearchSuggestion{})
	}

	suggestions, err := sc.search.Suggestions(prefix, suggestionLimit)
	if err != nil {
		return respondError(c, err)
	}
	if suggestions == nil {
		suggestions = []repository.SearchSuggestion{}
	}
	return respondData(c, fiber.StatusOK, suggestions)
}
