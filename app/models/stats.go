package models

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalArticles     int64 `json:"total_articles"`
	TotalViews        int64 `json:"total_views"`
	TotalComments     int64 `json:"total_comments"`
	TotalCategories   int64 `json:"total_categories"`
	PublishedArticles int64 `json:"published_articles"`
	DraftArticles     int64 `json:"draft_articles"`
}

// RoleStats counts users per role.
type RoleStats struct {
	Total   int64 `json:"total"`
	Admins  int64 `json:"admins"`
	Editors int64 `json:"editors"`
	Authors int64 `json:"authors"`
}
