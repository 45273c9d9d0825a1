package statistics

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/app/repository"
	"github.com/tuguldure/newswire/internal/pkg/cache"
)

const (
	dashboardStatsKey = "stats:dashboard"
	statsTTL          = 5 * time.Minute
)

var refreshMutex sync.Mutex

// GetDashboardStats returns the aggregated dashboard counters, served
// from the redis cache when fresh.
func GetDashboardStats() (*models.DashboardStats, error) {
	cached, err := cache.Get(dashboardStatsKey)
	if err == nil && cached != "" {
		var stats models.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}
	return RefreshDashboardStats()
}

// RefreshDashboardStats recomputes the counters from the database and
// updates the cache. Concurrent refreshes collapse into one query.
func RefreshDashboardStats() (*models.DashboardStats, error) {
	refreshMutex.Lock()
	defer refreshMutex.Unlock()

	// Another request may have refreshed while we waited for the lock.
	cached, err := cache.Get(dashboardStatsKey)
	if err == nil && cached != "" {
		var stats models.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := repository.GetGlobalFactory().GetArticleRepository().Stats()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := cache.Set(dashboardStatsKey, payload, statsTTL); err != nil {
			log.Printf("Warning: could not cache dashboard stats: %v", err)
		}
	}
	return stats, nil
}

// InvalidateDashboardStats drops the cached counters so the next read
// recomputes them. Called after writes that change the totals.
func InvalidateDashboardStats() {
	if err := cache.Delete(dashboardStatsKey); err != nil {
		log.Printf("Warning: could not invalidate dashboard stats: %v", err)
	}
}
