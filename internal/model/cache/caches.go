package cache

import (
	"sync"

	"mergington.edu/activities-backend/internal/model"
	"mergington.edu/activities-backend/internal/pkg/cache"
)

var (
	// ActivitiesJSON holds the pre-rendered /activities response body, with
	// object keys in registry order.
	ActivitiesJSON *cache.Singular[[]byte]

	// SiteStats holds the aggregated roster statistics.
	SiteStats *cache.Singular[model.SiteStats]

	once sync.Once
)

func Initialize() {
	once.Do(initializeCaches)
}

func initializeCaches() {
	ActivitiesJSON = cache.NewSingular[[]byte]("activitiesJSON")
	SiteStats = cache.NewSingular[model.SiteStats]("siteStats")
}

// Flush drops every derived view. Mutating operations call this synchronously
// so a read issued right after a write observes the new roster.
func Flush() {
	ActivitiesJSON.Delete()
	SiteStats.Delete()
}
