package services

import (
	"dsatrack/internal/analytics"
	"dsatrack/internal/models"
	"dsatrack/internal/providers"
	"strconv"
	"time"
)

// AnalyticsCacheKey is scoped to the user's write version and the calendar day.
// A report computed before a write is stored under a key that is no longer read.
func AnalyticsCacheKey(userID string, version uint64, now time.Time, loc *time.Location) string {
	return "analytics:" + userID + ":" + strconv.FormatUint(version, 10) + ":" + analytics.ISODate(now, loc)
}

// invalidateAnalytics must run after the write it follows is visible in the store.
func invalidateAnalytics(store *models.DocumentStore, cache providers.CacheProviderInterface, clock providers.Clock, userID string) {
	version := store.BumpWriteVersion(userID)
	cache.Del(AnalyticsCacheKey(userID, version-1, clock.Now(), clock.Location()))
}
