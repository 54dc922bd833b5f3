package controllers

import (
	"dsatrack/internal/providers"
	"dsatrack/internal/services"
	"net/http"

	json "github.com/goccy/go-json"
)

type AnalyticsController struct {
	ApiController
	service services.AnalyticsServiceInterface
	cache   providers.CacheProviderInterface
}

func NewAnalyticsController(logger providers.Logger, service services.AnalyticsServiceInterface, cache providers.CacheProviderInterface) *AnalyticsController {
	return &AnalyticsController{
		ApiController: ApiController{logger: logger},
		service:       service,
		cache:         cache,
	}
}

func (ac *AnalyticsController) serveFromCacheOrCompute(w http.ResponseWriter, r *http.Request, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeError(w, r, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *AnalyticsController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		ac.writeError(w, r, err)
		return
	}
	key := ac.service.CacheKey(uid)
	ac.serveFromCacheOrCompute(w, r, key, func() (any, error) {
		return ac.service.GetAnalytics(uid)
	})
}
