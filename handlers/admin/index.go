package AdminHandler

import (
	"github.com/callmev1nc/SmartInvest/services/cache"
	"github.com/callmev1nc/SmartInvest/services/scheduler"
)

// Handler exposes the observability endpoints: scheduler quota counters and
// cache contents. Read-mostly; the only mutations are explicit cache clears.
type Handler struct {
	Scheduler        *scheduler.Scheduler
	Cache            *cache.Cache
	TranslationCache *cache.TranslationCacheService
}

func NewHandler(sch *scheduler.Scheduler, c *cache.Cache, tc *cache.TranslationCacheService) *Handler {
	return &Handler{
		Scheduler:        sch,
		Cache:            c,
		TranslationCache: tc,
	}
}
