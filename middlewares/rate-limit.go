package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/callmev1nc/SmartInvest/configs"
	"github.com/callmev1nc/SmartInvest/services/cache"
	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

// AIRateLimitMiddleware throttles each client before its request is even
// queued on the process-wide scheduler. This layer is about fairness between
// clients; the scheduler is about the upstream quota. Keyed by client IP
// because the app has no accounts beyond a display name.
type AIRateLimitMiddleware struct {
	cache *cache.Cache
}

func NewAIRateLimitMiddleware(cache *cache.Cache) *AIRateLimitMiddleware {
	return &AIRateLimitMiddleware{
		cache: cache,
	}
}

func (m *AIRateLimitMiddleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := utils.GetTrueClientIP(c)

		rateInfo, allowed := m.checkRateLimit(clientKey)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", configs.CLIENT_RATE_LIMIT_REQ_PER_MINUTE))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remainingOf(rateInfo)))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", rateInfo.WindowResetAt.Unix()))

		if !allowed {
			retryAfter := int(time.Until(rateInfo.WindowResetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate_limit_exceeded",
				"message": "Too many assistant requests. Please try again shortly.",
				"data": gin.H{
					"resetAt":    rateInfo.WindowResetAt,
					"retryAfter": retryAfter,
				},
			})
			c.Abort()
			return
		}

		// Count the request up front so parallel requests cannot slip past
		// the window together
		m.incrementRequestCount(clientKey, rateInfo)

		c.Next()
	}
}

// checkRateLimit loads or starts the client's minute window.
func (m *AIRateLimitMiddleware) checkRateLimit(clientKey string) (*types.RateLimitInfo, bool) {
	cacheKey := fmt.Sprintf("client_rate_limit:%s", clientKey)

	now := time.Now()
	var rateInfo types.RateLimitInfo

	data, exists := m.cache.Get(cacheKey)
	if !exists {
		rateInfo = newWindow(clientKey, now)
	} else if err := json.Unmarshal(data, &rateInfo); err != nil {
		rateInfo = newWindow(clientKey, now)
	} else if now.After(rateInfo.WindowResetAt) {
		rateInfo = newWindow(clientKey, now)
	}

	allowed := rateInfo.RequestCount < configs.CLIENT_RATE_LIMIT_REQ_PER_MINUTE
	return &rateInfo, allowed
}

// incrementRequestCount stores the bumped counter with the window's remaining
// lifetime as TTL, so stale windows clean themselves up.
func (m *AIRateLimitMiddleware) incrementRequestCount(clientKey string, rateInfo *types.RateLimitInfo) {
	cacheKey := fmt.Sprintf("client_rate_limit:%s", clientKey)

	now := time.Now()
	rateInfo.RequestCount++
	rateInfo.LastRequest = now

	jsonData, err := json.Marshal(rateInfo)
	if err != nil {
		return
	}

	remainingTime := rateInfo.WindowResetAt.Sub(now)
	if remainingTime <= 0 {
		remainingTime = configs.CLIENT_RATE_LIMIT_WINDOW
	}

	m.cache.SetWithTTL(cacheKey, jsonData, remainingTime)
}

func newWindow(clientKey string, now time.Time) types.RateLimitInfo {
	return types.RateLimitInfo{
		ClientKey:     clientKey,
		RequestCount:  0,
		FirstRequest:  now,
		LastRequest:   now,
		WindowResetAt: now.Add(configs.CLIENT_RATE_LIMIT_WINDOW),
	}
}

func remainingOf(rateInfo *types.RateLimitInfo) int {
	remaining := configs.CLIENT_RATE_LIMIT_REQ_PER_MINUTE - rateInfo.RequestCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
