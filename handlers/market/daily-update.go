package MarketHandler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/callmev1nc/SmartInvest/services/scheduler"
	"github.com/callmev1nc/SmartInvest/types"
)

// DailyUpdate serves today's market brief for a risk profile. The first
// request of the day per profile generates it; everything after reads a
// cache.
func (h *Handler) DailyUpdate(c *gin.Context) {
	riskProfile := types.RiskProfile(c.Query("profile"))
	if !riskProfile.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_parameter",
			"message": "profile must be conservative, moderate or aggressive.",
		})
		return
	}

	update, cached, err := h.AIService.DailyUpdate(c.Request.Context(), riskProfile)
	if err != nil {
		if errors.Is(err, scheduler.ErrQuotaExceeded) {
			var quotaErr *scheduler.QuotaError
			if errors.As(err, &quotaErr) {
				retryAfter := int(time.Until(quotaErr.ResetAt).Seconds())
				if retryAfter < 0 {
					retryAfter = 0
				}
				c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			}
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "daily_quota_exceeded",
				"message": "Today's update could not be generated; the daily request budget is spent.",
			})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "market_update_failed",
			"message": "The market update could not be produced: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cached":  cached,
		"data":    update,
	})
}
