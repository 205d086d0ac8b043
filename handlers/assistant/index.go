package AssistantHandler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ProfileRepository "github.com/callmev1nc/SmartInvest/repositories/profile"
	AIService "github.com/callmev1nc/SmartInvest/services/ai"
	"github.com/callmev1nc/SmartInvest/services/scheduler"
)

type Handler struct {
	AIService         *AIService.AIService
	ProfileRepository *ProfileRepository.Repository
}

func NewHandler(ais *AIService.AIService, pr *ProfileRepository.Repository) *Handler {
	return &Handler{
		AIService:         ais,
		ProfileRepository: pr,
	}
}

// respondQuotaExceeded writes the shared 429 body for a drained daily quota,
// with Retry-After pointing at the next reset boundary. Returns false when
// the error was something else.
func respondQuotaExceeded(c *gin.Context, err error) bool {
	if !errors.Is(err, scheduler.ErrQuotaExceeded) {
		return false
	}

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
		"message": "The assistant reached its daily request budget. Please come back tomorrow.",
	})
	return true
}
