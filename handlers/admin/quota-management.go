package AdminHandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetQuotaStats reports the scheduler's live quota bookkeeping.
func (h *Handler) GetQuotaStats(c *gin.Context) {
	stats := h.Scheduler.Stats()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"requestsPerDay": stats.RequestsPerDay,
			"dailyCount":     stats.DailyCount,
			"remaining":      stats.Remaining,
			"resetAt":        stats.ResetAt,
			"resetIn":        formatDuration(time.Until(stats.ResetAt)),
			"queueLength":    stats.QueueLength,
			"minInterval":    stats.MinInterval.String(),
		},
	})
}

// formatDuration renders a duration in a human friendly way.
func formatDuration(d time.Duration) string {
	if d < 0 {
		return "expired"
	}

	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	} else if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
