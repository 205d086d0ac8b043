package AdminHandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetCacheStats shows the size of every cache layer.
func (h *Handler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"translationEntries": h.TranslationCache.Size(),
			"ttlCacheEntries":    h.Cache.Size(),
		},
	})
}

// GetCacheItems lists live TTL-cache entries under a prefix, for debugging
// rate-limit windows and memoized values.
func (h *Handler) GetCacheItems(c *gin.Context) {
	prefix := c.DefaultQuery("prefix", "")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	if limit > 500 {
		limit = 500
	}

	allItems := h.Cache.GetAllWithPrefix(prefix)
	totalCount := len(allItems)

	items := make(map[string]any)
	count := 0
	for key, value := range allItems {
		if count >= limit {
			break
		}

		// Show parsed JSON when the value is JSON, raw string otherwise
		var parsedValue any
		if err := json.Unmarshal(value, &parsedValue); err == nil {
			items[key] = parsedValue
		} else {
			items[key] = string(value)
		}
		count++
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   items,
		"count":   count,
		"total":   totalCount,
		"prefix":  prefix,
		"limit":   limit,
	})
}

// ClearTranslationCache drops every memoized translation.
func (h *Handler) ClearTranslationCache(c *gin.Context) {
	h.TranslationCache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Translation cache cleared.",
	})
}

// ClearCacheWithPrefix clears TTL-cache keys under the given prefix.
func (h *Handler) ClearCacheWithPrefix(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "missing_parameter",
			"message": "prefix parameter is required.",
		})
		return
	}

	h.Cache.ClearPrefix(prefix)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Cache keys with prefix '%s' cleared.", prefix),
	})
}
