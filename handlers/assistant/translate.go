package AssistantHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

// Translate renders assistant content in another language. Repeated requests
// for the same text/language pair are served from the memo cache without
// spending quota.
func (h *Handler) Translate(c *gin.Context) {
	var request types.TranslateRequest
	if err := utils.ValidateRequest(c, &request); err != nil {
		return
	}

	translated, cached, tokensUsed, err := h.AIService.Translate(
		c.Request.Context(),
		request.Text,
		request.SourceLanguage,
		request.TargetLanguage,
	)
	if err != nil {
		if respondQuotaExceeded(c, err) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "translation_failed",
			"message": "The text could not be translated: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": types.TranslateResponse{
			TranslatedText: translated,
			SourceLanguage: request.SourceLanguage,
			TargetLanguage: request.TargetLanguage,
			Cached:         cached,
			TokensUsed:     tokensUsed,
		},
	})
}
