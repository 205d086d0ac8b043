package AssistantHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

// Chat answers one user turn with an investment suggestion tailored to the
// stored risk profile.
func (h *Handler) Chat(c *gin.Context) {
	var request types.ChatRequest
	if err := utils.ValidateRequest(c, &request); err != nil {
		return
	}

	profileID, _ := uuid.Parse(request.ProfileID)
	profile, err := h.ProfileRepository.SelectProfileByID(profileID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "profile_not_found",
			"message": "No profile exists with this id.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "profile_fetch_failed",
			"message": "The profile could not be loaded.",
		})
		return
	}

	reply, tokensUsed, err := h.AIService.Chat(c.Request.Context(), profile, request.Message, request.History)
	if err != nil {
		if respondQuotaExceeded(c, err) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "assistant_failed",
			"message": "The assistant could not produce a reply: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": types.ChatResponse{
			Reply:      reply,
			TokensUsed: tokensUsed,
			Cost:       utils.CalculateAICost(tokensUsed),
		},
	})
}
