package ProfileHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callmev1nc/SmartInvest/types"
	"github.com/callmev1nc/SmartInvest/utils"
)

// CreateProfile registers a new user from the onboarding flow. The quiz is
// scored on the client; the API only stores the outcome.
func (h *Handler) CreateProfile(c *gin.Context) {
	var request types.ProfileCreateRequest
	if err := utils.ValidateRequest(c, &request); err != nil {
		return
	}

	if !request.RiskProfile.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_risk_profile",
			"message": "riskProfile must be conservative, moderate or aggressive.",
		})
		return
	}

	profile, err := h.ProfileRepository.CreateProfile(request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "profile_create_failed",
			"message": "The profile could not be created.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    profile,
	})
}
