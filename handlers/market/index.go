package MarketHandler

import (
	AIService "github.com/callmev1nc/SmartInvest/services/ai"
)

type Handler struct {
	AIService *AIService.AIService
}

func NewHandler(ais *AIService.AIService) *Handler {
	return &Handler{
		AIService: ais,
	}
}
