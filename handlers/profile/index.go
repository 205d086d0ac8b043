package ProfileHandler

import (
	ProfileRepository "github.com/callmev1nc/SmartInvest/repositories/profile"
)

type Handler struct {
	ProfileRepository *ProfileRepository.Repository
}

func NewHandler(pr *ProfileRepository.Repository) *Handler {
	return &Handler{
		ProfileRepository: pr,
	}
}
