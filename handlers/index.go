package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callmev1nc/SmartInvest/configs"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"project": configs.PROJECT_NAME,
		"status":  "ok",
	})
}

func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "not_found",
		"message": "The requested route does not exist.",
	})
}
