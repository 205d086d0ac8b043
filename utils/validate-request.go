package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateRequest binds the JSON body into request and writes the standard
// 400 response on failure. Handlers only need to check the returned error.
func ValidateRequest(c *gin.Context, request any) error {
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_request",
			"message": "Request body is invalid: " + err.Error(),
		})
		return err
	}

	return nil
}
