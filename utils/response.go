package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends a uniform error body so the kiosk UI can show it as
// a blocking notification.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
