package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the API's standard error body: {"error": "..."}.
func Error(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"error": msg})
}

// Internal hides the internal failure behind a generic message. The caller is
// expected to have logged the real error.
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}
