package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondMessage writes the flat {"message": ...} envelope used by every
// endpoint for both success and failure messages.
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"message": err.Error()})
}

// RespondNotFound includes the offending path, for route misses and for
// lookups of ids that do not exist.
func RespondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message":  "Resource not found",
		"resource": c.Request.URL.Path,
	})
}
