package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

// JSONError emits the structured error envelope the dashboards expect.
func JSONError(c *gin.Context, httpCode int, errCode, message string) {
	c.JSON(httpCode, gin.H{
		"error": gin.H{
			"code":    errCode,
			"message": message,
		},
	})
}
