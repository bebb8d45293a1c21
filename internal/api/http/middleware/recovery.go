package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/logging"
)

// Recovery turns a handler panic into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.New(c.Request.Context()).Errorf("recover", "panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Oops, Something Bad Happened!",
		})
	})
}
