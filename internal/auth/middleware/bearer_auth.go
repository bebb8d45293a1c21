package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dipanshu0612/Time-Tracker-API/internal/api/http/respond"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/apperr"
	"github.com/Dipanshu0612/Time-Tracker-API/internal/auth"
)

type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}

// BearerAuth admits requests carrying a valid "Authorization: Bearer <token>".
// A missing token is 401, a token that fails verification is 403.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			respond.Abort(c, "bearer_auth", apperr.ErrNoToken)
			return
		}

		uid, err := verifier.VerifyToken(token)
		if err != nil {
			respond.Abort(c, "bearer_auth", apperr.ErrInvalidToken)
			return
		}

		auth.SetUserID(c, uid)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
