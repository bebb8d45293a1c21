package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// CtxUserID is the Gin context key holding the authenticated user's id.
const CtxUserID = "user_id"

type userIDKey struct{}

// SetUserID records an authenticated user on both the Gin and the request context.
func SetUserID(c *gin.Context, id int64) {
	c.Set(CtxUserID, id)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey{}, id))
}

// UserID extracts the user id set by the bearer middleware.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok && id > 0
}
