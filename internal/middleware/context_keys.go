package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID on the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID from the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return UserIDFromCtx(c.Request.Context())
}

// UserIDFromCtx retrieves the authenticated user ID from a standard context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
