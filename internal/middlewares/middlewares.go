package middlewares

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/ndayishimiyefidel/recipe-backend/internal/api/respond"
)

const userIDKey = "user_id"

// CORSMiddleware allows cross-origin requests from the mobile client.
func CORSMiddleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequireUser extracts the authenticated user's ID from the X-User-ID header.
// Authentication itself happens upstream; by the time a request reaches this
// service the identity is already established.
func RequireUser() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil || id == uuid.Nil {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing or invalid user id"))
			c.Abort()
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the authenticated user's ID set by RequireUser.
func UserID(c *ginext.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
