// ================== internal/middleware/auth.go ==================
package middleware

import (
	"strconv"
	"strings"

	"github.com/DexterPressley/calzone/internal/pkg/response"
	"github.com/DexterPressley/calzone/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	CtxToken  = "jwtToken"
	CtxUserID = "userID"
)

// Auth rejects requests without a valid bearer token. On success the raw
// token and the verified numeric user id are stored on the context.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Authentication token is required. Format: Bearer <token>")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Claims(tokenString)
		if err != nil {
			response.Unauthorized(c, "The JWT is no longer valid")
			c.Abort()
			return
		}

		c.Set(CtxToken, tokenString)
		c.Set(CtxUserID, claims.UserID)
		c.Next()
	}
}

// RequireOwner binds ownership to the verified token subject: the :userId
// path segment must match the authenticated user. A mismatch answers 404,
// the same shape as a resource that never existed.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		pathID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
		if err != nil || pathID != c.GetInt64(CtxUserID) {
			response.NotFound(c, "Resource not found")
			c.Abort()
			return
		}
		c.Next()
	}
}
