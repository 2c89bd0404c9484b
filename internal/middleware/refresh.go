package middleware

import (
	"log"

	"github.com/DexterPressley/calzone/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// RefreshHeader carries the reissued token back to the client, which swaps
// it in for the next request.
const RefreshHeader = "X-Refreshed-Token"

// RefreshRelay reissues the session token on every authenticated request.
// Refresh is best-effort: a failure never fails the request, the response
// simply goes out without a fresh token.
func RefreshRelay(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetString(CtxToken)
		if tokenString == "" {
			c.Next()
			return
		}

		refreshed, err := tokens.Refresh(tokenString)
		if err != nil {
			log.Printf("Token refresh error: %v", err)
		} else {
			c.Header(RefreshHeader, refreshed)
		}

		c.Next()
	}
}
