package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

var skipPaths = map[string]bool{
	"/health": true,
}

// Logger logs one line per request: method, path, status, latency and the
// authenticated user id when present. Bodies are never logged; they can
// carry passwords and tokens.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		if id := c.GetInt64(CtxUserID); id != 0 {
			log.Printf("%s %s -> %d (%v) user=%d",
				c.Request.Method, path, c.Writer.Status(), time.Since(start), id)
			return
		}

		log.Printf("%s %s -> %d (%v)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
