// ================== internal/features/entries/routes.go ==================
package entries

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the entry endpoints on the owner-scoped
// /users/:userId group.
func RegisterRoutes(owner *gin.RouterGroup, handler *Handler) {
	entriesGroup := owner.Group("/days/:dayId/entries")
	{
		entriesGroup.POST("", handler.Create)
		entriesGroup.PATCH("/:entryId", handler.Update)
		entriesGroup.DELETE("/:entryId", handler.Delete)
	}
}
