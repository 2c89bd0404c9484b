// ================== internal/features/days/routes.go ==================
package days

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the day endpoints on the owner-scoped
// /users/:userId group.
func RegisterRoutes(owner *gin.RouterGroup, handler *Handler) {
	daysGroup := owner.Group("/days")
	{
		daysGroup.GET("", handler.List)
		daysGroup.POST("", handler.Create)
		daysGroup.GET("/:dayId", handler.Get)
		daysGroup.PATCH("/:dayId", handler.Update)
		daysGroup.DELETE("/:dayId", handler.Delete)
	}
}
