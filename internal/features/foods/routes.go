// ================== internal/features/foods/routes.go ==================
package foods

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the food endpoints on the owner-scoped
// /users/:userId group.
func RegisterRoutes(owner *gin.RouterGroup, handler *Handler) {
	foods := owner.Group("/foods")
	{
		foods.GET("", handler.List)
		foods.POST("", handler.Create)
		foods.PATCH("/:foodId", handler.Update)
		foods.DELETE("/:foodId", handler.Delete)
	}
}
