// ================== internal/features/users/routes.go ==================
package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes mounts the unauthenticated account endpoints.
func RegisterPublicRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)
	router.POST("/verify-email", handler.VerifyEmail)
	router.POST("/forgot-username", handler.ForgotUsername)
	router.POST("/forgot-password", handler.ForgotPassword)
	router.POST("/reset-password", handler.ResetPassword)
	router.POST("/resend-verification", handler.ResendVerification)
}

// RegisterOwnerRoutes mounts the goal endpoints on the owner-scoped
// /users/:userId group.
func RegisterOwnerRoutes(owner *gin.RouterGroup, handler *Handler) {
	owner.PATCH("/calorie-goal", handler.UpdateCalorieGoal)
	owner.PATCH("/macro-goals", handler.UpdateMacroGoals)
	owner.PATCH("/rollover-time", handler.UpdateRolloverTime)
}
