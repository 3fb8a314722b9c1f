package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Shubrajit22/Zestwear-sub000/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints. All public.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB))
		authGroup.POST("/google", auth.GoogleLogin(deps.DB))
		authGroup.POST("/forgot-password", auth.ForgotPassword(deps.DB, deps.OTP, deps.Mail))
		authGroup.POST("/reset-password", auth.ResetPassword(deps.DB, deps.OTP))
	}
}
