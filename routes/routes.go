package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillswap-api/controllers"
	"skillswap-api/middleware"
	"skillswap-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, jwtSecret, emailService)
	profileController := controllers.NewProfileController(db)
	skillController := controllers.NewSkillController(db)
	swapController := controllers.NewSwapController(db, emailService)
	notificationController := controllers.NewNotificationController(db)
	dashboardController := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/send-verification", authController.SendVerification)
		auth.POST("/verify-code", authController.VerifyCode)

		auth.GET("/debug/verification-code", authController.GetVerificationCode)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.GET("/auth/me", authController.Me)

		// Profile routes
		profiles := protected.Group("/profiles")
		{
			profiles.GET("", profileController.GetPublicProfiles)
			profiles.GET("/search", profileController.SearchProfiles)
			profiles.GET("/me", profileController.GetMyProfile)
			profiles.PUT("/me", profileController.UpdateMyProfile)
			profiles.PUT("/me/skills", profileController.UpdateMySkills)
		}

		// Skill catalog routes
		skills := protected.Group("/skills")
		{
			skills.GET("", skillController.GetSkills)
			skills.POST("", skillController.CreateSkill)
			skills.DELETE("/:id", skillController.DeleteSkill)
		}

		// Swap routes
		swaps := protected.Group("/swaps")
		{
			swaps.POST("", swapController.CreateSwap)
			swaps.GET("", swapController.ListSwaps)
			swaps.GET("/pending", swapController.GetPendingSwaps)
			swaps.GET("/:id", swapController.GetSwapDetails)
			swaps.POST("/:id/respond", swapController.RespondToSwap)
		}

		// Notification routes
		protected.GET("/notifications", notificationController.GetNotifications)

		// Dashboard routes
		protected.GET("/dashboard/stats", dashboardController.GetStats)
	}
}
