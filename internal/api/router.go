package api

import (
	"hope-backend/internal/config"
	"hope-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewRouter wires every handler onto a gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, notifier *notify.Notifier, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	contactHandler := NewContactHandler(db, notifier, logger)
	donationHandler := NewDonationHandler(db, cfg, notifier, logger)
	newsletterHandler := NewNewsletterHandler(db, notifier, logger)
	authHandler := NewAuthHandler(db, logger)
	userHandler := NewUserHandler(db, logger)
	adminHandler := NewAdminHandler(db, cfg, logger)
	financialHandler := NewFinancialHandler(db, cfg, logger)
	healthHandler := NewHealthHandler(db)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", healthHandler.Check)

		// Form submissions
		apiGroup.POST("/contact", contactHandler.Submit)
		apiGroup.POST("/donate", donationHandler.Submit)
		apiGroup.POST("/newsletter", newsletterHandler.Subscribe)

		// Auth
		apiGroup.POST("/register", authHandler.Register)
		apiGroup.POST("/login", authHandler.Login)
		apiGroup.POST("/logout", authHandler.Logout)

		// Account endpoints, session required
		authGroup := apiGroup.Group("")
		authGroup.Use(RequireSession(db))
		{
			authGroup.GET("/user/profile", userHandler.Profile)
			authGroup.GET("/user/dashboard", userHandler.Dashboard)
			authGroup.GET("/user/donations", userHandler.Donations)
			authGroup.GET("/payments", userHandler.Payments)
		}

		// Admin
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(adminHandler.RequireAdminToken)
		{
			adminGroup.GET("/stats", adminHandler.Stats)
		}

		// Financial transparency
		apiGroup.GET("/financial/overview", financialHandler.Overview)
		apiGroup.GET("/financial/transparency", financialHandler.Transparency)
		apiGroup.GET("/financial/campaigns", financialHandler.Campaigns)
		apiGroup.POST("/financial/impact-calculator", financialHandler.ImpactCalculator)
		apiGroup.GET("/crypto-addresses", financialHandler.CryptoAddresses)
	}

	return r
}
