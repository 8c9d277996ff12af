package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"workshop-invoicing-backend/internal/config"
	handler "workshop-invoicing-backend/internal/handlers"
	"workshop-invoicing-backend/internal/metrics"
	"workshop-invoicing-backend/internal/repository"
	"workshop-invoicing-backend/internal/services/auth"
	"workshop-invoicing-backend/internal/services/invoicing"
	"workshop-invoicing-backend/internal/services/workshop"
)

// RegisterRoutes wires repositories, services and handlers onto r. The
// returned limiter guards the login endpoint; callers run its cleanup loop.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) *handler.RateLimiter {
	userRepo := repository.NewUserRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)

	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL)
	invoiceService := invoicing.NewInvoiceService(invoiceRepo, log)
	workshopService := workshop.NewWorkshopService(workshopRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.CookieSecure, log)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, log)
	workshopHandler := handler.NewWorkshopHandler(workshopService, log)
	exportHandler := handler.NewExportHandler(invoiceService, workshopService, cfg.Currency, log)
	healthHandler := handler.NewHealthHandler(db, log)

	loginLimiter := handler.NewRateLimiter(cfg.LoginRatePerSecond, cfg.LoginBurst, log)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")

	// Health check
	api.GET("/health", healthHandler.Health)

	authRoutes := api.Group("/auth")
	authRoutes.POST("/login", loginLimiter.Middleware(), authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(handler.RequireSession(authService))

	protected.GET("/auth/me", authHandler.Me)

	// Invoice routes
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.GET("/:id/pdf", exportHandler.PDF)
		invoices.GET("/:id/image", exportHandler.Image)
		invoices.GET("/:id/share", exportHandler.Share)
	}

	// Workshop settings
	protected.GET("/workshop", workshopHandler.Get)
	protected.PUT("/workshop", workshopHandler.Update)

	return loginLimiter
}
