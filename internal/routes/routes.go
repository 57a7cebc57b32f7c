package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"business-dashboard-backend/internal/cache"
	"business-dashboard-backend/internal/config"
	handler "business-dashboard-backend/internal/handlers"
	"business-dashboard-backend/internal/logging"
	"business-dashboard-backend/internal/middleware"
	"business-dashboard-backend/internal/repository"
	"business-dashboard-backend/internal/services/auth"
	"business-dashboard-backend/internal/services/customers"
	"business-dashboard-backend/internal/services/invoices"
	"business-dashboard-backend/internal/storage"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, log zerolog.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	pages := cache.NewPageCache()
	files := storage.NewFileStore(cfg.ImageRoot)
	reporter := logging.NewLogReporter(log)

	invoiceService := invoices.NewService(invoiceRepo, auditRepo, pages, reporter)
	customerService := customers.NewService(customerRepo, files, invoiceRepo, auditRepo, pages, reporter)
	authService := auth.NewService(auth.NewCredentialsProvider(userRepo), []byte(cfg.JWTSecret))

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, invoiceRepo, pages)
	customerHandler := handler.NewCustomerHandler(customerService, customerRepo, pages)
	authHandler := handler.NewAuthHandler(authService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/login", authHandler.Login)

	// Listings are public reads served through the page cache
	api.GET("/invoices", invoiceHandler.List)
	api.GET("/customers", customerHandler.List)

	// Mutations require a session token
	authed := api.Group("")
	authed.Use(middleware.RequireAuth([]byte(cfg.JWTSecret)))
	{
		authed.POST("/invoices", invoiceHandler.Create)
		authed.PUT("/invoices/:id", invoiceHandler.Update)
		authed.DELETE("/invoices/:id", invoiceHandler.Delete)

		authed.POST("/customers", customerHandler.Create)
		authed.DELETE("/customers/:id", customerHandler.Delete)
	}
}
