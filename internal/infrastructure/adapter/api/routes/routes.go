package routes

import (
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/handler"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	walletHandler *handler.WalletHandler,
	reportHandler *handler.ReportHandler,
	userHandler *handler.UserHandler,
	pdfHandler *handler.PDFHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	api := router.Group("/api")
	{
		// Report generation and history
		reportRoutes := api.Group("/reports")
		{
			reportRoutes.GET("", reportHandler.ListEntries)
			reportRoutes.POST("", reportHandler.CreateEntry)
			reportRoutes.POST("/generate", reportHandler.Generate)
			reportRoutes.GET("/products", reportHandler.ListProducts)
		}

		// Wallet ledger
		walletRoutes := api.Group("/wallet")
		{
			walletRoutes.POST("/transactions", walletHandler.ApplyTransaction)
			walletRoutes.GET("/transactions", walletHandler.ListTransactions)
			walletRoutes.GET("/:userId", walletHandler.GetBalance)
		}

		// User management
		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", userHandler.List)
			userRoutes.POST("", userHandler.Create)
			userRoutes.GET("/:id", userHandler.GetByID)
			userRoutes.PUT("/:id", userHandler.Update)
			userRoutes.PATCH("/:id/status", userHandler.SetStatus)
			userRoutes.DELETE("/:id", userHandler.Delete)
			userRoutes.POST("/bulk", userHandler.Bulk)
		}

		// Dashboard aggregates
		api.GET("/dashboard/stats", dashboardHandler.Stats)

		// Direct report-data to PDF conversion
		api.POST("/pdf", pdfHandler.Render)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
