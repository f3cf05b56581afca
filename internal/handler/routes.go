package handler

import (
	"github.com/expenso/expenso-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. The path-verb route shape
// (/create, /lists, /update/:id, /delete/:id) is part of the public API
// contract and is kept as is.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, authHandler *AuthHandler, profileHandler *ProfileHandler, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// User routes; register and login are the only public endpoints
	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/profile", profileHandler.GetProfile, authMiddleware.Authenticate())
	users.PUT("/update-profile", profileHandler.UpdateProfile, authMiddleware.Authenticate())
	users.PUT("/change-password", profileHandler.ChangePassword, authMiddleware.Authenticate())

	// Category routes (protected)
	categories := api.Group("/categories")
	categories.Use(authMiddleware.Authenticate())
	categories.POST("/create", categoryHandler.CreateCategory)
	categories.GET("/lists", categoryHandler.GetCategories)
	categories.PUT("/update/:categoryId", categoryHandler.UpdateCategory)
	categories.DELETE("/delete/:id", categoryHandler.DeleteCategory)

	// Transaction routes (protected)
	transactions := api.Group("/transactions")
	transactions.Use(authMiddleware.Authenticate())
	transactions.POST("/create", transactionHandler.CreateTransaction)
	transactions.GET("/lists", transactionHandler.GetTransactions)
	transactions.PUT("/update/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/delete/:id", transactionHandler.DeleteTransaction)
}
