package routes

import (
	"github.com/babyfoodstore/babyfood-backend-go/handlers"
	"github.com/labstack/echo/v4"
)

// SetupRoutes mounts every endpoint. All routes are public: /login issues
// tokens but nothing requires one (middleware.Auth is available for
// deployments that want to gate routes).
func SetupRoutes(e *echo.Echo, users *handlers.UserHandler, products *handlers.ProductHandler, orders *handlers.OrderHandler) {
	e.GET("/", handlers.Health)

	api := e.Group("/api/v1")

	// User routes
	api.POST("/register", users.Register)
	api.POST("/login", users.Login)
	api.PATCH("/user/:id", users.Update)
	api.GET("/userInfo/:email", users.UserInfo)

	// Product routes
	api.POST("/product", products.Create)
	api.GET("/product", products.List)
	api.GET("/product/:id", products.GetByID)
	api.PATCH("/product/:id", products.Update)
	api.DELETE("/product/:id", products.Delete)
	api.GET("/flashSale", products.FlashSale)
	api.GET("/top-rating", products.TopRated)
	api.GET("/category/:category", products.ByCategory)
	api.GET("/rating/:rating", products.ByRating)
	api.GET("/price/:minPrice/:maxPrice", products.ByPriceRange)

	// Order routes
	api.POST("/order", orders.Create)
	api.GET("/order", orders.List)
	api.PATCH("/order/:id", orders.Deliver)
}
