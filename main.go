package main

import (
	"context"
	"log"
	"time"

	"github.com/babyfoodstore/babyfood-backend-go/config"
	"github.com/babyfoodstore/babyfood-backend-go/database"
	"github.com/babyfoodstore/babyfood-backend-go/handlers"
	"github.com/babyfoodstore/babyfood-backend-go/metrics"
	"github.com/babyfoodstore/babyfood-backend-go/routes"
	"github.com/babyfoodstore/babyfood-backend-go/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	m := metrics.New()
	e.Use(m.Middleware())
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Connect to MongoDB
	client, err := database.Connect(context.Background(), config.GetEnv("MONGODB_URI", "mongodb://localhost:27017"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Failed to disconnect from database:", err)
		}
	}()

	db := client.Database(store.DatabaseName)

	users := &handlers.UserHandler{
		Users:     store.NewMongoUsers(db),
		JWTSecret: config.GetEnv("JWT_SECRET", ""),
		TokenTTL:  config.GetEnvDuration("EXPIRES_IN", 24*time.Hour),
	}
	products := &handlers.ProductHandler{Products: store.NewMongoProducts(db)}
	orders := &handlers.OrderHandler{Orders: store.NewMongoOrders(db)}

	routes.SetupRoutes(e, users, products, orders)

	// Start the server
	port := config.GetEnv("PORT", "5000")
	e.Logger.Fatal(e.Start(":" + port))
}
